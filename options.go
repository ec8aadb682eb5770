// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typedbuf

// AllocateOption is a configuration setting for [Allocate].
type AllocateOption struct{ apply func(*allocateOptions) }

type allocateOptions struct {
	arena *Arena
}

// WithArena allocates the buffer's memory from an [Arena] instead of the Go
// heap.
//
// The buffer becomes invalid when the arena is freed. A nil arena selects the
// heap.
func WithArena(arena *Arena) AllocateOption {
	return AllocateOption{func(opts *allocateOptions) { opts.arena = arena }}
}
