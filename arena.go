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

import "buf.build/go/typedbuf/internal/arena"

// Arena is a region of memory that many buffers can be allocated from with
// [WithArena], and released all at once.
//
// Arenas amortize trips into Go's allocator when a program repeatedly builds
// and discards batches of buffers. They are not safe for concurrent use.
//
// The zero value is ready to use: construct it with new(Arena).
type Arena struct {
	impl arena.Arena
}

// Free releases all buffers allocated from this arena, allowing their memory
// to be re-used.
//
// Any buffer previously allocated from this arena, and any [View] into one,
// must not be used after Free returns. Doing so reads or writes memory that
// now belongs to other buffers.
func (a *Arena) Free() { a.impl.Free() }

// Reserved returns the number of bytes this arena holds on to, including
// memory not currently handed out.
func (a *Arena) Reserved() int { return a.impl.Reserved() }
