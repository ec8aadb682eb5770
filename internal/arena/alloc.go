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

package arena

import (
	"math/bits"

	"buf.build/go/typedbuf/internal/xunsafe"
)

// minSizeLog is the log 2 of the smallest chunk an arena will allocate.
const minSizeLog = 6

// suggestSizeLog returns the log 2 of the smallest power of two that can hold
// bytes, but no less than 1<<minSizeLog.
func suggestSizeLog(bytes int) uint {
	// Snap to the next power of two.
	return max(minSizeLog, uint(bits.Len(uint(bytes)-1)))
}

// allocChunk returns a zeroed chunk of at least size bytes, and its actual
// size.
//
// Chunks freed by [Arena.Free] are re-used. Within a single generation of the
// arena every chunk requested is strictly larger than the last, so a chunk is
// never handed out twice.
func (a *Arena) allocChunk(size int) (*byte, int) {
	log := suggestSizeLog(size)
	n := 1 << log
	if int(log) < len(a.blocks) {
		if a.blocks[log] == nil {
			a.blocks[log] = xunsafe.Words(n)
		}
		return a.blocks[log], n
	}

	p := xunsafe.Words(n)
	a.blocks = append(a.blocks, make([]*byte, int(log+1)-len(a.blocks))...)
	a.blocks[log] = p

	return p, n
}
