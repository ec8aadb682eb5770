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

// Package arena provides a low-level bump allocator for raw buffer memory.
//
// # Design
//
// See <https://mcyoung.xyz/2025/04/21/go-arenas/>.
//
// Every chunk is a run of uint64 words, so the GC sees it as pointer-free and
// never scans it. That is exactly what buffer memory needs: pointer-sized
// elements stored in a buffer are opaque addresses, not references, and must
// not keep anything alive.
//
// The slices handed out by [Arena.Alloc] point into a chunk, so the GC keeps
// the chunk alive for as long as any of them is reachable. What the GC cannot
// do is stop a chunk from being reused: after [Arena.Free], old allocations
// alias new ones.
package arena

import (
	"buf.build/go/typedbuf/internal/debug"
	"buf.build/go/typedbuf/internal/xunsafe"
	"buf.build/go/typedbuf/internal/xunsafe/layout"
)

// Arena is an arena for holding raw bytes.
//
// A zero Arena is empty and ready to use.
type Arena struct {
	_ xunsafe.NoCopy

	next, end xunsafe.Addr[byte]
	cap       int // Always a power of 2.

	// Blocks of memory allocated by this arena. Indexed by their size log 2.
	blocks []*byte
}

// Align is the alignment of all allocations on the arena. It is large enough
// for every element type a buffer can hold.
const Align = 8

// Alloc allocates zeroed memory with the given size.
//
// All memory is aligned to [Align]. Zero-sized allocations still return a
// unique, non-nil pointer.
func (a *Arena) Alloc(size int) *byte {
	size = layout.RoundUp(max(size, 1), Align)

	if a.next.ByteAdd(size) > a.end {
		a.Grow(size)
	}

	p := a.next.AssertValid()
	a.next = a.next.ByteAdd(size)
	a.Log("alloc", "%v:%v, %d:%d", xunsafe.AddrOf(p), a.next, size, Align)

	return p
}

// Free resets this arena to an "empty" state, allowing all memory allocated by
// it to be re-used.
//
// Any memory allocated by the arena must not be referenced after a call to
// Free.
func (a *Arena) Free() {
	a.next, a.end, a.cap = 0, 0, 0

	for log, block := range a.blocks {
		if block != nil {
			xunsafe.Clear(block, 1<<log)
		}
	}
	a.Log("free", "%d blocks", len(a.blocks))
}

// Reserved returns the number of bytes of memory this arena is holding on to,
// whether or not they are currently allocated.
func (a *Arena) Reserved() int {
	var n int
	for log, block := range a.blocks {
		if block != nil {
			n += 1 << log
		}
	}
	return n
}

// Grow allocates fresh memory onto next of at least the given size.
func (a *Arena) Grow(size int) {
	p, n := a.allocChunk(max(size, a.cap*2))

	a.next = xunsafe.AddrOf(p)
	a.end = a.next.ByteAdd(n)
	a.cap = n
	a.Log("grow", "%v:%v:%d", a.next, a.end, a.cap)
}

// Log writes a debug log line prefixed with this arena's state.
func (a *Arena) Log(op, format string, args ...any) {
	if debug.Enabled {
		debug.Log([]any{"%p %v:%v", a, a.next, a.end}, op, format, args...)
	}
}
