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

import (
	"unsafe"

	"buf.build/go/typedbuf/internal/debug"
	"buf.build/go/typedbuf/internal/xunsafe"
)

// Buffer is a fixed-length region of raw bytes with no element type.
//
// A Buffer's length is fixed when it is allocated. Its memory is aligned to
// at least 8 bytes, so that elements of every [Tag] at a multiple of their own
// size are naturally aligned.
//
// Buffers must not be copied; pass them around as *Buffer.
type Buffer struct {
	_   xunsafe.NoCopy
	mem []byte
}

var _ Handle = (*Buffer)(nil)

// Allocate returns a new buffer of exactly n bytes.
//
// The memory is always zeroed. n may be zero, in which case every non-empty
// access to the buffer fails with [ErrOutOfBounds]. Returns an error wrapping
// [ErrNegativeSize] if n is negative.
func Allocate(n int, opts ...AllocateOption) (*Buffer, error) {
	if n < 0 {
		return nil, &errAccess{op: "allocate", code: errCodeNegativeSize, count: n}
	}

	var o allocateOptions
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}

	var p *byte
	if o.arena != nil {
		p = o.arena.impl.Alloc(n)
	} else {
		p = xunsafe.Words(n)
	}

	b := &Buffer{mem: xunsafe.Bytes(p, n)}
	debug.Log(nil, "allocate", "%d bytes at %v, arena: %v", n, b.Addr(), o.arena != nil)
	return b, nil
}

// Len returns the length of this buffer in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.mem)
}

// Bytes returns the contents of this buffer.
//
// The returned slice aliases the buffer: writing to it writes to the buffer.
// Bytes is how callers lay down the raw patterns that [Get] later decodes.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.mem
}

// Addr returns the base address of this buffer.
func (b *Buffer) Addr() Addr {
	return b.view().Addr()
}

// View returns a view of the whole buffer. It is equivalent to Offset(b, 0).
func (b *Buffer) View() View {
	return b.view()
}

func (b *Buffer) view() View {
	if b == nil {
		return View{}
	}
	return View{mem: b.mem}
}

// base returns the address of the first byte of mem, even if mem is empty.
func base(mem []byte) xunsafe.Addr[byte] {
	return xunsafe.AddrOf(unsafe.SliceData(mem))
}
