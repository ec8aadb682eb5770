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
	"fmt"

	"buf.build/go/typedbuf/internal/debug"
)

// Handle is anything that operations in this package can read from or write
// to: a [*Buffer], or a [View] into one.
//
// Every operation treats a Handle's start as byte 0, and its [Handle.Len] as
// the number of bytes available.
type Handle interface {
	// Len returns the number of bytes between the start of this handle and the
	// end of the underlying buffer.
	Len() int
	// Addr returns the address of this handle's first byte.
	Addr() Addr

	view() View
}

// View is a non-owning window into a [Buffer], starting some number of bytes
// into it and extending to its end.
//
// Views are produced by [Offset] and are plain values: copying one is cheap
// and does not copy the underlying memory. A View must not outlive the memory
// of the buffer it was derived from.
//
// The zero View is empty.
type View struct {
	mem []byte // The whole underlying buffer.
	off int    // Not necessarily in [0, len(mem)].
}

var _ Handle = View{}

// Offset returns a view starting n bytes past the start of h.
//
// This is pure address arithmetic: n is not checked, and may place the view
// before the start or past the end of the buffer. Such a view has length zero,
// and any non-empty access through it fails with [ErrOutOfBounds].
//
// Offsets compose: Offset(Offset(h, a), b) is the same view as
// Offset(h, a+b).
func Offset(h Handle, n int) View {
	v := h.view()
	v.off += n
	return v
}

// Len implements [Handle].
func (v View) Len() int {
	if v.off < 0 || v.off > len(v.mem) {
		return 0
	}
	return len(v.mem) - v.off
}

// Addr implements [Handle].
//
// The result is base+offset even when the view lies outside its buffer.
func (v View) Addr() Addr {
	return Addr(base(v.mem).ByteAdd(v.off))
}

// Bytes returns the bytes this view covers. The returned slice aliases the
// underlying buffer.
//
// Returns nil if the view lies outside its buffer.
func (v View) Bytes() []byte {
	if v.Len() == 0 {
		return nil
	}
	return v.mem[v.off:]
}

// Format implements [fmt.Formatter].
func (v View) Format(state fmt.State, verb rune) {
	debug.Dict("View", "addr", v.Addr(), "off", v.off, "len", v.Len()).Format(state, verb)
}

func (v View) view() View { return v }

// span returns the n bytes starting start bytes into v.
//
// Callers must have already checked that start and n are in bounds with
// respect to v.Len(). An empty span is nil, even for a view that lies outside
// its buffer.
func (v View) span(start, n int) []byte {
	if n == 0 {
		return nil
	}
	return v.mem[v.off+start:][:n:n]
}
