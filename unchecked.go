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
	"buf.build/go/typedbuf/internal/debug"
	"buf.build/go/typedbuf/internal/xunsafe"
)

// GetUnchecked is like [Get], but performs no bounds checks.
//
// The caller must ensure that the element lies within h, and, on platforms
// that fault on misaligned loads, that its address is a multiple of
// tag.Size(). Violating either is undefined behavior.
//
// Panics if tag is not valid.
func GetUnchecked(h Handle, tag Tag, index int) Value {
	v := h.view()
	p := xunsafe.At(v.mem, v.off)
	switch tag {
	case Pointer:
		debug.Assert(index >= 0 && (index+1)*ptrSize <= v.Len(), "get %v[%d] out of bounds: %v", tag, index, v)
		return Value{tag: Pointer, bits: uint64(xunsafe.ByteLoad[uintptr](p, index*ptrSize))}

	case Float32:
		debug.Assert(index >= 0 && (index+1)*4 <= v.Len(), "get %v[%d] out of bounds: %v", tag, index, v)
		return Value{tag: Float32, bits: uint64(xunsafe.ByteLoad[uint32](p, index*4))}

	default:
		panic(errInvalidTag("get", tag))
	}
}

// SliceUnchecked is like [Slice], but performs no bounds checks. See
// [GetUnchecked] for the caller's obligations.
//
// Panics if tag is not valid.
func SliceUnchecked(h Handle, tag Tag, start, count int) []Value {
	v := h.view()
	p := xunsafe.At(v.mem, v.off)
	values := make([]Value, count)
	switch tag {
	case Pointer:
		debug.Assert(start >= 0 && (start+count)*ptrSize <= v.Len(), "slice %v[%d:+%d] out of bounds: %v", tag, start, count, v)
		for i := range values {
			values[i] = Value{tag: Pointer, bits: uint64(xunsafe.Load(xunsafe.Cast[uintptr](p), start+i))}
		}

	case Float32:
		debug.Assert(start >= 0 && (start+count)*4 <= v.Len(), "slice %v[%d:+%d] out of bounds: %v", tag, start, count, v)
		for i := range values {
			values[i] = Value{tag: Float32, bits: uint64(xunsafe.Load(xunsafe.Cast[uint32](p), start+i))}
		}

	default:
		panic(errInvalidTag("slice", tag))
	}
	return values
}

// CopyUnchecked is like [Copy], but performs no bounds checks and permits
// overlapping memory, which it copies as if through an intermediate buffer.
//
// The caller must ensure that n is no larger than dst.Len() or src.Len().
func CopyUnchecked(dst, src Handle, n int) {
	d, s := dst.view(), src.view()
	debug.Assert(n >= 0 && n <= d.Len() && n <= s.Len(),
		"copy %d bytes out of bounds: %v <- %v", n, d, s)

	xunsafe.Copy(xunsafe.At(d.mem, d.off), xunsafe.At(s.mem, s.off), n)
}
