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
	"encoding/binary"
	"slices"

	"buf.build/go/typedbuf/internal/xunsafe/layout"
)

// Get decodes the index-th element of type tag in h, i.e. the tag.Size()
// bytes starting at byte index*tag.Size().
//
// [Pointer] elements decode to an [Addr] in native byte order. [Float32]
// elements decode to their exact IEEE-754 bits; see [Value.Float].
//
// Returns an error wrapping [ErrInvalidTag] for an unknown tag, or
// [ErrOutOfBounds] if the element does not lie entirely within h.
func Get(h Handle, tag Tag, index int) (Value, error) {
	v := h.view()
	switch tag {
	case Pointer:
		b, err := v.elems("get", tag, index, 1)
		if err != nil {
			return Value{}, err
		}
		return Value{tag: Pointer, bits: loadAddr(b)}, nil

	case Float32:
		b, err := v.elems("get", tag, index, 1)
		if err != nil {
			return Value{}, err
		}
		return Value{tag: Float32, bits: uint64(binary.NativeEndian.Uint32(b))}, nil

	default:
		return Value{}, errInvalidTag("get", tag)
	}
}

// Slice decodes count consecutive elements of type tag in h, starting at
// element start.
//
// The result is a fresh slice indexed from zero: its i-th element is what
// Get(h, tag, start+i) would return.
//
// The whole range is validated before anything is decoded: on error, no
// values are returned. See [Get] for the errors this function can return.
func Slice(h Handle, tag Tag, start, count int) ([]Value, error) {
	values, err := AppendSlice(nil, h, tag, start, count)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []Value{}
	}
	return values, nil
}

// AppendSlice is like [Slice], but appends the decoded values to dst.
//
// On error, dst is returned unmodified.
func AppendSlice(dst []Value, h Handle, tag Tag, start, count int) ([]Value, error) {
	v := h.view()
	switch tag {
	case Pointer:
		b, err := v.elems("slice", tag, start, count)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, count)
		for i := range count {
			dst = append(dst, Value{tag: Pointer, bits: loadAddr(b[i*ptrSize:])})
		}
		return dst, nil

	case Float32:
		b, err := v.elems("slice", tag, start, count)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, count)
		for i := range count {
			dst = append(dst, Value{tag: Float32, bits: uint64(binary.NativeEndian.Uint32(b[i*4:]))})
		}
		return dst, nil

	default:
		return dst, errInvalidTag("slice", tag)
	}
}

// elems returns the bytes of count elements of type tag starting at element
// start, or an error if any of them are out of bounds.
func (v View) elems(op string, tag Tag, start, count int) ([]byte, error) {
	size := tag.Size()
	if !layout.Fits(start, count, size, v.Len()) {
		return nil, errElemBounds(op, tag, start, count, v.Len())
	}
	return v.span(start*size, count*size), nil
}

// loadAddr decodes a pointer-sized native-endian integer from the front of b.
func loadAddr(b []byte) uint64 {
	if ptrSize == 8 {
		return binary.NativeEndian.Uint64(b)
	}
	return uint64(binary.NativeEndian.Uint32(b))
}
