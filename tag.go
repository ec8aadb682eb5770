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
	"unsafe"
)

// Tag selects how the bytes of a buffer are decoded.
//
// Tags are numbered the same way hosts encode them: 0 is [Pointer] and 1 is
// [Float32]. No other value is valid.
type Tag uint8

const (
	// Pointer is an opaque, pointer-sized native address. See [Addr].
	Pointer Tag = iota
	// Float32 is an IEEE-754 single-precision float.
	Float32
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

var tagNames = [...]string{
	Pointer: "Pointer",
	Float32: "Float32",
}

// SizeOf returns the size in bytes of one element of the given type.
//
// Returns an error wrapping [ErrInvalidTag] if tag is not a known tag.
func SizeOf(tag Tag) (int, error) {
	n := tag.Size()
	if n < 0 {
		return 0, errInvalidTag("sizeof", tag)
	}
	return n, nil
}

// Size returns the size in bytes of one element of this type, or -1 if t is
// not valid.
func (t Tag) Size() int {
	switch t {
	case Pointer:
		return ptrSize
	case Float32:
		return 4
	default:
		return -1
	}
}

// Valid returns whether t is one of the defined tags.
func (t Tag) Valid() bool {
	return t.Size() > 0
}

// String implements [fmt.Stringer].
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}
