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

// Package layout includes helpers for working with type layouts.
//
// It is separate from xunsafe, because nothing in this package is actually
// unsafe.
package layout

import "unsafe"

// Int is any integer type.
type Int interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		uintptr
}

// Size returns T's size in bytes.
func Size[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// RoundUp rounds n up to the next multiple of align, which must be a power of
// two.
func RoundUp[I Int](n, align I) I {
	return (n + align - 1) &^ (align - 1)
}

// Fits returns whether count elements of the given size fit into avail bytes
// starting at element start, without overflowing.
//
// All arguments are expected to be non-negative except start and count, which
// are rejected if negative. size must be positive.
func Fits(start, count, size, avail int) bool {
	if start < 0 || count < 0 || avail < 0 {
		return false
	}
	n := avail / size
	return start <= n && count <= n-start
}
