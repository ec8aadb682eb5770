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

// Package xunsafe provides a more convenient interface for performing unsafe
// operations than Go's built-in package unsafe.
//
// Everything here assumes the caller has already established that the memory
// being touched is in bounds.
package xunsafe

import (
	"sync"
	"unsafe"

	"buf.build/go/typedbuf/internal/xunsafe/layout"
)

// NoCopy is a type that go vet will complain about having been moved.
//
// It does so by implementing [sync.Locker].
type NoCopy [0]sync.Mutex

// Int is any integer type.
type Int = layout.Int

// Bytes returns the n bytes starting at p as a slice.
func Bytes[P ~*E, E any, I Int](p P, n I) []byte {
	return unsafe.Slice(Cast[byte](p), n)
}

// Words allocates n zeroed, pointer-free bytes of memory aligned to a
// pointer boundary.
func Words(n int) *byte {
	words := make([]uint64, layout.RoundUp(n, 8)/8)
	return Cast[byte](unsafe.SliceData(words))
}
