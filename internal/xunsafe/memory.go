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

package xunsafe

import (
	"unsafe"

	"buf.build/go/typedbuf/internal/xunsafe/layout"
)

// At returns a pointer to the byte at offset off of mem's backing array.
//
// off may equal len(mem), or even run past it; the result must then not be
// dereferenced.
func At[I Int](mem []byte, off I) *byte {
	return ByteAdd[byte](unsafe.SliceData(mem), off)
}

// Cast reinterprets p as a pointer to To.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Add returns p advanced by n elements of E.
func Add[P ~*E, E any, I Int](p P, n I) P {
	return P(unsafe.Add(unsafe.Pointer(p), uintptr(layout.Size[E]())*uintptr(n)))
}

// ByteAdd returns p advanced by n bytes, as a *T.
func ByteAdd[T any, P ~*E, E any, I Int](p P, n I) *T {
	return (*T)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n)))
}

// Load returns the nth element of E starting at p.
func Load[P ~*E, E any, I Int](p P, n I) E {
	return *Add(p, n)
}

// ByteLoad reads a T at byte offset n from p, using T's natural width.
//
// On platforms that fault on misaligned access, p+n must be aligned to T.
func ByteLoad[T any, P ~*E, E any, I Int](p P, n I) T {
	return *ByteAdd[T](p, n)
}

// Copy moves n elements from src to dst. The ranges may overlap.
func Copy[P ~*E, E any, I Int](dst, src P, n I) {
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

// Clear zeros n elements starting at p.
func Clear[P ~*E, E any, I Int](p P, n I) {
	clear(unsafe.Slice(p, n))
}
