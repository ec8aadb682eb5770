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
	"math"
	"unsafe"
)

// Addr is an opaque native address read out of, or destined for, a buffer.
//
// An Addr is a bit pattern, not a reference: it is never dereferenced by this
// package and does not keep anything alive.
type Addr uintptr

// AddrOf returns the address of p as an opaque [Addr].
func AddrOf[T any](p *T) Addr {
	return Addr(uintptr(unsafe.Pointer(p)))
}

// Format implements [fmt.Formatter].
func (a Addr) Format(state fmt.State, verb rune) {
	if verb == 'v' {
		fmt.Fprintf(state, "%#x", uintptr(a))
		return
	}

	fmt.Fprintf(state, fmt.FormatString(state, verb), uintptr(a))
}

// Value is a single decoded buffer element.
//
// A Value remembers its [Tag] and the exact bits it was decoded from, so two
// values compare equal with == only when they were read from identical bytes
// through the same tag. That includes NaNs.
type Value struct {
	tag  Tag
	bits uint64
}

// PointerValue returns a [Pointer] value holding a.
func PointerValue(a Addr) Value {
	return Value{tag: Pointer, bits: uint64(a)}
}

// Float32Value returns a [Float32] value holding f.
func Float32Value(f float32) Value {
	return Value{tag: Float32, bits: uint64(math.Float32bits(f))}
}

// Tag returns the tag this value was decoded with.
func (v Value) Tag() Tag { return v.tag }

// Bits returns the raw bit pattern of this value, zero-extended to 64 bits.
func (v Value) Bits() uint64 { return v.bits }

// Addr returns this value as an address.
//
// Panics if v is not a [Pointer].
func (v Value) Addr() Addr {
	v.check(Pointer)
	return Addr(v.bits)
}

// Float32 returns this value as a float32, with its exact stored bits.
//
// Panics if v is not a [Float32].
func (v Value) Float32() float32 {
	v.check(Float32)
	return math.Float32frombits(uint32(v.bits))
}

// Float returns this value widened to a float64.
//
// Widening is exact for every finite float32; infinities and NaNs stay
// infinities and NaNs.
//
// Panics if v is not a [Float32].
func (v Value) Float() float64 {
	return float64(v.Float32())
}

// Format implements [fmt.Formatter].
func (v Value) Format(state fmt.State, verb rune) {
	switch v.tag {
	case Pointer:
		v.Addr().Format(state, verb)
	case Float32:
		fmt.Fprintf(state, fmt.FormatString(state, verb), v.Float32())
	default:
		fmt.Fprintf(state, "%v(%#x)", v.tag, v.bits)
	}
}

// String implements [fmt.Stringer].
func (v Value) String() string { return fmt.Sprint(v) }

func (v Value) check(want Tag) {
	if v.tag != want {
		panic(fmt.Sprintf("typedbuf: %v value used as %v", v.tag, want))
	}
}
