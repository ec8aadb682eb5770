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

// Package typedbuf provides raw, fixed-size byte buffers that can be read as
// arrays of a small set of primitive element types.
//
// A [Buffer] has no element type of its own. Every read names the type it
// wants with a [Tag], so the same memory can be viewed as pointer-sized
// values by one call and as 32-bit floats by the next:
//
//	buf, _ := typedbuf.Allocate(16)
//	v, err := typedbuf.Get(buf, typedbuf.Float32, 1)
//
// # Safety
//
// All operations are bounds-checked by default and report [ErrOutOfBounds]
// instead of touching memory outside a buffer. [GetUnchecked],
// [SliceUnchecked] and [CopyUnchecked] skip the checks; misusing them is
// undefined behavior.
//
// Pointer-sized elements are opaque [Addr] values. This package stores,
// copies and compares them but never dereferences them, and the GC does not
// treat them as references.
//
// # Ownership and concurrency
//
// A [*Buffer] owns its memory. A [View] produced by [Offset] borrows it and
// must not be used after the memory is released; for heap buffers that is
// never, but for buffers allocated with [WithArena] it is the next call to
// [Arena.Free].
//
// Buffers do no locking. Concurrently copying into a buffer while reading
// from it is a data race; callers must confine each buffer to one goroutine
// or synchronize access themselves.
package typedbuf
