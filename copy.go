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

import "buf.build/go/typedbuf/internal/debug"

// Copy copies the first n bytes of src to the first n bytes of dst, with no
// interpretation.
//
// Copy does not support overlapping memory: if the n bytes at dst and src
// share any memory, it returns an error wrapping [ErrOverlap]. If n is
// negative, or larger than either dst.Len() or src.Len(), it returns an error
// wrapping [ErrOutOfBounds]. In either case dst is left untouched.
//
// Copying zero bytes always succeeds and does nothing.
func Copy(dst, src Handle, n int) error {
	d, s := dst.view(), src.view()
	if n < 0 || n > d.Len() || n > s.Len() {
		return errByteBounds("copy", 0, n, min(d.Len(), s.Len()))
	}
	if n == 0 {
		return nil
	}

	da, sa := base(d.mem).ByteAdd(d.off), base(s.mem).ByteAdd(s.off)
	if da.Overlaps(sa, n) {
		return &errAccess{op: "copy", code: errCodeOverlap, count: n, dst: Addr(da), src: Addr(sa)}
	}

	copy(d.span(0, n), s.span(0, n))
	debug.Log(nil, "copy", "%v <- %v, %d bytes", da, sa, n)
	return nil
}
