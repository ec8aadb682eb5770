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
	"errors"
	"fmt"
)

var (
	// ErrInvalidTag is returned when a [Tag] is not one of the defined tags.
	ErrInvalidTag = errors.New("invalid type tag")
	// ErrOutOfBounds is returned when an operation would touch memory past the
	// end of a buffer, or before its start.
	ErrOutOfBounds = errors.New("access out of bounds")
	// ErrOverlap is returned by [Copy] when its source and destination share
	// memory.
	ErrOverlap = errors.New("overlapping copy")
	// ErrNegativeSize is returned by [Allocate] for a negative length.
	ErrNegativeSize = errors.New("negative size")
)

const (
	errCodeOk errCode = iota
	errCodeInvalidTag
	errCodeOutOfBounds
	errCodeOverlap
	errCodeNegativeSize
)

type errCode int

var errs = [...]error{
	errCodeOk:           nil,
	errCodeInvalidTag:   ErrInvalidTag,
	errCodeOutOfBounds:  ErrOutOfBounds,
	errCodeOverlap:      ErrOverlap,
	errCodeNegativeSize: ErrNegativeSize,
}

// errAccess is an error returned by a buffer operation. It is always detected
// before the operation modifies any memory.
type errAccess struct {
	op   string
	code errCode

	// The access that failed: count elements of the given tag starting at
	// element start, against avail bytes. For byte-level operations, elem is
	// 1 and tag is unused.
	tag          Tag
	elem         int
	start, count int
	avail        int

	// Only set for overlapping copies.
	dst, src Addr
}

func errInvalidTag(op string, tag Tag) error {
	return &errAccess{op: op, code: errCodeInvalidTag, tag: tag}
}

func errElemBounds(op string, tag Tag, start, count, avail int) error {
	return &errAccess{
		op: op, code: errCodeOutOfBounds,
		tag: tag, elem: tag.Size(),
		start: start, count: count, avail: avail,
	}
}

func errByteBounds(op string, start, count, avail int) error {
	return &errAccess{
		op: op, code: errCodeOutOfBounds,
		elem:  1,
		start: start, count: count, avail: avail,
	}
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *errAccess) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *errAccess) Error() string {
	switch e.code {
	case errCodeInvalidTag:
		return fmt.Sprintf("typedbuf: %s: %v: %d", e.op, e.Unwrap(), uint8(e.tag))
	case errCodeNegativeSize:
		return fmt.Sprintf("typedbuf: %s: %v: %d", e.op, e.Unwrap(), e.count)
	case errCodeOverlap:
		return fmt.Sprintf("typedbuf: %s: %v: %d bytes from %v to %v", e.op, e.Unwrap(), e.count, e.src, e.dst)
	case errCodeOutOfBounds:
		if e.elem == 1 {
			return fmt.Sprintf("typedbuf: %s: %v: bytes [%d:+%d] of %d",
				e.op, e.Unwrap(), e.start, e.count, e.avail)
		}
		return fmt.Sprintf("typedbuf: %s: %v: %v elements [%d:+%d] of %d bytes",
			e.op, e.Unwrap(), e.tag, e.start, e.count, e.avail)
	default:
		return fmt.Sprintf("typedbuf: %s: error code %d", e.op, e.code)
	}
}
