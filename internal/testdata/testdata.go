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

// Package testdata contains a corpus of buffer layouts and the reads, slices
// and copies expected to succeed or fail against them.
//
// Each case is a YAML file under corpus/. A case describes the initial bytes
// of a buffer, as hex or as Protoscope, and a list of operations to run
// against it.
package testdata

import (
	"bytes"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"

	"buf.build/go/typedbuf"
	"buf.build/go/typedbuf/internal/debug"
)

//go:embed corpus
var corpus embed.FS

// Harness is a generalization of [testing.TB] that also includes the
// [testing.T.Run] method. It must be generic because the signature of this
// function varies across [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// TestCase is a test case from the corpus.
type TestCase struct {
	Name string `yaml:"-"`

	// Size of the buffer under test, in bytes.
	Size int `yaml:"size"`
	// If nonzero, the case only applies on platforms with this pointer size.
	PointerSize int `yaml:"pointer_size"`

	// Two ways to write the initial contents of the buffer: hex and
	// protoscope. At most one may be set; the result is written at offset 0.
	Hex        string `yaml:"hex"`
	Protoscope string `yaml:"protoscope"`

	Ops []Op `yaml:"ops"`

	Specimen []byte `yaml:"-"`
}

// Op is a single operation against a test case's buffer.
type Op struct {
	// One of get, slice or copy.
	Op string `yaml:"op"`

	// The operation is applied to Offset(buf, Offset).
	Offset int `yaml:"offset"`

	// Raw tag value, so that invalid tags can be tested.
	Tag int `yaml:"tag"`

	// For get, the element index. For slice, the first element.
	Index int `yaml:"index"`
	// For slice, the number of elements. For copy, the number of bytes.
	Count int `yaml:"count"`

	// For copy, the destination is Offset(dst, To), where dst is a fresh
	// buffer of the same size, unless Self is set, in which case dst is the
	// buffer under test.
	To   int  `yaml:"to"`
	Self bool `yaml:"self"`

	// Expected results. Floats and Addrs are the decoded values for get and
	// slice; Want is the hex contents of the destination buffer after a copy.
	Floats []float64 `yaml:"floats"`
	Addrs  []uint64  `yaml:"addrs"`
	Want   string    `yaml:"want"`

	// If set, the operation must fail with this error: one of invalid_tag,
	// out_of_bounds or overlap.
	Error string `yaml:"error"`
}

var errorsByName = map[string]error{
	"invalid_tag":   typedbuf.ErrInvalidTag,
	"out_of_bounds": typedbuf.ErrOutOfBounds,
	"overlap":       typedbuf.ErrOverlap,
}

// RunAll runs all of the test cases against the given harness.
func RunAll[T Harness[T]](t T, f func(T, *TestCase)) {
	t.Helper()

	err := fs.WalkDir(corpus, "corpus", func(file string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", file)

		if d.IsDir() || path.Ext(file) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimPrefix(file, "corpus/"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}

			data, err := fs.ReadFile(corpus, file)
			require.NoError(t, err, "loading test %q", file)

			test := parseTestCase(t, file, data)
			if test != nil {
				f(t, test)
			}
		})

		return nil
	})
	require.NoError(t, err)
}

// NewBuffer allocates a buffer for this test case and writes its specimen
// into it.
func (test *TestCase) NewBuffer(t testing.TB, opts ...typedbuf.AllocateOption) *typedbuf.Buffer {
	t.Helper()

	buf, err := typedbuf.Allocate(test.Size, opts...)
	require.NoError(t, err)
	copy(buf.Bytes(), test.Specimen)
	return buf
}

// Run executes every operation in this test case.
func (test *TestCase) Run(t *testing.T, verbose bool) {
	t.Helper()
	defer debug.WithTesting(t)()

	buf := test.NewBuffer(t)
	for i, op := range test.Ops {
		if verbose {
			t.Logf("op %d: %+v", i, op)
		}
		op.run(t, test, buf)
	}
}

func (op *Op) run(t *testing.T, test *TestCase, buf *typedbuf.Buffer) {
	t.Helper()

	src := typedbuf.Offset(buf, op.Offset)
	tag := typedbuf.Tag(op.Tag)
	wantErr := errorsByName[op.Error]
	require.True(t, op.Error == "" || wantErr != nil, "unknown error %q", op.Error)

	switch op.Op {
	case "get":
		v, err := typedbuf.Get(src, tag, op.Index)
		if wantErr != nil {
			require.ErrorIs(t, err, wantErr)
			assert.Equal(t, typedbuf.Value{}, v)
			return
		}
		require.NoError(t, err)
		op.check(t, []typedbuf.Value{v})

	case "slice":
		vs, err := typedbuf.Slice(src, tag, op.Index, op.Count)
		if wantErr != nil {
			require.ErrorIs(t, err, wantErr)
			assert.Nil(t, vs)
			return
		}
		require.NoError(t, err)
		require.Len(t, vs, op.Count)
		op.check(t, vs)

		for i, v := range vs {
			v2, err := typedbuf.Get(src, tag, op.Index+i)
			require.NoError(t, err)
			assert.Equal(t, v2, v, "slice[%d] != get(%d)", i, op.Index+i)
		}

	case "copy":
		dst := buf
		if !op.Self {
			dst = test.NewBuffer(t)
			clear(dst.Bytes())
		}
		before := bytes.Clone(dst.Bytes())

		err := typedbuf.Copy(typedbuf.Offset(dst, op.To), src, op.Count)
		if wantErr != nil {
			require.ErrorIs(t, err, wantErr)
			if diff := cmp.Diff(before, dst.Bytes()); diff != "" {
				t.Errorf("failed copy modified its destination (-before +after):\n%s", diff)
			}
			return
		}
		require.NoError(t, err)
		if op.Want != "" {
			if diff := cmp.Diff(decodeHex(t, op.Want), dst.Bytes()); diff != "" {
				t.Errorf("copy result mismatch (-want +got):\n%s", diff)
			}
		}

	default:
		t.Fatalf("unknown op %q", op.Op)
	}
}

// check compares decoded values against the expected floats or addresses.
func (op *Op) check(t *testing.T, got []typedbuf.Value) {
	t.Helper()

	switch {
	case op.Floats != nil:
		require.Len(t, got, len(op.Floats))
		for i, want := range op.Floats {
			assert.Equal(t, typedbuf.Float32, got[i].Tag())
			if math.IsNaN(want) {
				assert.True(t, math.IsNaN(got[i].Float()), "value %d: got %v, want NaN", i, got[i])
				continue
			}
			assert.Equal(t, want, got[i].Float(), "value %d", i) //nolint:testifylint // Exact.
		}

	case op.Addrs != nil:
		require.Len(t, got, len(op.Addrs))
		for i, want := range op.Addrs {
			assert.Equal(t, typedbuf.Pointer, got[i].Tag())
			assert.Equal(t, typedbuf.Addr(want), got[i].Addr(), "value %d", i)
		}
	}
}

// parseTestCase parses a test case from a file.
//
// Returns nil if the case does not apply to this platform. This will call
// t.FailNow() if parsing fails.
func parseTestCase(t testing.TB, file string, data []byte) *TestCase {
	t.Helper()
	defer debug.WithTesting(t)()

	require.True(t, bytes.HasSuffix(data, []byte("\n")), "missing trailing newline in %q", file)

	test := new(TestCase)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(test)
	require.NoError(t, err, "loading test %q", file)

	test.Name = strings.TrimPrefix(file, "corpus/")

	if test.PointerSize != 0 && test.PointerSize != typedbuf.Pointer.Size() {
		t.Skipf("test requires %d-byte pointers", test.PointerSize)
		return nil
	}
	// Specimens are written as little-endian literals.
	if cpu.IsBigEndian {
		t.Skip("corpus assumes a little-endian platform")
		return nil
	}

	require.False(t, test.Hex != "" && test.Protoscope != "",
		"test %q sets both hex and protoscope", file)

	switch {
	case test.Hex != "":
		test.Specimen = decodeHex(t, test.Hex)
	case test.Protoscope != "":
		s := protoscope.NewScanner(test.Protoscope)
		test.Specimen, err = s.Exec()
		require.NoError(t, err, "loading test %q", file)
	}

	require.LessOrEqual(t, len(test.Specimen), test.Size,
		"specimen for %q does not fit in %d bytes", file, test.Size)
	return test
}

func decodeHex(t testing.TB, raw string) []byte {
	t.Helper()

	r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
	b, err := hex.DecodeString(r.Replace(raw))
	require.NoError(t, err, "bad hex %q", raw)
	return b
}

// String implements [fmt.Stringer].
func (test *TestCase) String() string {
	return fmt.Sprintf("%s: %d bytes, %d ops", test.Name, test.Size, len(test.Ops))
}
