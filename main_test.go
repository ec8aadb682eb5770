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

package typedbuf_test

import (
	"flag"
	"fmt"
	"runtime"
	"testing"

	"buf.build/go/typedbuf"
	"buf.build/go/typedbuf/internal/flag2"
	"buf.build/go/typedbuf/internal/testdata"
)

var verbose bool

func TestMain(m *testing.M) {
	flag.Parse()
	verbose = flag2.Lookup[bool]("test.v")

	if flag2.Parsed("test.bench") {
		// Benchmarks don't print the compiler or word size they ran with.
		fmt.Printf("compiler: %v %v, %d-byte pointers\n",
			runtime.Compiler, runtime.Version(), typedbuf.Pointer.Size())
	}

	m.Run()
}

func TestCorpus(t *testing.T) {
	t.Parallel()
	testdata.RunAll(t, func(t *testing.T, test *testdata.TestCase) {
		t.Helper()
		test.Run(t, verbose)
	})
}

func BenchmarkCorpus(b *testing.B) {
	testdata.RunAll(b, func(b *testing.B, test *testdata.TestCase) {
		b.Helper()

		buf := test.NewBuffer(b)
		b.Run("slice", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(test.Size))
			var out []typedbuf.Value
			for range b.N {
				out, _ = typedbuf.AppendSlice(out[:0], buf, typedbuf.Float32, 0, test.Size/4)
			}
		})
		b.Run("unchecked", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(test.Size))
			for range b.N {
				_ = typedbuf.SliceUnchecked(buf, typedbuf.Float32, 0, test.Size/4)
			}
		})
	})
}
