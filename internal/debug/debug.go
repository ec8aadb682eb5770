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

//go:build debug

// Package debug includes debugging helpers.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true if the package is being built with the debug tag, which
// enables tracing and internal assertions.
const Enabled = true

var (
	debugPattern *regexp.Regexp
	nocapture    = flag.Bool("typedbuf.nocapture", false, "disables capturing debug logs as test logs")

	tls = routine.NewThreadLocal[testing.TB]()
)

func init() {
	flag.Func("typedbuf.filter", "regexp to filter debug logs by", func(s string) (err error) {
		debugPattern, err = regexp.Compile(s)
		return err
	})
}

// WithTesting routes logs from the calling goroutine into t until the returned
// function is called.
func WithTesting(t testing.TB) (reset func()) {
	tls.Set(t)
	return tls.Remove
}

// Log writes a debug line tagged with the calling package, file and goroutine.
//
// context, if non-empty, is a format string and its arguments; it is printed
// inside the tag so that related lines can be grouped, e.g. by arena.
func Log(context []any, operation string, format string, args ...any) {
	pkg, file, line := caller()

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) > 0 {
		fmt.Fprintf(buf, " "+context[0].(string), context[1:]...)
	}
	fmt.Fprintf(buf, "] %s: ", operation)
	fmt.Fprintf(buf, format, args...)
	msg := buf.String()

	if debugPattern != nil && !debugPattern.MatchString(msg) {
		return
	}

	if t := tls.Get(); t != nil && !*nocapture {
		t.Helper()
		t.Log(msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// caller finds the first frame above Log that is not itself a logging helper,
// such as [arena.Arena.Log].
func caller() (pkg, file string, line int) {
	for skip := 2; ; skip++ {
		pc, path, n, ok := runtime.Caller(skip)
		if !ok {
			return "?", "?", 0
		}

		name := runtime.FuncForPC(pc).Name()
		if method := name[strings.LastIndex(name, ".")+1:]; method == "Log" || strings.HasPrefix(method, "log") {
			continue
		}

		pkg = strings.TrimPrefix(name, "buf.build/go/")
		pkg = strings.TrimPrefix(pkg, "typedbuf/internal/")
		if i := strings.Index(pkg, "."); i >= 0 {
			pkg = pkg[:i]
		}
		return pkg, filepath.Base(path), n
	}
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		err := fmt.Errorf("typedbuf: internal assertion failed: "+format, args...)
		Log(nil, "assert", "%v\n%s", err, Stack(1))
		panic(err)
	}
}
