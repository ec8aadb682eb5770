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

package debug

import "fmt"

// Formatter defers formatting to a function. Only the %v verb is supported.
type Formatter func(s fmt.State)

// Format implements [fmt.Formatter].
func (f Formatter) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		f(s)
	default:
		fmt.Fprintf(s, "%%!%c(debug.Formatter)", verb)
	}
}

// String implements [fmt.Stringer].
func (f Formatter) String() string { return fmt.Sprint(f) }

// Dict prints name followed by the key/value pairs in kv, as in
// "name{k1: v1, k2: v2}". Pairs with a nil value are omitted.
func Dict(name string, kv ...any) Formatter {
	return func(s fmt.State) {
		if len(kv)%2 != 0 {
			panic("debug: odd number of Dict arguments")
		}

		fmt.Fprint(s, name, "{")
		sep := ""
		for i := 0; i < len(kv); i += 2 {
			if kv[i+1] == nil {
				continue
			}
			fmt.Fprintf(s, "%s%v: %v", sep, kv[i], kv[i+1])
			sep = ", "
		}
		fmt.Fprint(s, "}")
	}
}
