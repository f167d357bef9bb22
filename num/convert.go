// Copyright 2025 go-numeric Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package num

import "github.com/cockroachdb/errors"

// Conversions between float widths follow one rule: widening is free
// and implicit in the API surface (Widen, and the per-algebra Widen
// constructors), narrowing does not exist as an unchecked operation
// anywhere in this repository. Code that genuinely needs to go the
// other way goes through Narrow and handles the error.

// Widen losslessly converts a float32 value to any Float type.
// There is no unchecked counterpart in the other direction.
func Widen[To Float](v float32) To {
	return To(v)
}

// Narrow converts v to a (possibly) narrower Float type, failing when
// the conversion does not round-trip exactly. This is the checked
// escape hatch for call sites that would otherwise lose precision
// silently; it is a runtime guarantee, weaker than the compile-time
// absence of narrowing conversions elsewhere.
func Narrow[To, From Float](v From) (To, error) {
	n := To(v)
	if From(n) != v {
		return 0, errors.Newf("narrowing conversion loses precision: %v", v)
	}
	return n, nil
}
