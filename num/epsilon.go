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

import "unsafe"

// Machine epsilons (distance from 1.0 to the next representable value).
const (
	epsFloat32 = 1.1920928955078125e-7
	epsFloat64 = 2.220446049250313e-16
)

// Eps returns the default comparison tolerance for T: one hundred times
// the machine epsilon of the type. Every approximate comparison in this
// repository accepts an explicit tolerance as well; appropriate
// tolerance is ultimately domain-dependent and this value is only a
// sensible default.
func Eps[T Float]() T {
	// Sized by the representation, so ~float32 and ~float64
	// defined types resolve to the right epsilon.
	if unsafe.Sizeof(T(0)) == 4 {
		return T(100 * epsFloat32)
	}
	return T(100 * epsFloat64)
}

// ApproxEqualIn reports whether a and b differ by less than tol.
func ApproxEqualIn[T Float](a, b, tol T) bool {
	return a > b-tol && a < b+tol
}

// ApproxEqual reports whether a and b differ by less than the default
// tolerance for T.
func ApproxEqual[T Float](a, b T) bool {
	return ApproxEqualIn(a, b, Eps[T]())
}

// ApproxZeroIn reports whether x is within tol of zero.
func ApproxZeroIn[T Float](x, tol T) bool {
	return x > -tol && x < tol
}

// ApproxZero reports whether x is within the default tolerance of zero.
func ApproxZero[T Float](x T) bool {
	return ApproxZeroIn(x, Eps[T]())
}

// ApproxOneIn reports whether x is within tol of one.
func ApproxOneIn[T Float](x, tol T) bool {
	return x > 1-tol && x < 1+tol
}

// ApproxOne reports whether x is within the default tolerance of one.
func ApproxOne[T Float](x T) bool {
	return ApproxOneIn(x, Eps[T]())
}
