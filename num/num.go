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

// Package num provides the shared numeric foundation for the generalized
// number types in this repository: the floating-point constraint, the
// mathematical constants, per-type default tolerances, approximate
// comparisons, and lossless/checked conversions between float widths.
//
// All algebra packages (dual, scomplex, cplx, quat, interval) build on
// this package. Values are plain stack-resident structs; every operation
// is a pure function and instances are safe for concurrent use as long
// as no single instance is mutated from multiple goroutines.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-numeric/num"
//
//	tol := num.Eps[float64]()
//	if num.ApproxEqualIn(a, b, tol) {
//		...
//	}
package num

// Float is a constraint for the floating-point element types every
// algebra in this repository is generic over.
type Float interface {
	~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T Float](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits v to the interval [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
