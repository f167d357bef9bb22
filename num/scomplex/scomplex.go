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

// Package scomplex implements split-complex numbers r + j·d with the
// hyperbolic unit j (j² = +1), the hyperbolic-rotation counterpart of
// ordinary complex numbers. The type is structurally parallel to
// dual.Dual but carries different multiplication identities:
//
//	(a + j·b)(c + j·d) = (ac + bd) + j·(ad + bc)
//
// The modulus Abs is the hyperbolic norm √(re²−im²), which is only
// real for "timelike" values (|re| ≥ |im|); spacelike inputs yield NaN
// by IEEE propagation and are not guarded. Transcendental functions
// are not provided for split-complex numbers.
package scomplex

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-numeric/num"
)

// SComplex is a split-complex number over the float type T. The zero
// value is 0.
type SComplex[T num.Float] struct {
	re, im T
}

// New returns the split-complex number r + j·d.
func New[T num.Float](r, d T) SComplex[T] {
	return SComplex[T]{re: r, im: d}
}

// FromReal returns r + j·0.
func FromReal[T num.Float](r T) SComplex[T] {
	return SComplex[T]{re: r}
}

// Widen losslessly converts a float32 split-complex number to any
// element type. There is no unchecked narrowing counterpart.
func Widen[T num.Float](x SComplex[float32]) SComplex[T] {
	return SComplex[T]{re: T(x.re), im: T(x.im)}
}

// Real returns the real part.
func (x SComplex[T]) Real() T { return x.re }

// Imag returns the imaginary (j) part.
func (x SComplex[T]) Imag() T { return x.im }

// At returns component i: 0 is the real part, 1 the imaginary part.
func (x SComplex[T]) At(i int) T {
	if i == 0 {
		return x.re
	}
	return x.im
}

// Add returns x + y.
func (x SComplex[T]) Add(y SComplex[T]) SComplex[T] {
	return SComplex[T]{re: x.re + y.re, im: x.im + y.im}
}

// Sub returns x − y.
func (x SComplex[T]) Sub(y SComplex[T]) SComplex[T] {
	return SComplex[T]{re: x.re - y.re, im: x.im - y.im}
}

// Mul returns x·y under j² = +1.
func (x SComplex[T]) Mul(y SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: x.re*y.re + x.im*y.im,
		im: x.re*y.im + x.im*y.re,
	}
}

// Div returns x/y, scaling by the reciprocal of the hyperbolic norm of
// y. Lightlike divisors (|re| == |im|, zero norm) propagate Inf/NaN.
func (x SComplex[T]) Div(y SComplex[T]) SComplex[T] {
	inv := 1 / Abs(y)
	return SComplex[T]{
		re: inv * (x.re*y.re - x.im*y.im),
		im: inv * (x.im*y.re - x.re*y.im),
	}
}

// AddReal returns x + r.
func (x SComplex[T]) AddReal(r T) SComplex[T] {
	return SComplex[T]{re: x.re + r, im: x.im}
}

// SubReal returns x − r.
func (x SComplex[T]) SubReal(r T) SComplex[T] {
	return SComplex[T]{re: x.re - r, im: x.im}
}

// MulReal returns x scaled by r.
func (x SComplex[T]) MulReal(r T) SComplex[T] {
	return SComplex[T]{re: x.re * r, im: x.im * r}
}

// DivReal returns x divided by r.
func (x SComplex[T]) DivReal(r T) SComplex[T] {
	return SComplex[T]{re: x.re / r, im: x.im / r}
}

// Neg returns −x.
func (x SComplex[T]) Neg() SComplex[T] {
	return SComplex[T]{re: -x.re, im: -x.im}
}

// Conj returns the split-complex conjugate, negating the j part.
func (x SComplex[T]) Conj() SComplex[T] {
	return SComplex[T]{re: x.re, im: -x.im}
}

// TimesConj returns x·conj(y) without materializing the conjugate.
func (x SComplex[T]) TimesConj(y SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: x.re*y.re - x.im*y.im,
		im: x.im*y.re - x.re*y.im,
	}
}

// ConjTimes returns conj(x)·y without materializing the conjugate.
func (x SComplex[T]) ConjTimes(y SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: x.re*y.re - x.im*y.im,
		im: x.re*y.im - x.im*y.re,
	}
}

// Equal reports exact componentwise equality.
func (x SComplex[T]) Equal(y SComplex[T]) bool {
	return x.re == y.re && x.im == y.im
}

// ApproxEqualIn reports componentwise equality within tol.
func (x SComplex[T]) ApproxEqualIn(y SComplex[T], tol T) bool {
	return num.ApproxEqualIn(x.re, y.re, tol) && num.ApproxEqualIn(x.im, y.im, tol)
}

// ApproxEqual reports componentwise equality within the default
// tolerance for T.
func (x SComplex[T]) ApproxEqual(y SComplex[T]) bool {
	return x.ApproxEqualIn(y, num.Eps[T]())
}

// ApproxZero reports whether both components are within the default
// tolerance of zero.
func (x SComplex[T]) ApproxZero() bool {
	tol := num.Eps[T]()
	return num.ApproxZeroIn(x.re, tol) && num.ApproxZeroIn(x.im, tol)
}

// ApproxOne reports whether x is within the default tolerance of the
// real unit.
func (x SComplex[T]) ApproxOne() bool {
	tol := num.Eps[T]()
	return num.ApproxOneIn(x.re, tol) && num.ApproxZeroIn(x.im, tol)
}

// Less reports x < r by real part.
func (x SComplex[T]) Less(r T) bool { return x.re < r }

// LessEq reports x <= r by real part.
func (x SComplex[T]) LessEq(r T) bool { return x.re <= r }

// Greater reports x > r by real part.
func (x SComplex[T]) Greater(r T) bool { return x.re > r }

// GreaterEq reports x >= r by real part.
func (x SComplex[T]) GreaterEq(r T) bool { return x.re >= r }

// String renders the print form "(re,im)".
func (x SComplex[T]) String() string {
	return fmt.Sprintf("(%v,%v)", x.re, x.im)
}

// Abs returns the hyperbolic norm √(re²−im²). Spacelike inputs
// (|im| > |re|, negative radicand) return NaN.
func Abs[T num.Float](x SComplex[T]) T {
	return T(stdmath.Sqrt(float64(x.re*x.re - x.im*x.im)))
}

// Abs2 returns the squared hyperbolic norm re²−im², which may be
// negative for spacelike values.
func Abs2[T num.Float](x SComplex[T]) T {
	return x.re*x.re - x.im*x.im
}

// Ceil applies ceil componentwise.
func Ceil[T num.Float](x SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: T(stdmath.Ceil(float64(x.re))),
		im: T(stdmath.Ceil(float64(x.im))),
	}
}

// Floor applies floor componentwise.
func Floor[T num.Float](x SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: T(stdmath.Floor(float64(x.re))),
		im: T(stdmath.Floor(float64(x.im))),
	}
}

// IsFinite reports whether both components are finite.
func IsFinite[T num.Float](x SComplex[T]) bool {
	return !stdmath.IsInf(float64(x.re), 0) && !stdmath.IsNaN(float64(x.re)) &&
		!stdmath.IsInf(float64(x.im), 0) && !stdmath.IsNaN(float64(x.im))
}

// IsInf reports whether either component is infinite.
func IsInf[T num.Float](x SComplex[T]) bool {
	return stdmath.IsInf(float64(x.re), 0) || stdmath.IsInf(float64(x.im), 0)
}

// IsNaN reports whether either component is NaN.
func IsNaN[T num.Float](x SComplex[T]) bool {
	return stdmath.IsNaN(float64(x.re)) || stdmath.IsNaN(float64(x.im))
}
