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

// Package cplx implements ordinary complex numbers r + i·d (i² = −1)
// generic over the float element type, so they can serve as quaternion
// coefficients next to dual and split-complex numbers. Go's builtin
// complex64/complex128 cannot instantiate a generic element type, hence
// this small value type. Only the arithmetic surface the quaternion
// layer needs is provided; there is no transcendental catalog here.
package cplx

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-numeric/num"
)

// Complex is a complex number over the float type T. The zero value
// is 0.
type Complex[T num.Float] struct {
	re, im T
}

// New returns the complex number r + i·d.
func New[T num.Float](r, d T) Complex[T] {
	return Complex[T]{re: r, im: d}
}

// FromReal returns r + i·0.
func FromReal[T num.Float](r T) Complex[T] {
	return Complex[T]{re: r}
}

// Widen losslessly converts a float32 complex number to any element
// type.
func Widen[T num.Float](x Complex[float32]) Complex[T] {
	return Complex[T]{re: T(x.re), im: T(x.im)}
}

// Real returns the real part.
func (x Complex[T]) Real() T { return x.re }

// Imag returns the imaginary part.
func (x Complex[T]) Imag() T { return x.im }

// Add returns x + y.
func (x Complex[T]) Add(y Complex[T]) Complex[T] {
	return Complex[T]{re: x.re + y.re, im: x.im + y.im}
}

// Sub returns x − y.
func (x Complex[T]) Sub(y Complex[T]) Complex[T] {
	return Complex[T]{re: x.re - y.re, im: x.im - y.im}
}

// Mul returns x·y under i² = −1.
func (x Complex[T]) Mul(y Complex[T]) Complex[T] {
	return Complex[T]{
		re: x.re*y.re - x.im*y.im,
		im: x.re*y.im + x.im*y.re,
	}
}

// Div returns x/y. A zero divisor propagates Inf/NaN.
func (x Complex[T]) Div(y Complex[T]) Complex[T] {
	inv := 1 / (y.re*y.re + y.im*y.im)
	return Complex[T]{
		re: inv * (x.re*y.re + x.im*y.im),
		im: inv * (x.im*y.re - x.re*y.im),
	}
}

// MulReal returns x scaled by r.
func (x Complex[T]) MulReal(r T) Complex[T] {
	return Complex[T]{re: x.re * r, im: x.im * r}
}

// Neg returns −x.
func (x Complex[T]) Neg() Complex[T] {
	return Complex[T]{re: -x.re, im: -x.im}
}

// Conj returns the complex conjugate.
func (x Complex[T]) Conj() Complex[T] {
	return Complex[T]{re: x.re, im: -x.im}
}

// TimesConj returns x·conj(y) without materializing the conjugate.
func (x Complex[T]) TimesConj(y Complex[T]) Complex[T] {
	return Complex[T]{
		re: x.re*y.re + x.im*y.im,
		im: x.im*y.re - x.re*y.im,
	}
}

// ConjTimes returns conj(x)·y without materializing the conjugate.
func (x Complex[T]) ConjTimes(y Complex[T]) Complex[T] {
	return Complex[T]{
		re: x.re*y.re + x.im*y.im,
		im: x.re*y.im - x.im*y.re,
	}
}

// Equal reports exact componentwise equality.
func (x Complex[T]) Equal(y Complex[T]) bool {
	return x.re == y.re && x.im == y.im
}

// ApproxEqualIn reports componentwise equality within tol.
func (x Complex[T]) ApproxEqualIn(y Complex[T], tol T) bool {
	return num.ApproxEqualIn(x.re, y.re, tol) && num.ApproxEqualIn(x.im, y.im, tol)
}

// ApproxEqual reports componentwise equality within the default
// tolerance for T.
func (x Complex[T]) ApproxEqual(y Complex[T]) bool {
	return x.ApproxEqualIn(y, num.Eps[T]())
}

// String renders the print form "(re,im)".
func (x Complex[T]) String() string {
	return fmt.Sprintf("(%v,%v)", x.re, x.im)
}

// Abs returns the modulus √(re²+im²).
func Abs[T num.Float](x Complex[T]) T {
	return T(stdmath.Hypot(float64(x.re), float64(x.im)))
}

// Abs2 returns the squared modulus.
func Abs2[T num.Float](x Complex[T]) T {
	return x.re*x.re + x.im*x.im
}

// Ops is the coefficient-algebra adapter that lets Complex[T] serve as
// the element type of the generic quaternion engine (quat.Ring).
type Ops[T num.Float] struct{}

// Zero returns 0.
func (Ops[T]) Zero() Complex[T] { return Complex[T]{} }

// One returns 1.
func (Ops[T]) One() Complex[T] { return Complex[T]{re: 1} }

// Add returns a + b.
func (Ops[T]) Add(a, b Complex[T]) Complex[T] { return a.Add(b) }

// Sub returns a − b.
func (Ops[T]) Sub(a, b Complex[T]) Complex[T] { return a.Sub(b) }

// Mul returns a·b.
func (Ops[T]) Mul(a, b Complex[T]) Complex[T] { return a.Mul(b) }

// Neg returns −a.
func (Ops[T]) Neg(a Complex[T]) Complex[T] { return a.Neg() }

// Conj returns the complex conjugate of a.
func (Ops[T]) Conj(a Complex[T]) Complex[T] { return a.Conj() }
