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

// Package dual implements dual numbers r + ε·d with the nilpotent unit
// ε (ε² = 0). The dual part of every result carries the exact first
// derivative of the operation, so evaluating any expression at
// New(x, 1) performs forward-mode automatic differentiation: the dual
// part of the result is d/dx of the expression at x.
//
// The full elementary-function catalog (roots, exponentials,
// logarithms, trigonometric, hyperbolic, error functions) lives in
// functions.go; each function applies the chain rule
// f(x+εd) = f(x) + ε·d·f′(x) with the closed-form derivative.
//
// Usage:
//
//	x := dual.New(2.0, 1.0)        // x = 2, dx/dx = 1
//	y := dual.Sin(x.Mul(x))        // y = sin(x²)
//	_ = y.Dual()                   // 2x·cos(x²) at x = 2
package dual

import (
	"fmt"

	"github.com/ajroetker/go-numeric/num"
)

// Dual is a dual number over the float type T. The zero value is the
// dual number 0.
type Dual[T num.Float] struct {
	re, du T
}

// New returns the dual number r + ε·d.
func New[T num.Float](r, d T) Dual[T] {
	return Dual[T]{re: r, du: d}
}

// FromReal returns the dual number r + ε·0, i.e. a constant with
// derivative zero.
func FromReal[T num.Float](r T) Dual[T] {
	return Dual[T]{re: r}
}

// Widen losslessly converts a float32 dual number to any element type.
// The narrowing direction is deliberately absent; use num.Narrow on the
// components when a checked conversion is required.
func Widen[T num.Float](x Dual[float32]) Dual[T] {
	return Dual[T]{re: T(x.re), du: T(x.du)}
}

// Real returns the real part.
func (x Dual[T]) Real() T { return x.re }

// Dual returns the dual (derivative-carrying) part.
func (x Dual[T]) Dual() T { return x.du }

// At returns component i: 0 is the real part, 1 the dual part.
func (x Dual[T]) At(i int) T {
	if i == 0 {
		return x.re
	}
	return x.du
}

// Add returns x + y.
func (x Dual[T]) Add(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re + y.re, du: x.du + y.du}
}

// Sub returns x − y.
func (x Dual[T]) Sub(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re - y.re, du: x.du - y.du}
}

// Mul returns x·y. The dual part follows the product rule.
func (x Dual[T]) Mul(y Dual[T]) Dual[T] {
	return Dual[T]{
		re: x.re * y.re,
		du: x.re*y.du + y.re*x.du,
	}
}

// Div returns x/y by the quotient rule. The real part of y must be
// nonzero; a zero real part propagates Inf/NaN per IEEE semantics.
func (x Dual[T]) Div(y Dual[T]) Dual[T] {
	return Dual[T]{
		re: x.re / y.re,
		du: (x.du*y.re - x.re*y.du) / (y.re * y.re),
	}
}

// AddReal returns x + r.
func (x Dual[T]) AddReal(r T) Dual[T] {
	return Dual[T]{re: x.re + r, du: x.du}
}

// SubReal returns x − r.
func (x Dual[T]) SubReal(r T) Dual[T] {
	return Dual[T]{re: x.re - r, du: x.du}
}

// MulReal returns x scaled by r.
func (x Dual[T]) MulReal(r T) Dual[T] {
	return Dual[T]{re: x.re * r, du: x.du * r}
}

// DivReal returns x divided by r.
func (x Dual[T]) DivReal(r T) Dual[T] {
	return Dual[T]{re: x.re / r, du: x.du / r}
}

// Neg returns −x.
func (x Dual[T]) Neg() Dual[T] {
	return Dual[T]{re: -x.re, du: -x.du}
}

// Conj returns the dual conjugate, negating the dual part.
func (x Dual[T]) Conj() Dual[T] {
	return Dual[T]{re: x.re, du: -x.du}
}

// TimesConj returns x·conj(y) without materializing the conjugate.
func (x Dual[T]) TimesConj(y Dual[T]) Dual[T] {
	return Dual[T]{
		re: x.re * y.re,
		du: x.re*(-y.du) + y.re*x.du,
	}
}

// ConjTimes returns conj(x)·y without materializing the conjugate.
func (x Dual[T]) ConjTimes(y Dual[T]) Dual[T] {
	return Dual[T]{
		re: x.re * y.re,
		du: x.re*y.du + y.re*(-x.du),
	}
}

// Equal reports exact componentwise equality.
func (x Dual[T]) Equal(y Dual[T]) bool {
	return x.re == y.re && x.du == y.du
}

// ApproxEqualIn reports componentwise equality within tol.
func (x Dual[T]) ApproxEqualIn(y Dual[T], tol T) bool {
	return num.ApproxEqualIn(x.re, y.re, tol) && num.ApproxEqualIn(x.du, y.du, tol)
}

// ApproxEqual reports componentwise equality within the default
// tolerance for T.
func (x Dual[T]) ApproxEqual(y Dual[T]) bool {
	return x.ApproxEqualIn(y, num.Eps[T]())
}

// ApproxZero reports whether both components are within the default
// tolerance of zero.
func (x Dual[T]) ApproxZero() bool {
	tol := num.Eps[T]()
	return num.ApproxZeroIn(x.re, tol) && num.ApproxZeroIn(x.du, tol)
}

// ApproxOne reports whether x is within the default tolerance of the
// real unit: real part near one, dual part near zero.
func (x Dual[T]) ApproxOne() bool {
	tol := num.Eps[T]()
	return num.ApproxOneIn(x.re, tol) && num.ApproxZeroIn(x.du, tol)
}

// Ordering against plain numbers compares real parts only; the dual
// part carries no ordering information.

// Less reports x < r by real part.
func (x Dual[T]) Less(r T) bool { return x.re < r }

// LessEq reports x <= r by real part.
func (x Dual[T]) LessEq(r T) bool { return x.re <= r }

// Greater reports x > r by real part.
func (x Dual[T]) Greater(r T) bool { return x.re > r }

// GreaterEq reports x >= r by real part.
func (x Dual[T]) GreaterEq(r T) bool { return x.re >= r }

// String renders the print form "(re,du)".
func (x Dual[T]) String() string {
	return fmt.Sprintf("(%v,%v)", x.re, x.du)
}
