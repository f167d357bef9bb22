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

package dual

import (
	stdmath "math"
	"unsafe"

	"github.com/ajroetker/go-numeric/num"
)

// Elementary functions extended to dual numbers by the chain rule:
// f(r + ε·d) = f(r) + ε·d·f′(r). Domain violations (log of a negative
// real part, asin outside [−1,1], ...) propagate the scalar function's
// IEEE NaN/Inf behavior; nothing here is a checked error.

// Abs returns the absolute value of the real part.
func Abs[T num.Float](x Dual[T]) T {
	return num.Abs(x.re)
}

// Abs2 returns the squared magnitude as a dual number. The dual part
// vanishes because ε² = 0.
func Abs2[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{re: x.re * x.re}
}

// Ceil applies ceil componentwise.
func Ceil[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Ceil(float64(x.re))),
		du: T(stdmath.Ceil(float64(x.du))),
	}
}

// Floor applies floor componentwise.
func Floor[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Floor(float64(x.re))),
		du: T(stdmath.Floor(float64(x.du))),
	}
}

// Sqrt returns the square root; d/dx √x = 1/(2√x).
func Sqrt[T num.Float](x Dual[T]) Dual[T] {
	s := T(stdmath.Sqrt(float64(x.re)))
	return Dual[T]{re: s, du: x.du / (2 * s)}
}

// Cbrt returns the cube root; d/dx ∛x = 1/(3·∛x²).
func Cbrt[T num.Float](x Dual[T]) Dual[T] {
	c := T(stdmath.Cbrt(float64(x.re)))
	return Dual[T]{re: c, du: x.du / (3 * c * c)}
}

// Pow raises b to a dual exponent by the generalized power rule.
func Pow[T num.Float](b, e Dual[T]) Dual[T] {
	be1 := T(stdmath.Pow(float64(b.re), float64(e.re-1)))
	return Dual[T]{
		re: b.re * be1 * (1 + e.du*T(stdmath.Log(float64(b.re)))),
		du: b.du * e.re * be1,
	}
}

// PowReal raises b to a plain scalar exponent.
func PowReal[T num.Float](b Dual[T], e T) Dual[T] {
	be1 := T(stdmath.Pow(float64(b.re), float64(e-1)))
	return Dual[T]{re: b.re * be1, du: b.du * e * be1}
}

// Exp returns e^x; the exponential is its own derivative.
func Exp[T num.Float](x Dual[T]) Dual[T] {
	ex := T(stdmath.Exp(float64(x.re)))
	return Dual[T]{re: ex, du: x.du * ex}
}

// Exp2 returns 2^x; d/dx 2^x = 2^x·ln 2.
func Exp2[T num.Float](x Dual[T]) Dual[T] {
	ex := T(stdmath.Exp2(float64(x.re)))
	return Dual[T]{re: ex, du: x.du * ex * T(num.Ln2)}
}

// Expm1 returns e^x − 1 with the precision of math.Expm1 in the real
// part; the derivative is still e^x.
func Expm1[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Expm1(float64(x.re))),
		du: x.du * T(stdmath.Exp(float64(x.re))),
	}
}

// Log returns the natural logarithm; d/dx ln x = 1/x.
func Log[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{re: T(stdmath.Log(float64(x.re))), du: x.du / x.re}
}

// Log2 returns the base-2 logarithm; d/dx log2 x = 1/(x·ln 2).
func Log2[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Log2(float64(x.re))),
		du: x.du / (x.re * T(num.Ln2)),
	}
}

// Log10 returns the base-10 logarithm; d/dx log10 x = 1/(x·ln 10).
func Log10[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Log10(float64(x.re))),
		du: x.du / (x.re * T(num.Ln10)),
	}
}

// Log1p returns ln(1+x) with the precision of math.Log1p in the real
// part; d/dx ln(1+x) = 1/(1+x).
func Log1p[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Log1p(float64(x.re))),
		du: x.du / (1 + x.re),
	}
}

// Logb returns the binary exponent of x. The derivative slot follows
// the logarithm-to-radix-2 rule.
func Logb[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Logb(float64(x.re))),
		du: x.du / (x.re * T(num.Ln2)),
	}
}

// LogBase returns the logarithm of x to an arbitrary base.
func LogBase[T num.Float](base T, x Dual[T]) Dual[T] {
	inv := 1 / T(stdmath.Log(float64(base)))
	return Dual[T]{
		re: T(stdmath.Log(float64(x.re))) * inv,
		du: (x.du / x.re) * inv,
	}
}

// Sin returns the sine; d/dx sin x = cos x.
func Sin[T num.Float](x Dual[T]) Dual[T] {
	s, c := stdmath.Sincos(float64(x.re))
	return Dual[T]{re: T(s), du: x.du * T(c)}
}

// Cos returns the cosine; d/dx cos x = −sin x.
func Cos[T num.Float](x Dual[T]) Dual[T] {
	s, c := stdmath.Sincos(float64(x.re))
	return Dual[T]{re: T(c), du: -x.du * T(s)}
}

// Tan returns the tangent; d/dx tan x = 1/cos²x.
func Tan[T num.Float](x Dual[T]) Dual[T] {
	c := T(stdmath.Cos(float64(x.re)))
	return Dual[T]{re: T(stdmath.Tan(float64(x.re))), du: x.du / (c * c)}
}

// Asin returns the arcsine; d/dx asin x = 1/√(1−x²).
func Asin[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Asin(float64(x.re))),
		du: x.du / T(stdmath.Sqrt(float64(1-x.re*x.re))),
	}
}

// Acos returns the arccosine; d/dx acos x = −1/√(1−x²).
func Acos[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Acos(float64(x.re))),
		du: -x.du / T(stdmath.Sqrt(float64(1-x.re*x.re))),
	}
}

// Atan returns the arctangent; d/dx atan x = 1/(1+x²).
func Atan[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Atan(float64(x.re))),
		du: x.du / (1 + x.re*x.re),
	}
}

// Sinh returns the hyperbolic sine; d/dx sinh x = cosh x.
func Sinh[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Sinh(float64(x.re))),
		du: x.du * T(stdmath.Cosh(float64(x.re))),
	}
}

// Cosh returns the hyperbolic cosine; d/dx cosh x = sinh x.
func Cosh[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Cosh(float64(x.re))),
		du: x.du * T(stdmath.Sinh(float64(x.re))),
	}
}

// Tanh returns the hyperbolic tangent; d/dx tanh x = 1/cosh²x.
func Tanh[T num.Float](x Dual[T]) Dual[T] {
	c := T(stdmath.Cosh(float64(x.re)))
	return Dual[T]{re: T(stdmath.Tanh(float64(x.re))), du: x.du / (c * c)}
}

// Asinh returns the inverse hyperbolic sine; d/dx asinh x = 1/√(x²+1).
func Asinh[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Asinh(float64(x.re))),
		du: x.du / T(stdmath.Sqrt(float64(x.re*x.re+1))),
	}
}

// Acosh returns the inverse hyperbolic cosine;
// d/dx acosh x = 1/√(x²−1) for x > 1.
func Acosh[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Acosh(float64(x.re))),
		du: x.du / T(stdmath.Sqrt(float64(x.re*x.re-1))),
	}
}

// Atanh returns the inverse hyperbolic tangent;
// d/dx atanh x = 1/(1−x²).
func Atanh[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Atanh(float64(x.re))),
		du: x.du / (1 - x.re*x.re),
	}
}

// Erf returns the error function; d/dx erf x = (2/√π)·e^(−x²).
func Erf[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Erf(float64(x.re))),
		du: x.du * T(stdmath.Exp(float64(-x.re*x.re))) * T(num.TwoOverSqrtPi),
	}
}

// Erfc returns the complementary error function; its derivative is the
// negation of erf's.
func Erfc[T num.Float](x Dual[T]) Dual[T] {
	return Dual[T]{
		re: T(stdmath.Erfc(float64(x.re))),
		du: -x.du * T(stdmath.Exp(float64(-x.re*x.re))) * T(num.TwoOverSqrtPi),
	}
}

// IsFinite reports whether both components are finite.
func IsFinite[T num.Float](x Dual[T]) bool {
	return !stdmath.IsInf(float64(x.re), 0) && !stdmath.IsNaN(float64(x.re)) &&
		!stdmath.IsInf(float64(x.du), 0) && !stdmath.IsNaN(float64(x.du))
}

// IsInf reports whether either component is infinite.
func IsInf[T num.Float](x Dual[T]) bool {
	return stdmath.IsInf(float64(x.re), 0) || stdmath.IsInf(float64(x.du), 0)
}

// IsNaN reports whether either component is NaN.
func IsNaN[T num.Float](x Dual[T]) bool {
	return stdmath.IsNaN(float64(x.re)) || stdmath.IsNaN(float64(x.du))
}

// IsNormal reports whether both components are normal floating-point
// values (finite, nonzero, not subnormal).
func IsNormal[T num.Float](x Dual[T]) bool {
	return isNormalScalar(x.re) && isNormalScalar(x.du)
}

func isNormalScalar[T num.Float](v T) bool {
	f := float64(v)
	if f == 0 || stdmath.IsInf(f, 0) || stdmath.IsNaN(f) {
		return false
	}
	// Subnormal check against the smallest normal magnitude of the
	// representation.
	if isFloat32[T]() {
		return num.Abs(f) >= stdmath.SmallestNonzeroFloat32*(1<<23)
	}
	return num.Abs(f) >= stdmath.SmallestNonzeroFloat64*(1<<52)
}

func isFloat32[T num.Float]() bool {
	return unsafe.Sizeof(T(0)) == 4
}
