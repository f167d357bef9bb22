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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(2.0, 1.0)
	b := New(3.0, 4.0)

	assert.Equal(t, New(5.0, 5.0), a.Add(b))
	assert.Equal(t, New(-1.0, -3.0), a.Sub(b))

	// product rule: d(a·b) = a·db + b·da
	assert.Equal(t, New(6.0, 2.0*4+3.0*1), a.Mul(b))
	assert.Equal(t, New(6.0, 3.0), New(2.0, 1.0).Mul(New(3.0, 0.0)))

	// quotient rule: d(a/b) = (da·b − a·db)/b²
	q := New(6.0, 5.0).Div(New(3.0, 1.0))
	assert.InDelta(t, 2.0, q.Real(), 1e-15)
	assert.InDelta(t, (5.0*3-6.0*1)/9, q.Dual(), 1e-15)

	assert.Equal(t, New(-2.0, -1.0), a.Neg())
	assert.Equal(t, New(2.0, -1.0), a.Conj())

	assert.Equal(t, New(5.0, 1.0), a.AddReal(3))
	assert.Equal(t, New(-1.0, 1.0), a.SubReal(3))
	assert.Equal(t, New(6.0, 3.0), a.MulReal(3))
	assert.Equal(t, New(1.0, 0.5), a.DivReal(2))
}

func TestFusedConjProducts(t *testing.T) {
	a := New(2.0, 3.0)
	b := New(5.0, 7.0)

	assert.Equal(t, a.Mul(b.Conj()), a.TimesConj(b))
	assert.Equal(t, a.Conj().Mul(b), a.ConjTimes(b))
}

// Seeding the dual part with 1 turns every function into its own
// derivative evaluator: f(New(x,1)) = (f(x), f'(x)).
func TestDerivatives(t *testing.T) {
	tests := []struct {
		name string
		f    func(Dual[float64]) Dual[float64]
		x    float64
		dfdx float64
	}{
		{"sqrt", Sqrt[float64], 2.25, 1 / (2 * stdmath.Sqrt(2.25))},
		{"cbrt", Cbrt[float64], 8, 1 / (3 * 4.0)},
		{"exp", Exp[float64], 0.7, stdmath.Exp(0.7)},
		{"exp2", Exp2[float64], 1.5, stdmath.Exp2(1.5) * stdmath.Ln2},
		{"expm1", Expm1[float64], 0.3, stdmath.Exp(0.3)},
		{"log", Log[float64], 3, 1.0 / 3},
		{"log2", Log2[float64], 3, 1 / (3 * stdmath.Ln2)},
		{"log10", Log10[float64], 3, 1 / (3 * stdmath.Log(10))},
		{"log1p", Log1p[float64], 0.5, 1 / 1.5},
		{"logb", Logb[float64], 3, 1 / (3 * stdmath.Ln2)},
		{"logbase", func(x Dual[float64]) Dual[float64] { return LogBase(5.0, x) }, 3, 1 / (3 * stdmath.Log(5))},
		{"sin", Sin[float64], 1.1, stdmath.Cos(1.1)},
		{"cos", Cos[float64], 1.1, -stdmath.Sin(1.1)},
		{"tan", Tan[float64], 0.6, 1 / (stdmath.Cos(0.6) * stdmath.Cos(0.6))},
		{"asin", Asin[float64], 0.4, 1 / stdmath.Sqrt(1-0.16)},
		{"acos", Acos[float64], 0.4, -1 / stdmath.Sqrt(1-0.16)},
		{"atan", Atan[float64], 0.8, 1 / (1 + 0.64)},
		{"sinh", Sinh[float64], 0.9, stdmath.Cosh(0.9)},
		{"cosh", Cosh[float64], 0.9, stdmath.Sinh(0.9)},
		{"tanh", Tanh[float64], 0.9, 1 / (stdmath.Cosh(0.9) * stdmath.Cosh(0.9))},
		{"asinh", Asinh[float64], 0.7, 1 / stdmath.Sqrt(1+0.49)},
		{"acosh", Acosh[float64], 1.5, 1 / stdmath.Sqrt(1.5*1.5-1)},
		{"atanh", Atanh[float64], 0.5, 1 / (1 - 0.25)},
		{"erf", Erf[float64], 0.4, 2 / stdmath.SqrtPi * stdmath.Exp(-0.16)},
		{"erfc", Erfc[float64], 0.4, -2 / stdmath.SqrtPi * stdmath.Exp(-0.16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f(New(tt.x, 1))
			want := tt.f(New(tt.x, 0))
			assert.InDelta(t, want.Real(), got.Real(), 1e-12, "value")
			assert.InDelta(t, tt.dfdx, got.Dual(), 1e-12, "derivative")
		})
	}
}

func TestPow(t *testing.T) {
	// d/dx x³ = 3x²
	got := PowReal(New(2.0, 1.0), 3)
	assert.InDelta(t, 8.0, got.Real(), 1e-12)
	assert.InDelta(t, 12.0, got.Dual(), 1e-12)

	// dual exponent with zero dual part agrees with PowReal
	got = Pow(New(2.0, 1.0), FromReal(3.0))
	assert.InDelta(t, 8.0, got.Real(), 1e-12)
	assert.InDelta(t, 12.0, got.Dual(), 1e-12)
}

func TestChainRule(t *testing.T) {
	// f(x) = sin(x²), f'(x) = 2x·cos(x²)
	x := 0.8
	d := Sin(New(x, 1.0).Mul(New(x, 1.0)))
	assert.InDelta(t, stdmath.Sin(x*x), d.Real(), 1e-12)
	assert.InDelta(t, 2*x*stdmath.Cos(x*x), d.Dual(), 1e-12)
}

func TestRounding(t *testing.T) {
	x := New(1.2, -3.7)
	assert.Equal(t, New(2.0, -3.0), Ceil(x))
	assert.Equal(t, New(1.0, -4.0), Floor(x))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 2.5, Abs(New(-2.5, 7.0)))
	assert.Equal(t, New(6.25, 0.0), Abs2(New(-2.5, 7.0)))
}

func TestComparisons(t *testing.T) {
	// ordering consults the real part only
	a := New(1.0, 100.0)
	assert.True(t, a.Less(2))
	assert.True(t, a.LessEq(1))
	assert.False(t, a.Greater(1))
	assert.True(t, a.GreaterEq(1))
}

func TestPredicates(t *testing.T) {
	nan := stdmath.NaN()
	inf := stdmath.Inf(1)

	assert.True(t, IsFinite(New(1.0, 2.0)))
	assert.False(t, IsFinite(New(1.0, nan)))
	assert.True(t, IsNaN(New(nan, 0.0)))
	assert.True(t, IsNaN(New(0.0, nan)))
	assert.False(t, IsNaN(New(0.0, 0.0)))
	assert.True(t, IsInf(New(inf, 0.0)))
	assert.True(t, IsInf(New(0.0, inf)))
	assert.False(t, IsInf(New(1.0, 1.0)))
}

func TestApprox(t *testing.T) {
	a := New(1.0, 2.0)
	assert.True(t, a.ApproxEqual(New(1.0, 2.0)))
	assert.False(t, a.ApproxEqual(New(1.1, 2.0)))
	assert.True(t, New(1e-20, -1e-20).ApproxZero())
	assert.True(t, New(1.0, 1e-20).ApproxOne())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", New(1.5, -2.0).String())
}
