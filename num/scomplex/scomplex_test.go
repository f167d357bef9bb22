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

package scomplex

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(2.0, 3.0)
	b := New(5.0, 7.0)

	assert.Equal(t, New(7.0, 10.0), a.Add(b))
	assert.Equal(t, New(-3.0, -4.0), a.Sub(b))

	// (a+bj)(c+dj) = (ac+bd) + (ad+bc)j
	assert.Equal(t, New(2.0*5+3*7, 2.0*7+3*5), a.Mul(b))

	assert.Equal(t, New(-2.0, -3.0), a.Neg())
	assert.Equal(t, New(2.0, -3.0), a.Conj())

	assert.Equal(t, New(5.0, 3.0), a.AddReal(3))
	assert.Equal(t, New(-1.0, 3.0), a.SubReal(3))
	assert.Equal(t, New(4.0, 6.0), a.MulReal(2))
	assert.Equal(t, New(1.0, 1.5), a.DivReal(2))
}

func TestUnitSquaresToOne(t *testing.T) {
	j := New(0.0, 1.0)
	assert.Equal(t, New(1.0, 0.0), j.Mul(j))
}

func TestAbs(t *testing.T) {
	// timelike: |re| > |im|
	assert.InDelta(t, 4.0, Abs(New(5.0, 3.0)), 1e-15)
	assert.Equal(t, 16.0, Abs2(New(5.0, 3.0)))

	// spacelike values have negative squared norm
	assert.True(t, stdmath.IsNaN(Abs(New(3.0, 5.0))))
	assert.Equal(t, -16.0, Abs2(New(3.0, 5.0)))

	// lightlike values sit on the null cone
	assert.Equal(t, 0.0, Abs(New(2.0, 2.0)))
}

func TestDiv(t *testing.T) {
	a := New(2.0, 3.0)
	b := New(5.0, 3.0)

	q := a.Div(b)
	inv := 1 / Abs(b)
	assert.InDelta(t, inv*(2.0*5-3*3), q.Real(), 1e-15)
	assert.InDelta(t, inv*(3.0*5-2*3), q.Imag(), 1e-15)
}

func TestFusedConjProducts(t *testing.T) {
	a := New(2.0, 3.0)
	b := New(5.0, 7.0)

	assert.Equal(t, a.Mul(b.Conj()), a.TimesConj(b))
	assert.Equal(t, a.Conj().Mul(b), a.ConjTimes(b))
}

func TestConjNormIsAbs2(t *testing.T) {
	// x·conj(x) = (re²−im², 0)
	x := New(4.0, 1.5)
	assert.Equal(t, New(Abs2(x), 0.0), x.TimesConj(x))
}

func TestRounding(t *testing.T) {
	x := New(1.2, -3.7)
	assert.Equal(t, New(2.0, -3.0), Ceil(x))
	assert.Equal(t, New(1.0, -4.0), Floor(x))
}

func TestComparisons(t *testing.T) {
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
	assert.False(t, IsFinite(New(inf, 2.0)))
	assert.True(t, IsNaN(New(0.0, nan)))
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
