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

package quat

import (
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	one := One[float64]()
	q := New(0.3, -0.5, 0.7, 0.2)

	assert.Equal(t, q, q.Mul(one))
	assert.Equal(t, q, one.Mul(q))
	assert.Equal(t, New(1.0, 0, 0, 0), one)
}

// Hamilton's basis rules: i² = j² = k² = −1, ij = k, jk = i, ki = j.
func TestBasisProducts(t *testing.T) {
	one := New(1.0, 0, 0, 0)
	i := New(0.0, 1, 0, 0)
	j := New(0.0, 0, 1, 0)
	k := New(0.0, 0, 0, 1)

	assert.Equal(t, one.Neg(), i.Mul(i))
	assert.Equal(t, one.Neg(), j.Mul(j))
	assert.Equal(t, one.Neg(), k.Mul(k))

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))

	// anticommutativity
	assert.Equal(t, k.Neg(), j.Mul(i))
}

func TestMulNoncommutative(t *testing.T) {
	a := New(1.0, 2, 3, 4)
	b := New(5.0, 6, 7, 8)

	ab := a.Mul(b)
	ba := b.Mul(a)

	assert.Equal(t, New(-60.0, 12, 30, 24), ab)
	assert.Equal(t, New(-60.0, 20, 14, 32), ba)
	assert.NotEqual(t, ab, ba)
}

func TestFusedConjProducts(t *testing.T) {
	a := New(1.0, 2, 3, 4)
	b := New(5.0, 6, 7, 8)

	assert.Equal(t, a.Mul(b.Conj()), a.TimesConj(b))
	assert.Equal(t, a.Conj().Mul(b), a.ConjTimes(b))
}

func TestNorms(t *testing.T) {
	q := New(1.0, 2, 3, 4)

	assert.Equal(t, 30.0, Norm2(q))
	assert.InDelta(t, stdmath.Sqrt(30), Norm(q), 1e-15)
	assert.Equal(t, 30.0, Dot(q, q))

	// q·conj(q) = |q|² as the real component
	qc := q.TimesConj(q)
	assert.Equal(t, New(30.0, 0, 0, 0), qc)
}

func TestNormalize(t *testing.T) {
	q := New(1.0, 2, 3, 4)
	Normalize(&q)

	assert.True(t, IsNormalized(q))
	assert.InDelta(t, 1.0, Norm(q), 1e-15)

	// already-normalized input passes through unchanged
	u := q
	Normalize(&u)
	assert.Equal(t, q, u)

	n := Normalized(New(0.0, 0, 3, 4))
	assert.InDelta(t, 0.6, n.Y(), 1e-15)
	assert.InDelta(t, 0.8, n.Z(), 1e-15)
}

func TestInverse(t *testing.T) {
	q := Normalized(New(1.0, 2, 3, 4))
	inv := Inverse(q)

	assert.True(t, ApproxEqual(One[float64](), q.Mul(inv)))
	assert.True(t, ApproxEqual(One[float64](), inv.Mul(q)))

	assert.True(t, ApproxEqual(q.Mul(Inverse(q)), TimesInverse(q, q)))

	p := Normalized(New(0.5, -1, 0.25, 2))
	assert.True(t, ApproxEqual(p.Mul(Inverse(q)), TimesInverse(p, q)))
	assert.True(t, ApproxEqual(Inverse(p).Mul(q), InverseTimes(p, q)))
}

func TestScalarOps(t *testing.T) {
	q := New(1.0, 2, 3, 4)

	assert.Equal(t, New(2.0, 4, 6, 8), MulScalar(q, 2))
	assert.Equal(t, New(0.5, 1, 1.5, 2), DivScalar(q, 2))
	assert.Equal(t, New(3.0, 2, 3, 4), AddScalar(q, 2))
	assert.Equal(t, New(-1.0, 2, 3, 4), SubScalar(q, 2))
}

func TestDistance(t *testing.T) {
	a := New(1.0, 2, 3, 4)
	b := New(2.0, 4, 6, 8)

	assert.Equal(t, 30.0, Distance2(a, b))
	assert.InDelta(t, stdmath.Sqrt(30), Distance(a, b), 1e-15)
}

func TestLerp(t *testing.T) {
	a := One[float64]()
	b := Normalized(New(0.0, 1, 0, 0))

	assert.True(t, ApproxEqual(a, Lerp(a, b, 0)))
	assert.True(t, ApproxEqual(b, Lerp(a, b, 1)))
	assert.True(t, IsNormalized(Lerp(a, b, 0.25)))
}

func TestSlerp(t *testing.T) {
	a := One[float64]()
	b := Normalized(New(1.0, 1, 0, 0))

	assert.True(t, ApproxEqual(a, Slerp(a, b, 0)))
	assert.True(t, ApproxEqual(b, Slerp(a, b, 1)))

	// midpoint of a 90° rotation about x is a 45° rotation
	x90 := New(stdmath.Cos(stdmath.Pi/4), stdmath.Sin(stdmath.Pi/4), 0, 0)
	x45 := New(stdmath.Cos(stdmath.Pi/8), stdmath.Sin(stdmath.Pi/8), 0, 0)
	assert.True(t, ApproxEqual(x45, Slerp(a, x90, 0.5)))

	// constant angular velocity
	third := Slerp(a, x90, 1.0/3)
	assert.InDelta(t, stdmath.Cos(stdmath.Pi/12), third.W(), 1e-12)
}

func TestSlerpAntipodal(t *testing.T) {
	// q and −q encode the same rotation; slerp between nearly
	// antipodal inputs must stay on the sphere rather than passing
	// through the interior
	a := Normalized(New(1.0, 0.1, 0.2, 0.3))
	b := a.Neg()
	b = Normalized(New(b.W()+1e-3, b.X(), b.Y(), b.Z()))

	mid := Slerp(a, b, 0.5)
	assert.InDelta(t, 1.0, Norm(mid), 1e-9)
}

func TestSlerpDoubleCover(t *testing.T) {
	// q and −q encode the same rotation, so negating an endpoint must
	// not change the interpolated rotation, only possibly its sign
	a := Normalized(New(1.0, 0.1, 0.2, 0.3))
	b := Normalized(New(0.4, -0.7, 0.2, 0.5))

	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := Slerp(a, b, s)
		got := Slerp(a.Neg(), b, s)
		same := ApproxEqualIn(got, want, 1e-9) || ApproxEqualIn(got.Neg(), want, 1e-9)
		assert.Truef(t, same, "t=%v: got %v, want %v up to sign", s, got, want)
	}
}

func TestSlerpCoincident(t *testing.T) {
	a := Normalized(New(1.0, 2, 3, 4))
	assert.True(t, ApproxEqual(a, Slerp(a, a, 0.37)))
}

func TestSquad(t *testing.T) {
	q0 := One[float64]()
	q1 := Normalized(New(1.0, 1, 0, 0))
	q2 := Normalized(New(1.0, 0, 1, 0))
	q3 := Normalized(New(1.0, 0, 0, 1))

	// endpoints land on the outer slerp endpoints
	assert.True(t, ApproxEqual(q0, Squad(q0, q1, q2, q3, 0)))
	assert.True(t, ApproxEqual(q3, Squad(q0, q1, q2, q3, 1)))

	assert.InDelta(t, 1.0, Norm(Squad(q0, q1, q2, q3, 0.5)), 1e-12)
}

func TestExpLog(t *testing.T) {
	q := Normalized(New(0.8, 0.2, -0.4, 0.1))

	// exp(log(q)) = q for unit quaternions
	r := Exp(Log(q))
	assert.True(t, ApproxEqualIn(q, r, 1e-12))

	// log of the identity is zero
	assert.True(t, ApproxEqual(Quat[float64]{}, Log(One[float64]())))

	// exp of zero is the identity
	assert.True(t, ApproxEqual(One[float64](), Exp(Quat[float64]{})))
}

func TestPow(t *testing.T) {
	q := Normalized(New(0.8, 0.2, -0.4, 0.1))

	// q^2 = q·q
	assert.True(t, ApproxEqualIn(q.Mul(q), Pow(q, 2), 1e-12))

	// q^1 = q
	assert.True(t, ApproxEqualIn(q, Pow(q, 1), 1e-12))

	// q^0.5 squared recovers q
	h := Pow(q, 0.5)
	assert.True(t, ApproxEqualIn(q, h.Mul(h), 1e-12))
}

func TestRandUnit(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	var meanW float64
	const n = 1000
	for range n {
		q := RandUnit[float64](rnd)
		require.InDelta(t, 1.0, Norm(q), 1e-12)
		meanW += q.W()
	}

	// uniform samples have no preferred direction
	assert.InDelta(t, 0.0, meanW/n, 0.05)
}

func TestConjugations(t *testing.T) {
	q := New(1.0, 2, 3, 4)

	assert.Equal(t, New(1.0, -2, -3, -4), q.Conj())
	assert.Equal(t, q, q.Conj().Conj())
	assert.Equal(t, New(-1.0, -2, -3, -4), q.Neg())

	// real coefficients are fixed by coefficient conjugation
	assert.Equal(t, q, q.ConjCoeff())
	assert.Equal(t, q.Conj(), q.ConjFull())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1,-2,3,-4)", New(1.0, -2, 3, -4).String())
}
