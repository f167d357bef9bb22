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

// Package quat implements quaternions w + xi + yj + zk under Hamilton's
// rules (i² = j² = k² = ijk = −1), generic over the coefficient
// algebra. One engine serves every composite: instantiating the
// coefficient with plain floats gives the rotation quaternion Quat[T];
// instantiating it with complex, dual, or split-complex coefficients
// gives biquaternions, dual quaternions (rigid 3D transforms), and
// split biquaternions without any new multiplication logic.
//
// The coefficient contract is the Ring interface, satisfied by
// zero-size adapter types (RealOps, cplx.Ops, dual.Ops, scomplex.Ops)
// so all dispatch is static.
//
// Usage:
//
//	a := quat.New(1.0, 0, 0, 0)
//	b := quat.New(0.0, 1, 0, 0)
//	c := a.Mul(b)                      // basis i
//	m := quat.Slerp(a, b, 0.5)         // halfway rotation
package quat

import (
	"fmt"

	"github.com/ajroetker/go-numeric/num"
)

// Ring is the contract a quaternion coefficient algebra must satisfy.
// Implementations are zero-size structs; the engine instantiates them
// via their zero value, so methods must not depend on receiver state.
type Ring[E any] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	Conj(a E) E
}

// Quaternion is a four-component hypercomplex number over the
// coefficient algebra E with operations A. The zero value is the zero
// quaternion; use Identity for the multiplicative identity (1,0,0,0).
type Quaternion[E any, A Ring[E]] struct {
	v [4]E
}

// Make returns the quaternion w + xi + yj + zk.
func Make[E any, A Ring[E]](w, x, y, z E) Quaternion[E, A] {
	return Quaternion[E, A]{v: [4]E{w, x, y, z}}
}

// Identity returns the multiplicative identity (1,0,0,0).
func Identity[E any, A Ring[E]]() Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{alg.One(), alg.Zero(), alg.Zero(), alg.Zero()}}
}

// At returns component i (0..3 = w,x,y,z).
func (q Quaternion[E, A]) At(i int) E { return q.v[i] }

// W returns the real component.
func (q Quaternion[E, A]) W() E { return q.v[0] }

// X returns the i component.
func (q Quaternion[E, A]) X() E { return q.v[1] }

// Y returns the j component.
func (q Quaternion[E, A]) Y() E { return q.v[2] }

// Z returns the k component.
func (q Quaternion[E, A]) Z() E { return q.v[3] }

// Add returns q + r componentwise.
func (q Quaternion[E, A]) Add(r Quaternion[E, A]) Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Add(q.v[0], r.v[0]),
		alg.Add(q.v[1], r.v[1]),
		alg.Add(q.v[2], r.v[2]),
		alg.Add(q.v[3], r.v[3]),
	}}
}

// Sub returns q − r componentwise.
func (q Quaternion[E, A]) Sub(r Quaternion[E, A]) Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Sub(q.v[0], r.v[0]),
		alg.Sub(q.v[1], r.v[1]),
		alg.Sub(q.v[2], r.v[2]),
		alg.Sub(q.v[3], r.v[3]),
	}}
}

// Mul returns the Hamilton product q·r. The sign and term layout here
// is the basis of rotation composition and must stay consistent with
// TimesConj, ConjTimes, and Invert.
func (q Quaternion[E, A]) Mul(r Quaternion[E, A]) Quaternion[E, A] {
	var alg A
	p, s := &q.v, &r.v
	return Quaternion[E, A]{v: [4]E{
		// r0 = p0q0 − p1q1 − p2q2 − p3q3
		alg.Sub(alg.Sub(alg.Sub(alg.Mul(p[0], s[0]), alg.Mul(p[1], s[1])), alg.Mul(p[2], s[2])), alg.Mul(p[3], s[3])),
		// r1 = p0q1 + p1q0 + p2q3 − p3q2
		alg.Sub(alg.Add(alg.Add(alg.Mul(p[0], s[1]), alg.Mul(p[1], s[0])), alg.Mul(p[2], s[3])), alg.Mul(p[3], s[2])),
		// r2 = p0q2 − p1q3 + p2q0 + p3q1
		alg.Add(alg.Add(alg.Sub(alg.Mul(p[0], s[2]), alg.Mul(p[1], s[3])), alg.Mul(p[2], s[0])), alg.Mul(p[3], s[1])),
		// r3 = p0q3 + p1q2 − p2q1 + p3q0
		alg.Add(alg.Sub(alg.Add(alg.Mul(p[0], s[3]), alg.Mul(p[1], s[2])), alg.Mul(p[2], s[1])), alg.Mul(p[3], s[0])),
	}}
}

// TimesConj returns q·conj(r) without materializing the conjugate,
// with the quaternion-level conjugation folded into the sign pattern.
func (q Quaternion[E, A]) TimesConj(r Quaternion[E, A]) Quaternion[E, A] {
	var alg A
	p, s := &q.v, &r.v
	return Quaternion[E, A]{v: [4]E{
		// r0 =  p0q0 + p1q1 + p2q2 + p3q3
		alg.Add(alg.Add(alg.Add(alg.Mul(p[0], s[0]), alg.Mul(p[1], s[1])), alg.Mul(p[2], s[2])), alg.Mul(p[3], s[3])),
		// r1 = −p0q1 + p1q0 − p2q3 + p3q2
		alg.Add(alg.Sub(alg.Add(alg.Neg(alg.Mul(p[0], s[1])), alg.Mul(p[1], s[0])), alg.Mul(p[2], s[3])), alg.Mul(p[3], s[2])),
		// r2 = −p0q2 + p1q3 + p2q0 − p3q1
		alg.Sub(alg.Add(alg.Add(alg.Neg(alg.Mul(p[0], s[2])), alg.Mul(p[1], s[3])), alg.Mul(p[2], s[0])), alg.Mul(p[3], s[1])),
		// r3 = −p0q3 − p1q2 + p2q1 + p3q0
		alg.Add(alg.Add(alg.Sub(alg.Neg(alg.Mul(p[0], s[3])), alg.Mul(p[1], s[2])), alg.Mul(p[2], s[1])), alg.Mul(p[3], s[0])),
	}}
}

// ConjTimes returns conj(q)·r without materializing the conjugate.
func (q Quaternion[E, A]) ConjTimes(r Quaternion[E, A]) Quaternion[E, A] {
	var alg A
	p, s := &q.v, &r.v
	return Quaternion[E, A]{v: [4]E{
		// r0 = p0q0 + p1q1 + p2q2 + p3q3
		alg.Add(alg.Add(alg.Add(alg.Mul(p[0], s[0]), alg.Mul(p[1], s[1])), alg.Mul(p[2], s[2])), alg.Mul(p[3], s[3])),
		// r1 = p0q1 − p1q0 − p2q3 + p3q2
		alg.Add(alg.Sub(alg.Sub(alg.Mul(p[0], s[1]), alg.Mul(p[1], s[0])), alg.Mul(p[2], s[3])), alg.Mul(p[3], s[2])),
		// r2 = p0q2 + p1q3 − p2q0 − p3q1
		alg.Sub(alg.Sub(alg.Add(alg.Mul(p[0], s[2]), alg.Mul(p[1], s[3])), alg.Mul(p[2], s[0])), alg.Mul(p[3], s[1])),
		// r3 = p0q3 − p1q2 + p2q1 − p3q0
		alg.Sub(alg.Add(alg.Sub(alg.Mul(p[0], s[3]), alg.Mul(p[1], s[2])), alg.Mul(p[2], s[1])), alg.Mul(p[3], s[0])),
	}}
}

// Conj returns the quaternion conjugate, negating the three imaginary
// components.
func (q Quaternion[E, A]) Conj() Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		q.v[0], alg.Neg(q.v[1]), alg.Neg(q.v[2]), alg.Neg(q.v[3]),
	}}
}

// ConjCoeff applies the coefficient algebra's conjugation to every
// component, leaving the quaternion structure alone. For dual quats
// this is the dual conjugate, for biquaternions the complex conjugate,
// for split biquaternions the split conjugate. Over the reals it is
// the identity.
func (q Quaternion[E, A]) ConjCoeff() Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Conj(q.v[0]), alg.Conj(q.v[1]), alg.Conj(q.v[2]), alg.Conj(q.v[3]),
	}}
}

// ConjFull composes quaternion conjugation with coefficient
// conjugation: the real component is coefficient-conjugated, the three
// imaginary components are negated and coefficient-conjugated.
func (q Quaternion[E, A]) ConjFull() Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Conj(q.v[0]),
		alg.Neg(alg.Conj(q.v[1])),
		alg.Neg(alg.Conj(q.v[2])),
		alg.Neg(alg.Conj(q.v[3])),
	}}
}

// Neg returns −q componentwise.
func (q Quaternion[E, A]) Neg() Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Neg(q.v[0]), alg.Neg(q.v[1]), alg.Neg(q.v[2]), alg.Neg(q.v[3]),
	}}
}

// Scale returns q with every component multiplied by the coefficient s.
func (q Quaternion[E, A]) Scale(s E) Quaternion[E, A] {
	var alg A
	return Quaternion[E, A]{v: [4]E{
		alg.Mul(q.v[0], s), alg.Mul(q.v[1], s), alg.Mul(q.v[2], s), alg.Mul(q.v[3], s),
	}}
}

// String renders the print form "(w,x,y,z)"; composite coefficients
// nest their own print forms.
func (q Quaternion[E, A]) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v)", q.v[0], q.v[1], q.v[2], q.v[3])
}

// RealOps implements Ring for plain floats, making Quat[T] an
// instantiation of the same engine the composite algebras use.
// Conjugation over the reals is the identity.
type RealOps[T num.Float] struct{}

// Zero returns 0.
func (RealOps[T]) Zero() T { return 0 }

// One returns 1.
func (RealOps[T]) One() T { return 1 }

// Add returns a + b.
func (RealOps[T]) Add(a, b T) T { return a + b }

// Sub returns a − b.
func (RealOps[T]) Sub(a, b T) T { return a - b }

// Mul returns a·b.
func (RealOps[T]) Mul(a, b T) T { return a * b }

// Neg returns −a.
func (RealOps[T]) Neg(a T) T { return -a }

// Conj returns a unchanged.
func (RealOps[T]) Conj(a T) T { return a }

var _ Ring[float64] = RealOps[float64]{}
