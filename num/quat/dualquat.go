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
	"github.com/ajroetker/go-numeric/num"
	"github.com/ajroetker/go-numeric/num/dual"
)

// DualQuat is a quaternion with dual-number coefficients, the standard
// carrier for rigid 3D transforms: the real part encodes the rotation,
// the dual part the translation. All arithmetic comes from the generic
// engine instantiated with dual.Ops.
type DualQuat[T num.Float] = Quaternion[dual.Dual[T], dual.Ops[T]]

// NewDualQuat builds a dual quaternion from eight scalars, one
// (real, dual) pair per component.
func NewDualQuat[T num.Float](w, dw, x, dx, y, dy, z, dz T) DualQuat[T] {
	return Make[dual.Dual[T], dual.Ops[T]](
		dual.New(w, dw), dual.New(x, dx), dual.New(y, dy), dual.New(z, dz),
	)
}

// DualQuatFromParts zips a real-part quaternion and a dual-part
// quaternion into one dual quaternion.
func DualQuatFromParts[T num.Float](re, du Quat[T]) DualQuat[T] {
	return Make[dual.Dual[T], dual.Ops[T]](
		dual.New(re.v[0], du.v[0]),
		dual.New(re.v[1], du.v[1]),
		dual.New(re.v[2], du.v[2]),
		dual.New(re.v[3], du.v[3]),
	)
}

// DualQuatFromReal lifts a plain quaternion to a dual quaternion with
// zero dual parts.
func DualQuatFromReal[T num.Float](q Quat[T]) DualQuat[T] {
	return DualQuatFromParts(q, Quat[T]{})
}

// RealPart extracts the quaternion of real coefficients.
func RealPart[T num.Float](q DualQuat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Real(), q.v[1].Real(), q.v[2].Real(), q.v[3].Real(),
	}}
}

// DualPart extracts the quaternion of dual coefficients.
func DualPart[T num.Float](q DualQuat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Dual(), q.v[1].Dual(), q.v[2].Dual(), q.v[3].Dual(),
	}}
}

// RealProduct returns the Hamilton product of the real parts only,
// discarding all dual-coefficient terms. Together with DualProduct it
// lets callers assemble partial products without paying for the full
// dual multiply.
func RealProduct[T num.Float](a, b DualQuat[T]) Quat[T] {
	return RealPart(a).Mul(RealPart(b))
}

// DualProduct returns the Hamilton product of the dual parts only.
func DualProduct[T num.Float](a, b DualQuat[T]) Quat[T] {
	return DualPart(a).Mul(DualPart(b))
}

// MulRealPart multiplies a plain quaternion against the real part of a
// dual quaternion.
func MulRealPart[T num.Float](a Quat[T], b DualQuat[T]) Quat[T] {
	return a.Mul(RealPart(b))
}
