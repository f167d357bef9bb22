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
	"github.com/ajroetker/go-numeric/num/cplx"
)

// Biquat is a quaternion with ordinary complex coefficients
// (Hamilton's biquaternions).
type Biquat[T num.Float] = Quaternion[cplx.Complex[T], cplx.Ops[T]]

// NewBiquat builds a biquaternion from eight scalars, one (real, imag)
// pair per component.
func NewBiquat[T num.Float](w, iw, x, ix, y, iy, z, iz T) Biquat[T] {
	return Make[cplx.Complex[T], cplx.Ops[T]](
		cplx.New(w, iw), cplx.New(x, ix), cplx.New(y, iy), cplx.New(z, iz),
	)
}

// BiquatFromParts zips a real-part quaternion and an imaginary-part
// quaternion into one biquaternion.
func BiquatFromParts[T num.Float](re, im Quat[T]) Biquat[T] {
	return Make[cplx.Complex[T], cplx.Ops[T]](
		cplx.New(re.v[0], im.v[0]),
		cplx.New(re.v[1], im.v[1]),
		cplx.New(re.v[2], im.v[2]),
		cplx.New(re.v[3], im.v[3]),
	)
}

// BiquatFromReal lifts a plain quaternion to a biquaternion with zero
// imaginary parts.
func BiquatFromReal[T num.Float](q Quat[T]) Biquat[T] {
	return BiquatFromParts(q, Quat[T]{})
}

// BiquatRealPart extracts the quaternion of real coefficients.
func BiquatRealPart[T num.Float](q Biquat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Real(), q.v[1].Real(), q.v[2].Real(), q.v[3].Real(),
	}}
}

// BiquatImagPart extracts the quaternion of imaginary coefficients.
func BiquatImagPart[T num.Float](q Biquat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Imag(), q.v[1].Imag(), q.v[2].Imag(), q.v[3].Imag(),
	}}
}

// BiquatRealProduct returns the Hamilton product of the real-part
// quaternions only, discarding every imaginary-coefficient term.
// Together with BiquatImagProduct it lets callers assemble partial
// products without paying for the full complex multiply.
func BiquatRealProduct[T num.Float](a, b Biquat[T]) Quat[T] {
	return BiquatRealPart(a).Mul(BiquatRealPart(b))
}

// BiquatImagProduct returns the Hamilton product of the imaginary-part
// quaternions only.
func BiquatImagProduct[T num.Float](a, b Biquat[T]) Quat[T] {
	return BiquatImagPart(a).Mul(BiquatImagPart(b))
}

// MulBiquatRealPart multiplies a plain quaternion against the real
// part of a biquaternion.
func MulBiquatRealPart[T num.Float](a Quat[T], b Biquat[T]) Quat[T] {
	return a.Mul(BiquatRealPart(b))
}
