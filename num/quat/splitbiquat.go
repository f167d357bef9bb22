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
	"github.com/ajroetker/go-numeric/num/scomplex"
)

// SplitBiquat is a quaternion with split-complex coefficients
// (Clifford's algebra of "motors").
type SplitBiquat[T num.Float] = Quaternion[scomplex.SComplex[T], scomplex.Ops[T]]

// NewSplitBiquat builds a split biquaternion from eight scalars, one
// (real, split-imag) pair per component.
func NewSplitBiquat[T num.Float](w, jw, x, jx, y, jy, z, jz T) SplitBiquat[T] {
	return Make[scomplex.SComplex[T], scomplex.Ops[T]](
		scomplex.New(w, jw), scomplex.New(x, jx), scomplex.New(y, jy), scomplex.New(z, jz),
	)
}

// SplitBiquatFromParts zips a real-part quaternion and a split-part
// quaternion into one split biquaternion.
func SplitBiquatFromParts[T num.Float](re, im Quat[T]) SplitBiquat[T] {
	return Make[scomplex.SComplex[T], scomplex.Ops[T]](
		scomplex.New(re.v[0], im.v[0]),
		scomplex.New(re.v[1], im.v[1]),
		scomplex.New(re.v[2], im.v[2]),
		scomplex.New(re.v[3], im.v[3]),
	)
}

// SplitBiquatFromReal lifts a plain quaternion to a split biquaternion
// with zero split parts.
func SplitBiquatFromReal[T num.Float](q Quat[T]) SplitBiquat[T] {
	return SplitBiquatFromParts(q, Quat[T]{})
}

// SplitBiquatRealPart extracts the quaternion of real coefficients.
func SplitBiquatRealPart[T num.Float](q SplitBiquat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Real(), q.v[1].Real(), q.v[2].Real(), q.v[3].Real(),
	}}
}

// SplitBiquatImagPart extracts the quaternion of split-imaginary
// coefficients.
func SplitBiquatImagPart[T num.Float](q SplitBiquat[T]) Quat[T] {
	return Quat[T]{v: [4]T{
		q.v[0].Imag(), q.v[1].Imag(), q.v[2].Imag(), q.v[3].Imag(),
	}}
}
