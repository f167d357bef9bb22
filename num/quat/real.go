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

	"github.com/ajroetker/go-numeric/num"
)

// Quat is the real-coefficient quaternion, the representation of a 3D
// rotation. It is the same engine as every composite algebra,
// instantiated over plain floats.
type Quat[T num.Float] = Quaternion[T, RealOps[T]]

// New returns the real quaternion w + xi + yj + zk.
func New[T num.Float](w, x, y, z T) Quat[T] {
	return Quat[T]{v: [4]T{w, x, y, z}}
}

// One returns the multiplicative identity (1,0,0,0).
func One[T num.Float]() Quat[T] {
	return Quat[T]{v: [4]T{1, 0, 0, 0}}
}

// WidenQuat losslessly converts a float32 quaternion to any element
// type. There is no unchecked narrowing counterpart.
func WidenQuat[T num.Float](q Quat[float32]) Quat[T] {
	return Quat[T]{v: [4]T{T(q.v[0]), T(q.v[1]), T(q.v[2]), T(q.v[3])}}
}

// Dot returns the four-component dot product of a and b.
func Dot[T num.Float](a, b Quat[T]) T {
	return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2] + a.v[3]*b.v[3]
}

// Norm2 returns the squared norm ‖q‖².
func Norm2[T num.Float](q Quat[T]) T {
	return Dot(q, q)
}

// Norm returns the norm ‖q‖.
func Norm[T num.Float](q Quat[T]) T {
	return T(stdmath.Sqrt(float64(Norm2(q))))
}

// Distance2 returns the squared componentwise distance between a and b.
func Distance2[T num.Float](a, b Quat[T]) T {
	return (a.v[0]-b.v[0])*(a.v[0]-b.v[0]) +
		(a.v[1]-b.v[1])*(a.v[1]-b.v[1]) +
		(a.v[2]-b.v[2])*(a.v[2]-b.v[2]) +
		(a.v[3]-b.v[3])*(a.v[3]-b.v[3])
}

// Distance returns the componentwise distance between a and b.
func Distance[T num.Float](a, b Quat[T]) T {
	return T(stdmath.Sqrt(float64(Distance2(a, b))))
}

// IsNormalized reports whether ‖q‖² is within the default tolerance
// of one.
func IsNormalized[T num.Float](q Quat[T]) bool {
	return num.ApproxOne(Norm2(q))
}

// Normalize rescales q to unit length in place. The rescale is skipped
// when ‖q‖² is already within tolerance of one; repeated
// re-normalization of near-unit quaternions (incremental rotation
// updates) then costs only the dot product.
func Normalize[T num.Float](q *Quat[T]) {
	n := Norm2(*q)
	if num.ApproxOne(n) {
		return
	}
	inv := 1 / T(stdmath.Sqrt(float64(n)))
	q.v[0] *= inv
	q.v[1] *= inv
	q.v[2] *= inv
	q.v[3] *= inv
}

// Normalized returns q rescaled to unit length.
func Normalized[T num.Float](q Quat[T]) Quat[T] {
	Normalize(&q)
	return q
}

// Invert replaces q with its inverse in place: conjugate, then
// renormalize. For unit quaternions the renormalize reduces to the
// epsilon-gated dot product; for non-unit quaternions it performs the
// division by the norm.
func Invert[T num.Float](q *Quat[T]) {
	q.v[1] = -q.v[1]
	q.v[2] = -q.v[2]
	q.v[3] = -q.v[3]
	Normalize(q)
}

// Inverse returns the inverse of q.
func Inverse[T num.Float](q Quat[T]) Quat[T] {
	Invert(&q)
	return q
}

// TimesInverse returns p·q⁻¹.
func TimesInverse[T num.Float](p, q Quat[T]) Quat[T] {
	Invert(&q)
	return p.Mul(q)
}

// InverseTimes returns p⁻¹·q.
func InverseTimes[T num.Float](p, q Quat[T]) Quat[T] {
	Invert(&p)
	return p.Mul(q)
}

// MulScalar returns q with every component scaled by s.
func MulScalar[T num.Float](q Quat[T], s T) Quat[T] {
	return Quat[T]{v: [4]T{q.v[0] * s, q.v[1] * s, q.v[2] * s, q.v[3] * s}}
}

// DivScalar returns q with every component divided by s.
func DivScalar[T num.Float](q Quat[T], s T) Quat[T] {
	return MulScalar(q, 1/s)
}

// AddScalar returns q with s added to every component.
func AddScalar[T num.Float](q Quat[T], s T) Quat[T] {
	return Quat[T]{v: [4]T{q.v[0] + s, q.v[1] + s, q.v[2] + s, q.v[3] + s}}
}

// SubScalar returns q with s subtracted from every component.
func SubScalar[T num.Float](q Quat[T], s T) Quat[T] {
	return AddScalar(q, -s)
}

// Equal reports exact componentwise equality.
func Equal[T num.Float](a, b Quat[T]) bool {
	return a.v == b.v
}

// ApproxEqualIn reports componentwise equality within tol.
func ApproxEqualIn[T num.Float](a, b Quat[T], tol T) bool {
	return num.ApproxEqualIn(a.v[0], b.v[0], tol) &&
		num.ApproxEqualIn(a.v[1], b.v[1], tol) &&
		num.ApproxEqualIn(a.v[2], b.v[2], tol) &&
		num.ApproxEqualIn(a.v[3], b.v[3], tol)
}

// ApproxEqual reports componentwise equality within the default
// tolerance for T.
func ApproxEqual[T num.Float](a, b Quat[T]) bool {
	return ApproxEqualIn(a, b, num.Eps[T]())
}
