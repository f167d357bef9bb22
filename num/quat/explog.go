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

// Log maps a unit quaternion to its rotation vector scaled by the
// rotation half-angle: log(q) = (0, v·φ/sin φ) with φ = acos(w). The
// output is pure imaginary; a degenerate angle (sin φ ≈ 0) yields the
// zero quaternion.
func Log[T num.Float](q Quat[T]) Quat[T] {
	phi := stdmath.Acos(float64(q.v[0]))
	sinPhi := stdmath.Sin(phi)

	var out Quat[T]
	if sinPhi > 0 {
		s := T(phi / sinPhi)
		out.v[1] = q.v[1] * s
		out.v[2] = q.v[2] * s
		out.v[3] = q.v[3] * s
	}
	return out
}

// Exp is the inverse mapping of Log: for a pure-imaginary quaternion
// (0, v) with φ = ‖v‖, exp(q) = (cos φ, v·sin φ/φ). A zero imaginary
// part maps to the identity.
func Exp[T num.Float](q Quat[T]) Quat[T] {
	phi := stdmath.Sqrt(float64(q.v[1]*q.v[1] + q.v[2]*q.v[2] + q.v[3]*q.v[3]))

	var out Quat[T]
	out.v[0] = T(stdmath.Cos(phi))
	if phi > 0 {
		s := T(stdmath.Sin(phi) / phi)
		out.v[1] = q.v[1] * s
		out.v[2] = q.v[2] * s
		out.v[3] = q.v[3] * s
	}
	return out
}

// Pow raises a unit quaternion to a real exponent via
// exp(log(q)·e), generalizing rotation to fractional powers.
func Pow[T num.Float](q Quat[T], e T) Quat[T] {
	return Exp(MulScalar(Log(q), e))
}
