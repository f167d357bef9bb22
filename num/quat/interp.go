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

// Interpolation between unit quaternions. t is expected in [0,1];
// values outside extrapolate with the same formulas.

// Lerp blends a and b componentwise at parameter t and renormalizes.
// Linear blending of unit quaternions is not itself unit length, hence
// the renormalize.
func Lerp[T num.Float](a, b Quat[T], t T) Quat[T] {
	t1 := 1 - t
	out := Quat[T]{v: [4]T{
		a.v[0]*t1 + b.v[0]*t,
		a.v[1]*t1 + b.v[1]*t,
		a.v[2]*t1 + b.v[2]*t,
		a.v[3]*t1 + b.v[3]*t,
	}}
	Normalize(&out)
	return out
}

// Slerp spherically interpolates from a to b at parameter t with
// constant angular velocity, using the default tolerance for the
// degenerate-angle fallback.
func Slerp[T num.Float](a, b Quat[T], t T) Quat[T] {
	return SlerpIn(a, b, t, num.Eps[T]())
}

// SlerpIn is Slerp with an explicit degenerate-angle tolerance.
//
// When dot(a,b) < 0 the second endpoint is negated in the blend: q and
// −q represent the same rotation (double cover), and without the sign
// flip the interpolation would swing through the longer arc. When the
// endpoints are nearly parallel or nearly antiparallel the spherical
// weights divide by sin φ ≈ 0, so the blend falls back to the linear
// weights (1−t, t).
func SlerpIn[T num.Float](a, b Quat[T], t, tol T) Quat[T] {
	cosPhi := Dot(a, b)

	var from, to T
	if cosPhi < 0 {
		if 1+cosPhi > tol {
			phi := stdmath.Acos(float64(-cosPhi))
			sinPhi := stdmath.Sin(phi)
			from = T(stdmath.Sin((1 - float64(t)) * phi) / sinPhi)
			to = T(stdmath.Sin(float64(t)*phi) / sinPhi)
		} else {
			from = 1 - t
			to = t
		}
		return Quat[T]{v: [4]T{
			a.v[0]*from - b.v[0]*to,
			a.v[1]*from - b.v[1]*to,
			a.v[2]*from - b.v[2]*to,
			a.v[3]*from - b.v[3]*to,
		}}
	}

	if 1-cosPhi > tol {
		phi := stdmath.Acos(float64(cosPhi))
		sinPhi := stdmath.Sin(phi)
		from = T(stdmath.Sin((1 - float64(t)) * phi) / sinPhi)
		to = T(stdmath.Sin(float64(t)*phi) / sinPhi)
	} else {
		from = 1 - t
		to = t
	}
	return Quat[T]{v: [4]T{
		a.v[0]*from + b.v[0]*to,
		a.v[1]*from + b.v[1]*to,
		a.v[2]*from + b.v[2]*to,
		a.v[3]*from + b.v[3]*to,
	}}
}

// Squad performs spherical cubic interpolation across the four control
// quaternions q0..q3:
//
//	squad(q0,q1,q2,q3,t) = slerp(slerp(q0,q3,t), slerp(q1,q2,t), 2t(1−t))
//
// the standard construction for smooth keyframe rotation paths.
func Squad[T num.Float](q0, q1, q2, q3 Quat[T], t T) Quat[T] {
	return Slerp(Slerp(q0, q3, t), Slerp(q1, q2, t), 2*t*(1-t))
}
