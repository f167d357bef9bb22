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

	"github.com/ajroetker/go-numeric/num"
)

// RandUnit samples a unit quaternion uniformly over the 3-sphere using
// Marsaglia's method: one uniform radius-split variable u0 and two
// uniform angles, combined as
//
//	(√(1−u0)·sin θ1, √(1−u0)·cos θ1, √u0·sin θ2, √u0·cos θ2)
//
// which is uniform over SO(3) when the result is read as a rotation.
func RandUnit[T num.Float](rnd *rand.Rand) Quat[T] {
	u0 := rnd.Float64()
	theta1 := rnd.Float64() * 2 * num.Pi
	theta2 := rnd.Float64() * 2 * num.Pi
	a := stdmath.Sqrt(1 - u0)
	b := stdmath.Sqrt(u0)

	return Quat[T]{v: [4]T{
		T(a * stdmath.Sin(theta1)),
		T(a * stdmath.Cos(theta1)),
		T(b * stdmath.Sin(theta2)),
		T(b * stdmath.Cos(theta2)),
	}}
}
