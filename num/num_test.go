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

package num

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEps(t *testing.T) {
	assert.InDelta(t, 100*float64(stdmath.Nextafter32(1, 2)-1), float64(Eps[float32]()), 1e-12)
	assert.InDelta(t, 100*(stdmath.Nextafter(1, 2)-1), Eps[float64](), 1e-28)

	// Defined types resolve by representation width.
	type myFloat float32
	assert.Equal(t, float32(Eps[float32]()), float32(Eps[myFloat]()))
}

func TestApproxComparisons(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		tol  float64
		want bool
	}{
		{"identical", 1.5, 1.5, 1e-9, true},
		{"within tolerance", 1.5, 1.5 + 1e-10, 1e-9, true},
		{"outside tolerance", 1.5, 1.5 + 1e-8, 1e-9, false},
		{"sign matters", 1.5, -1.5, 1e-9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApproxEqualIn(tt.a, tt.b, tt.tol))
		})
	}

	assert.True(t, ApproxZero(1e-16))
	assert.False(t, ApproxZero(1e-3))
	assert.True(t, ApproxOne(1.0+1e-16))
	assert.False(t, ApproxOne(1.01))
}

func TestNarrow(t *testing.T) {
	got, err := Narrow[float32](0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), got)

	// 1/3 is not exactly representable in float32.
	_, err = Narrow[float32](1.0 / 3.0)
	require.Error(t, err)

	// Same-width narrowing always succeeds.
	same, err := Narrow[float64](stdmath.Pi)
	require.NoError(t, err)
	assert.Equal(t, stdmath.Pi, same)
}

func TestWiden(t *testing.T) {
	assert.Equal(t, 0.25, Widen[float64](float32(0.25)))
	assert.Equal(t, float32(0.25), Widen[float32](float32(0.25)))
}

func TestMinMaxAbsClamp(t *testing.T) {
	assert.Equal(t, 1.0, Min(1.0, 2.0))
	assert.Equal(t, 2.0, Max(1.0, 2.0))
	assert.Equal(t, 3.0, Abs(-3.0))
	assert.Equal(t, 1.0, Clamp(2.0, -1.0, 1.0))
	assert.Equal(t, -1.0, Clamp(-2.0, -1.0, 1.0))
	assert.Equal(t, 0.5, Clamp(0.5, -1.0, 1.0))
}
