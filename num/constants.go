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

// Mathematical constants. Declared untyped so they convert exactly to
// whichever Float instantiation uses them.
const (
	Pi     = 3.141592653589793238462643383279500
	E      = 2.718281828459045235360287471352663
	Log2E  = 1.4426950408889634074
	Log10E = 0.43429448190325182765
	Ln2    = 0.69314718055994530942
	Ln10   = 2.30258509299404568402
	Sqrt2  = 1.41421356237309504880
	Sqrt12 = 0.70710678118654752440

	// TwoOverSqrtPi is d/dx erf(x) at x = 0, the scale factor of the
	// error-function derivative.
	TwoOverSqrtPi = 1.1283791670955125738961589031215451716881012586580
)
