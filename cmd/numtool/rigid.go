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

package main

import (
	"fmt"
	stdmath "math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numeric/num/quat"
)

var (
	rigidAxis      string
	rigidAngle     float64
	rigidTranslate string
)

var rigidCmd = &cobra.Command{
	Use:   "rigid [flags] -- <x> <y> <z>",
	Short: "Apply a rigid transform as a unit dual quaternion",
	Long: `Rotate and translate a 3D point with a unit dual quaternion.

The rotation is given as an axis and an angle in degrees, the
translation as a comma separated vector. Rotation and translation are
packed into a single dual quaternion q = r + (eps/2)·t·r and the point
is transformed by the sandwich product q·(1 + eps·p)·conj(q)*.`,
	Args: cobra.ExactArgs(3),
	RunE: runRigid,
}

func init() {
	rigidCmd.Flags().StringVar(&rigidAxis, "axis", "0,0,1", "rotation axis as x,y,z")
	rigidCmd.Flags().Float64Var(&rigidAngle, "angle", 0, "rotation angle in degrees")
	rigidCmd.Flags().StringVar(&rigidTranslate, "translate", "0,0,0", "translation vector as x,y,z")
}

// parseVec3 parses "x,y,z" into three floats.
func parseVec3(s string) (x, y, z float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Newf("expected 3 comma separated components, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		c[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, errors.Wrapf(err, "component %d of %q", i, s)
		}
	}
	return c[0], c[1], c[2], nil
}

func runRigid(cmd *cobra.Command, args []string) error {
	ax, ay, az, err := parseVec3(rigidAxis)
	if err != nil {
		return errors.Wrap(err, "--axis")
	}
	n := stdmath.Sqrt(ax*ax + ay*ay + az*az)
	if n == 0 {
		return errors.New("--axis must be nonzero")
	}
	ax, ay, az = ax/n, ay/n, az/n

	tx, ty, tz, err := parseVec3(rigidTranslate)
	if err != nil {
		return errors.Wrap(err, "--translate")
	}

	var p [3]float64
	for i, arg := range args {
		p[i], err = strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "point component %q", arg)
		}
	}

	half := rigidAngle * stdmath.Pi / 180 / 2
	s := stdmath.Sin(half)
	r := quat.New(stdmath.Cos(half), s*ax, s*ay, s*az)
	trans := quat.New(0, tx, ty, tz)
	dq := quat.DualQuatFromParts(r, quat.MulScalar(trans.Mul(r), 0.5))

	// sandwich: q·(1 + eps·p)·conj_full(q) = 1 + eps·p'
	point := quat.DualQuatFromParts(quat.One[float64](), quat.New(0.0, p[0], p[1], p[2]))
	out := quat.DualPart(dq.Mul(point).Mul(dq.ConjFull()))

	pterm.Info.Printfln("rotation    %v", r)
	pterm.Info.Printfln("translation (%g, %g, %g)", tx, ty, tz)
	fmt.Printf("(%g, %g, %g) -> (%.9g, %.9g, %.9g)\n",
		p[0], p[1], p[2], out.X(), out.Y(), out.Z())
	return nil
}
