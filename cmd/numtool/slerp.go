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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numeric/num/quat"
)

var (
	slerpFrom  string
	slerpTo    string
	slerpSteps int
)

var slerpCmd = &cobra.Command{
	Use:   "slerp",
	Short: "Spherical linear interpolation between two rotations",
	Long: `Interpolate between two unit quaternions along the great arc.

Quaternions are given as comma separated w,x,y,z components and are
normalized before interpolating.`,
	RunE: runSlerp,
}

func init() {
	slerpCmd.Flags().StringVar(&slerpFrom, "from", "1,0,0,0", "start rotation as w,x,y,z")
	slerpCmd.Flags().StringVar(&slerpTo, "to", "", "end rotation as w,x,y,z")
	slerpCmd.Flags().IntVar(&slerpSteps, "steps", 10, "number of interpolation steps")
	_ = slerpCmd.MarkFlagRequired("to")
}

// parseQuat parses "w,x,y,z" into a normalized quaternion.
func parseQuat(s string) (quat.Quat[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quat.Quat[float64]{}, errors.Newf("expected 4 comma separated components, got %q", s)
	}
	var c [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quat.Quat[float64]{}, errors.Wrapf(err, "component %d of %q", i, s)
		}
		c[i] = v
	}
	q := quat.New(c[0], c[1], c[2], c[3])
	if quat.Norm2(q) == 0 {
		return quat.Quat[float64]{}, errors.Newf("zero quaternion %q cannot be normalized", s)
	}
	return quat.Normalized(q), nil
}

func runSlerp(cmd *cobra.Command, args []string) error {
	from, err := parseQuat(slerpFrom)
	if err != nil {
		return errors.Wrap(err, "--from")
	}
	to, err := parseQuat(slerpTo)
	if err != nil {
		return errors.Wrap(err, "--to")
	}
	if slerpSteps < 1 {
		return errors.Newf("--steps must be at least 1, got %d", slerpSteps)
	}

	rows := pterm.TableData{{"t", "w", "x", "y", "z"}}
	for i := 0; i <= slerpSteps; i++ {
		t := float64(i) / float64(slerpSteps)
		q := quat.Slerp(from, to, t)
		rows = append(rows, []string{
			fmt.Sprintf("%.3f", t),
			fmt.Sprintf("%+.6f", q.W()),
			fmt.Sprintf("%+.6f", q.X()),
			fmt.Sprintf("%+.6f", q.Y()),
			fmt.Sprintf("%+.6f", q.Z()),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
