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
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numeric/num/interval"
)

var (
	intervalA string
	intervalB string
)

var intervalCmd = &cobra.Command{
	Use:   "interval --a lo,hi --b lo,hi <op>",
	Short: "Evaluate interval arithmetic expressions",
	Long: `Combine two intervals with an arithmetic or set operation.

Operations: add sub mul div intersect distance penetration`,
	Args: cobra.ExactArgs(1),
	RunE: runInterval,
}

func init() {
	intervalCmd.Flags().StringVar(&intervalA, "a", "", "left interval as lo,hi")
	intervalCmd.Flags().StringVar(&intervalB, "b", "", "right interval as lo,hi")
	_ = intervalCmd.MarkFlagRequired("a")
	_ = intervalCmd.MarkFlagRequired("b")
}

// parseInterval parses "lo,hi" into an interval, accepting bounds in
// either order.
func parseInterval(s string) (interval.Interval[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return interval.Interval[float64]{}, errors.Newf("expected lo,hi, got %q", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return interval.Interval[float64]{}, errors.Wrapf(err, "lower bound of %q", s)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return interval.Interval[float64]{}, errors.Wrapf(err, "upper bound of %q", s)
	}
	return interval.New(lo, hi), nil
}

func runInterval(cmd *cobra.Command, args []string) error {
	a, err := parseInterval(intervalA)
	if err != nil {
		return errors.Wrap(err, "--a")
	}
	b, err := parseInterval(intervalB)
	if err != nil {
		return errors.Wrap(err, "--b")
	}

	switch args[0] {
	case "add":
		fmt.Println(a.Add(b))
	case "sub":
		fmt.Println(a.Sub(b))
	case "mul":
		fmt.Println(a.Mul(b))
	case "div":
		fmt.Println(a.Div(b))
	case "intersect":
		fmt.Println(interval.Intersection(a, b))
	case "distance":
		fmt.Println(interval.Distance(a, b))
	case "penetration":
		fmt.Println(interval.PenetrationDepth(a, b))
	default:
		return errors.Newf("unknown operation %q", args[0])
	}
	return nil
}
