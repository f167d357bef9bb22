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

// numtool is a command line front end for the go-numeric packages:
// quaternion interpolation, dual-number differentiation, rigid
// transforms, and interval arithmetic.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "numtool",
	Short: "Hypercomplex and interval arithmetic toolbox",
	Long: `numtool - quaternions, dual numbers and interval arithmetic.

Available commands:
  slerp    - Spherical linear interpolation between two rotations
  deriv    - Evaluate a function and its derivative via dual numbers
  rigid    - Apply a rigid transform as a unit dual quaternion
  interval - Evaluate interval arithmetic expressions

Examples:
  numtool slerp --from 1,0,0,0 --to 0.707,0.707,0,0 --steps 5
  numtool deriv sin 0.5 1.0 1.5
  numtool rigid --axis 0,0,1 --angle 90 --translate 1,0,0 -- 1 0 0
  numtool interval --a 1,2 --b 3,5 mul`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(slerpCmd)
	rootCmd.AddCommand(derivCmd)
	rootCmd.AddCommand(rigidCmd)
	rootCmd.AddCommand(intervalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
