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
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numeric/num/dual"
)

// derivFuncs maps function names to their dual-number implementations.
// Evaluating one at (x, 1) yields the value and exact derivative in a
// single pass.
var derivFuncs = map[string]func(dual.Dual[float64]) dual.Dual[float64]{
	"sqrt":  dual.Sqrt[float64],
	"cbrt":  dual.Cbrt[float64],
	"exp":   dual.Exp[float64],
	"exp2":  dual.Exp2[float64],
	"expm1": dual.Expm1[float64],
	"log":   dual.Log[float64],
	"log2":  dual.Log2[float64],
	"log10": dual.Log10[float64],
	"log1p": dual.Log1p[float64],
	"sin":   dual.Sin[float64],
	"cos":   dual.Cos[float64],
	"tan":   dual.Tan[float64],
	"asin":  dual.Asin[float64],
	"acos":  dual.Acos[float64],
	"atan":  dual.Atan[float64],
	"sinh":  dual.Sinh[float64],
	"cosh":  dual.Cosh[float64],
	"tanh":  dual.Tanh[float64],
	"asinh": dual.Asinh[float64],
	"acosh": dual.Acosh[float64],
	"atanh": dual.Atanh[float64],
	"erf":   dual.Erf[float64],
	"erfc":  dual.Erfc[float64],
}

var derivCmd = &cobra.Command{
	Use:   "deriv <function> <x>...",
	Short: "Evaluate a function and its derivative via dual numbers",
	Long: `Evaluate a function together with its exact first derivative.

The derivative is computed by forward-mode automatic differentiation:
the input is lifted to the dual number (x, 1) and the dual part of the
result is f'(x), with no finite-difference error.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDeriv,
}

func runDeriv(cmd *cobra.Command, args []string) error {
	f, ok := derivFuncs[args[0]]
	if !ok {
		names := make([]string, 0, len(derivFuncs))
		for name := range derivFuncs {
			names = append(names, name)
		}
		sort.Strings(names)
		return errors.Newf("unknown function %q, available: %s",
			args[0], strings.Join(names, " "))
	}

	rows := pterm.TableData{{"x", args[0] + "(x)", args[0] + "'(x)"}}
	for _, arg := range args[1:] {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "argument %q", arg)
		}
		y := f(dual.New(x, 1))
		rows = append(rows, []string{
			fmt.Sprintf("%g", x),
			fmt.Sprintf("%.12g", y.Real()),
			fmt.Sprintf("%.12g", y.Dual()),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
