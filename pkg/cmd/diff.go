// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/differ"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] expression",
	Short: "Differentiate an expression.",
	Long: `Differentiate an expression symbolically with respect to one of its
	variables (by default, the first to appear).  Higher derivatives are
	obtained with --order, and the result is simplified unless --no-simplify
	is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s          = openSession(cmd, args)
			index      = s.variable(GetString(cmd, "var"))
			order      = GetUint(cmd, "order")
			derivative *ast.Node
			err        error
		)
		//
		if GetFlag(cmd, "no-simplify") {
			derivative, err = differentiateRaw(s.ctx, s.expr, index, order)
		} else {
			derivative, err = s.ctx.DifferentiateN(s.expr, index, order)
		}
		//
		if err != nil {
			exitWithError(err)
		}
		//
		s.write(cmd, derivative)
		//
		if GetFlag(cmd, "eval") {
			fmt.Println(formatValue(s.evaluate(derivative)))
		}
		//
		s.stats.Log("differentiation")
	},
}

// Differentiate repeatedly without simplifying in between.
func differentiateRaw(ctx *differ.Context, node *ast.Node, index uint, order uint) (*ast.Node, error) {
	var err error
	//
	for i := uint(0); i < order && err == nil; i++ {
		node, err = ctx.Differentiate(node, index)
	}
	//
	return node, err
}

func init() {
	diffCmd.Flags().StringP("var", "x", "", "variable to differentiate with respect to")
	diffCmd.Flags().UintP("order", "n", 1, "order of the derivative")
	diffCmd.Flags().Bool("no-simplify", false, "do not simplify the derivative")
	diffCmd.Flags().BoolP("eval", "e", false, "also evaluate the derivative")
	addFormatFlag(diffCmd, "infix")
	rootCmd.AddCommand(diffCmd)
}
