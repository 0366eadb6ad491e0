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
	"github.com/consensys/go-differ/pkg/render"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression",
	Short: "Simplify an expression.",
	Long: `Simplify an expression by folding constant subexpressions and removing
	neutral elements (e.g. x*1 or x+0) until nothing changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s      = openSession(cmd, args)
			result *ast.Node
		)
		//
		if GetFlag(cmd, "steps") {
			result = simplifyInSteps(s.ctx, s.expr)
		} else {
			result = differ.Simplify(s.expr)
		}
		//
		s.write(cmd, result)
		s.stats.Log("simplification")
	},
}

// Simplify an expression one pass at a time, printing the intermediate form
// after each pass which changes it.
func simplifyInSteps(names render.Names, node *ast.Node) *ast.Node {
	for changed := true; changed; {
		var folded, pruned bool
		//
		if node, folded = differ.FoldConstants(node); folded {
			fmt.Printf("fold:  %s\n", render.Infix(names, node))
		}
		//
		if node, pruned = differ.PruneNeutral(node); pruned {
			fmt.Printf("prune: %s\n", render.Infix(names, node))
		}
		//
		changed = folded || pruned
	}
	//
	return node
}

func init() {
	simplifyCmd.Flags().Bool("steps", false, "print the expression after each simplification pass")
	addFormatFlag(simplifyCmd, "infix")
	rootCmd.AddCommand(simplifyCmd)
}
