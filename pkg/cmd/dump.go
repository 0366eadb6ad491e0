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
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] expression",
	Short: "Print the expression tree of an expression.",
	Long: `Print the expression tree of an expression, for example as a Graphviz
	digraph (--format dot) which can be rendered with "dot -Tpng".`,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args)
		s.write(cmd, s.expr)
	},
}

func init() {
	addFormatFlag(dumpCmd, "tree")
	rootCmd.AddCommand(dumpCmd)
}
