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
	"strconv"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Evaluate an expression.",
	Long: `Evaluate an expression using the values bound to its variables.
	Variables can be bound using --set or a configuration file, and otherwise
	have the value 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(cmd, args)
		//
		if GetFlag(cmd, "slots") {
			for _, slot := range s.ctx.Slots() {
				fmt.Printf("%s = %s\n", slot.Name, formatValue(slot.Value))
			}
		}
		//
		fmt.Println(formatValue(s.evaluate(s.expr)))
		s.stats.Log("evaluation")
	},
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func init() {
	evalCmd.Flags().Bool("slots", false, "print the value of every variable first")
	rootCmd.AddCommand(evalCmd)
}
