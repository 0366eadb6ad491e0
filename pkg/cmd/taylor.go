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

var taylorCmd = &cobra.Command{
	Use:   "taylor [flags] expression",
	Short: "Expand an expression as a Taylor series.",
	Long: `Expand an expression into a truncated Taylor series around a given
	point, with respect to one of its variables (by default, the first to
	appear).`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s     = openSession(cmd, args)
			index = s.variable(GetString(cmd, "var"))
			point = GetFloat(cmd, "point")
			terms = GetUint(cmd, "terms")
		)
		//
		series, err := s.ctx.TaylorSeries(s.expr, index, point, terms)
		if err != nil {
			exitWithError(err)
		}
		//
		s.write(cmd, series)
		s.stats.Log("expansion")
	},
}

func init() {
	taylorCmd.Flags().StringP("var", "x", "", "variable to expand in")
	taylorCmd.Flags().Float64P("point", "a", 0, "point to expand around")
	taylorCmd.Flags().UintP("terms", "n", 4, "number of terms")
	addFormatFlag(taylorCmd, "infix")
	rootCmd.AddCommand(taylorCmd)
}
