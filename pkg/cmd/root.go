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
	"os"
	"runtime/debug"

	"github.com/consensys/go-differ/pkg/differ"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "differ",
	Short: "A symbolic differentiation engine.",
	Long: `Parse, evaluate, differentiate, simplify and expand mathematical
expressions over real numbers.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !GetFlag(cmd, "version") {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		fmt.Print("differ ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Printf("%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Printf("%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Printf("(unknown version)")
		}
		//
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Register the flags shared by every command.
func addSessionFlags(cmd *cobra.Command) {
	defaults := differ.DefaultConfig()
	//
	cmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	cmd.PersistentFlags().Bool("strict", false, "report division by zero and out-of-domain arguments as errors")
	cmd.PersistentFlags().Uint("max-vars", defaults.MaxVariables, "maximum number of distinct variables")
	cmd.PersistentFlags().Uint("max-name", defaults.MaxNameLength, "maximum length of a variable name")
	cmd.PersistentFlags().StringArrayP("set", "s", nil, "bind a variable to a value (name=value)")
	cmd.PersistentFlags().StringP("config", "c", "", "read session configuration from a YAML file")
	cmd.PersistentFlags().BoolP("prefix", "p", false, "read the expression in prefix notation, e.g. \"(+ x 1)\"")
}

// Register the output format flag for commands which print an expression.
func addFormatFlag(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringP("format", "f", defaultFormat, "output format (infix, sexp, tex, dot or tree)")
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	addSessionFlags(rootCmd)
}
