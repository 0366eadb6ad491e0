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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/render"
	"github.com/consensys/go-differ/pkg/util/source"
	"github.com/consensys/go-differ/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrUnknownFormat signals an output format which is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

// GetFloat gets an expected float, or exits if an error arises.
func GetFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

// Write an expression tree in a given output format.
func writeExpr(out io.Writer, names render.Names, node *ast.Node, format string) error {
	var err error
	//
	switch format {
	case "infix":
		_, err = fmt.Fprintln(out, render.Infix(names, node))
	case "sexp":
		_, err = fmt.Fprintln(out, render.SExp(names, node).String(false))
	case "tex":
		_, err = fmt.Fprintln(out, render.TeX(names, node))
	case "dot":
		err = render.Dot(out, names, node)
	case "tree":
		err = render.Tree(out, names, node)
	default:
		err = fmt.Errorf("%w \"%s\"", ErrUnknownFormat, format)
	}
	//
	return err
}

// Report an error and exit.  Syntax errors are printed with the offending
// part of the input highlighted.
func exitWithError(err error) {
	var syntaxErr *source.SyntaxError
	//
	if errors.As(err, &syntaxErr) {
		printSyntaxError(os.Stdout, syntaxErr, term.IsTerminal(int(os.Stdout.Fd())))
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(2)
}

// Print a syntax error with appropriate highlighting.  The highlight is
// coloured when requested.
func printSyntaxError(out io.Writer, err *source.SyntaxError, colour bool) {
	var (
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = span.Start() - line.Start()
		// Calculate length (ensures don't overflow line, but always shows
		// something for errors at the end of input)
		length    = max(1, min(line.Length()-lineOffset, span.Length()))
		bold      = termio.BoldAnsiEscape()
		highlight = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, bold.Wrap(err.Message(), colour))
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, highlight.Wrap(strings.Repeat("^", length), colour))
}
