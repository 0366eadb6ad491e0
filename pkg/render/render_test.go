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
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/differ"
	"github.com/consensys/go-differ/pkg/util/assert"
)

func Test_Label_01(t *testing.T) {
	ctx, tree := parse(t, "sin(x)*2.5")
	//
	assert.Equal(t, "*", Label(ctx, tree))
	assert.Equal(t, "sin", Label(ctx, tree.Left))
	assert.Equal(t, "x", Label(ctx, tree.Left.Left))
	assert.Equal(t, "2.5", Label(ctx, tree.Right))
}

func Test_Infix_01(t *testing.T) {
	checkInfix(t, "2+3*4", "2+3*4")
	checkInfix(t, "(2+3)*4", "(2+3)*4")
	checkInfix(t, "2^3^2", "2^3^2")
	checkInfix(t, "(2^3)^2", "(2^3)^2")
	checkInfix(t, "1-(2-3)", "1-(2-3)")
	checkInfix(t, "(1-2)-3", "1-2-3")
	checkInfix(t, "x/(y*z)", "x/(y*z)")
}

func Test_Infix_02(t *testing.T) {
	checkInfix(t, "log(2,x)", "log(2, x)")
	checkInfix(t, "-x", "0-x")
	checkInfix(t, "x^-2", "x^(-2)")
	checkInfix(t, "(-2)^x", "(-2)^x")
	checkInfix(t, "sin(x)^2+cos(x)^2", "sin(x)^2+cos(x)^2")
	checkInfix(t, "fac(ln(x+1))", "fac(ln(x+1))")
}

func Test_Infix_RoundTrip(t *testing.T) {
	inputs := []string{
		"2+3*4", "x^y^z", "(x^y)^z", "x-(y+z)", "x/(y/z)", "(x/y)/z", "-(x+1)*-y",
		"exp(-x^2)/(1+x^2)", "log(x+1, y)*tan(x)^-1", "1.5e-7*x+1e+21", "2*-3",
	}
	//
	for _, input := range inputs {
		ctx, tree := parse(t, input)
		text := Infix(ctx, tree)
		// Reparse in the same context
		reparsed, err := ctx.Parse(text)
		//
		assert.NoError(t, err, "reparsing \"%s\"", text)
		assert.True(t, tree.Equal(reparsed), "\"%s\" rendered as \"%s\"", input, text)
	}
}

func Test_Infix_03(t *testing.T) {
	checkSimplifiedInfix(t, "1/0+x", "inf+x")
	checkSimplifiedInfix(t, "x*(0-1/0)", "x*(-inf)")
	checkSimplifiedInfix(t, "x^(0/0)", "x^nan")
	checkInfix(t, "inf-nan", "inf-nan")
}

func Test_Infix_NonFinite_RoundTrip(t *testing.T) {
	inputs := []string{"1/0+x", "x*(0-1/0)", "(0/0)*x", "x+1e400", "(-inf)^x", "sin(nan)-x"}
	//
	for _, input := range inputs {
		ctx, tree := parse(t, input)
		tree = differ.Simplify(tree)
		checkRoundTrip(t, ctx, tree)
	}
}

func Test_Infix_Taylor_RoundTrip(t *testing.T) {
	ctx, tree := parse(t, "ln(x)")
	index, _ := ctx.Variable("x")
	// Every coefficient about zero is infinite
	series, err := ctx.TaylorSeries(tree, index, 0, 3)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(Infix(ctx, series), "inf"))
	checkRoundTrip(t, ctx, series)
}

func Test_SExp_01(t *testing.T) {
	checkSExp(t, "2+3*4", "(+ 2 (* 3 4))")
	checkSExp(t, "-x^-2", "(- 0 (^ x -2))")
	checkSExp(t, "log(2, sin(x))", "(log 2 (sin x))")
}

func Test_SExp_RoundTrip(t *testing.T) {
	inputs := []string{
		"x^y^z", "(x-y)-z", "exp(-x^2)/(1+x^2)", "log(x+1, y)*tan(x)^-1", "fac(2.5e-3)",
		"(-inf)*x+nan", "x^inf",
	}
	//
	for _, input := range inputs {
		ctx, tree := parse(t, input)
		text := SExp(ctx, tree).String(false)
		//
		reparsed, err := ctx.ParsePrefix(text)
		//
		assert.NoError(t, err, "reparsing \"%s\"", text)
		assert.True(t, tree.Equal(reparsed), "\"%s\" rendered as \"%s\"", input, text)
	}
}

func Test_TeX_01(t *testing.T) {
	checkTeX(t, "x/(y+1)", "\\frac{x}{y + 1}")
	checkTeX(t, "sin(x)^2", "{\\sin\\left(x\\right)}^{2}")
	checkTeX(t, "(x+1)^2", "{\\left(x + 1\\right)}^{2}")
	checkTeX(t, "2*(x+1)", "2 \\cdot \\left(x + 1\\right)")
	checkTeX(t, "fac(3)+fac(x-1)", "3! + \\left(x - 1\\right)!")
	checkTeX(t, "log(2, x)", "\\log_{2}\\left(x\\right)")
	checkTeX(t, "x^inf+nan", "{x}^{\\infty} + \\mathrm{NaN}")
}

func Test_Dot_01(t *testing.T) {
	var buffer bytes.Buffer
	//
	ctx, tree := parse(t, "sin(x)+x*2")
	assert.NoError(t, Dot(&buffer, ctx, tree))
	//
	text := buffer.String()
	// One declaration per node, one edge per child
	assert.Equal(t, int(tree.Size()), strings.Count(text, "[label="))
	assert.Equal(t, int(tree.Size())-1, strings.Count(text, "->"))
	assert.Equal(t, 1, strings.Count(text, ROOT_COLOR))
	assert.Equal(t, 3, strings.Count(text, LEFT_COLOR))
	assert.Equal(t, 2, strings.Count(text, RIGHT_COLOR))
	assert.True(t, strings.HasPrefix(text, "digraph expr {"))
	assert.True(t, strings.Contains(text, "n0 [label=\"+\" fillcolor=\"#FFFFAA\"];"))
	assert.True(t, strings.Contains(text, "n0 -> n1;"))
}

func Test_Tree_01(t *testing.T) {
	var buffer bytes.Buffer
	//
	ctx, tree := parse(t, "sin(x)+2")
	assert.NoError(t, Tree(&buffer, ctx, tree))
	assert.Equal(t, "+\n  sin\n    x\n  2\n", buffer.String())
}

// ==================================================================
// Framework
// ==================================================================

func parse(t *testing.T, input string) (*differ.Context, *ast.Node) {
	ctx := differ.NewContext(differ.DefaultConfig())
	//
	tree, err := ctx.Parse(input)
	if err != nil {
		t.Fatalf("unexpected error parsing \"%s\": %v", input, err)
	}
	//
	return ctx, tree
}

func checkInfix(t *testing.T, input string, expected string) {
	ctx, tree := parse(t, input)
	assert.Equal(t, expected, Infix(ctx, tree))
}

func checkSimplifiedInfix(t *testing.T, input string, expected string) {
	ctx, tree := parse(t, input)
	assert.Equal(t, expected, Infix(ctx, differ.Simplify(tree)))
}

func checkRoundTrip(t *testing.T, ctx *differ.Context, tree *ast.Node) {
	text := Infix(ctx, tree)
	reparsed, err := ctx.Parse(text)
	//
	assert.NoError(t, err, "reparsing \"%s\"", text)
	assert.True(t, tree.Equal(reparsed), "incorrect tree for \"%s\"", text)
}

func checkSExp(t *testing.T, input string, expected string) {
	ctx, tree := parse(t, input)
	assert.Equal(t, expected, SExp(ctx, tree).String(false))
}

func checkTeX(t *testing.T, input string, expected string) {
	ctx, tree := parse(t, input)
	assert.Equal(t, expected, TeX(ctx, tree))
}
