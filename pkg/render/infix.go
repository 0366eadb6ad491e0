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
	"math"
	"strconv"
	"strings"

	"github.com/consensys/go-differ/pkg/ast"
)

// Names resolves variable slots to their names.
type Names interface {
	VariableName(index uint) string
}

// Label produces the short label of a single node: the literal of a number,
// the name of a variable, or the name of an operator.
func Label(names Names, node *ast.Node) string {
	switch node.Kind {
	case ast.NUMBER:
		return formatNumber(node.Value)
	case ast.VARIABLE:
		return names.VariableName(node.Var)
	}
	//
	return node.Op.Name()
}

// Infix renders an expression tree as infix text using as few brackets as
// possible, such that parsing the result gives back the same tree.
func Infix(names Names, node *ast.Node) string {
	var builder strings.Builder
	//
	writeInfix(&builder, names, node)
	//
	return builder.String()
}

func writeInfix(out *strings.Builder, names Names, node *ast.Node) {
	switch {
	case node.Kind == ast.NUMBER && math.Signbit(node.Value) && !math.IsNaN(node.Value):
		// Negative literals are only valid as operands in brackets
		out.WriteString("(")
		out.WriteString(formatNumber(node.Value))
		out.WriteString(")")
	case node.Kind != ast.OPERATOR:
		out.WriteString(Label(names, node))
	case node.Op.IsFunction():
		out.WriteString(node.Op.Name())
		out.WriteString("(")
		writeInfix(out, names, node.Left)
		//
		if node.Op.IsBinary() {
			out.WriteString(", ")
			writeInfix(out, names, node.Right)
		}
		//
		out.WriteString(")")
	default:
		lhs, rhs := needsBrackets(node)
		writeOperand(out, names, node.Left, lhs)
		out.WriteString(node.Op.Name())
		writeOperand(out, names, node.Right, rhs)
	}
}

func writeOperand(out *strings.Builder, names Names, node *ast.Node, bracket bool) {
	if bracket {
		out.WriteString("(")
		writeInfix(out, names, node)
		out.WriteString(")")
	} else {
		writeInfix(out, names, node)
	}
}

// Determine whether the left and right operands of an infix operator need
// brackets.  Power is right associative, and everything else is left
// associative.
func needsBrackets(node *ast.Node) (bool, bool) {
	var (
		prec = node.Op.Precedence()
		lhs  = precedence(node.Left)
		rhs  = precedence(node.Right)
	)
	//
	if node.Op == ast.POW {
		return lhs <= prec, rhs < prec
	}
	//
	return lhs < prec, rhs <= prec
}

// Precedence of a node when used as an operand.  Leaves and function calls
// never need brackets.
func precedence(node *ast.Node) uint {
	if node.Kind == ast.OPERATOR && !node.Op.IsFunction() {
		return node.Op.Precedence()
	}
	//
	return math.MaxUint
}

// Format a numeric literal.  The non-finite values have no decimal notation,
// so are written using the reserved names "inf" and "nan".
func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}
	//
	return strconv.FormatFloat(value, 'g', -1, 64)
}
