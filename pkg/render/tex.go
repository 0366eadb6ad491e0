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
	"strings"

	"github.com/consensys/go-differ/pkg/ast"
)

// TeX renders an expression tree as TeX math (without the enclosing "$"
// delimiters).
func TeX(names Names, node *ast.Node) string {
	var builder strings.Builder
	//
	writeTeX(&builder, names, node)
	//
	return builder.String()
}

func writeTeX(out *strings.Builder, names Names, node *ast.Node) {
	switch {
	case node.Kind == ast.NUMBER && math.IsInf(node.Value, 1):
		out.WriteString("\\infty")
		return
	case node.Kind == ast.NUMBER && math.IsInf(node.Value, -1):
		out.WriteString("-\\infty")
		return
	case node.Kind == ast.NUMBER && math.IsNaN(node.Value):
		out.WriteString("\\mathrm{NaN}")
		return
	case node.Kind != ast.OPERATOR:
		out.WriteString(Label(names, node))
		return
	}
	//
	switch node.Op {
	case ast.DIV:
		out.WriteString("\\frac{")
		writeTeX(out, names, node.Left)
		out.WriteString("}{")
		writeTeX(out, names, node.Right)
		out.WriteString("}")
	case ast.POW:
		out.WriteString("{")
		writeTeXOperand(out, names, node.Left, precedence(node.Left) <= node.Op.Precedence())
		out.WriteString("}^{")
		writeTeX(out, names, node.Right)
		out.WriteString("}")
	case ast.ADD, ast.SUB, ast.MUL:
		lhs, rhs := needsBrackets(node)
		writeTeXOperand(out, names, node.Left, lhs)
		//
		if node.Op == ast.MUL {
			out.WriteString(" \\cdot ")
		} else {
			out.WriteString(" " + node.Op.Name() + " ")
		}
		//
		writeTeXOperand(out, names, node.Right, rhs)
	case ast.SIN, ast.COS, ast.TAN, ast.LN, ast.EXP:
		out.WriteString("\\" + node.Op.Name())
		writeTeXOperand(out, names, node.Left, true)
	case ast.LOG:
		out.WriteString("\\log_{")
		writeTeX(out, names, node.Left)
		out.WriteString("}")
		writeTeXOperand(out, names, node.Right, true)
	case ast.FAC:
		writeTeXOperand(out, names, node.Left, node.Left.Kind == ast.OPERATOR)
		out.WriteString("!")
	}
}

func writeTeXOperand(out *strings.Builder, names Names, node *ast.Node, bracket bool) {
	if bracket {
		out.WriteString("\\left(")
		writeTeX(out, names, node)
		out.WriteString("\\right)")
	} else {
		writeTeX(out, names, node)
	}
}
