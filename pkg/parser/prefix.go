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
package parser

import (
	"fmt"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/util/source"
	"github.com/consensys/go-differ/pkg/util/source/lex"
	"github.com/consensys/go-differ/pkg/util/source/sexp"
	log "github.com/sirupsen/logrus"
)

// ParsePrefix parses an expression written in prefix (S-expression) notation,
// such as "(+ x (* 2 (sin y)))".  Operators are named by their infix symbols
// or function names.  The arithmetic operators accept two or more arguments,
// which are combined from left to right, and "-" with one argument negates.
// Variables are interned in the order they are first seen.
func ParsePrefix(input string, env Environment) (*ast.Node, error) {
	srcfile := source.NewSourceFile("expr", []byte(input))
	//
	term, srcmap, serr := sexp.Parse(srcfile)
	if serr != nil {
		return nil, serr
	}
	//
	node, err := (&translator{env, srcmap}).translate(term)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("parsed prefix expression \"%s\" (%d nodes)", input, node.Size())
	//
	return node, nil
}

// translator turns S-expressions into expression trees, reporting errors
// against the spans recorded by the S-expression parser.
type translator struct {
	env    Environment
	srcmap *source.Map[sexp.SExp]
}

func (t *translator) translate(term sexp.SExp) (*ast.Node, error) {
	if symbol := term.AsSymbol(); symbol != nil {
		return t.translateSymbol(symbol)
	}
	//
	return t.translateList(term.AsList())
}

func (t *translator) translateSymbol(symbol *sexp.Symbol) (*ast.Node, error) {
	var (
		name   = symbol.Value
		runes  = []rune(name)
		digits = runes
	)
	//
	if len(runes) > 1 && runes[0] == '-' {
		digits = runes[1:]
	}
	// Non-finite literals
	if value, ok := constants[string(digits)]; ok {
		if len(digits) != len(runes) {
			value = -value
		}
		//
		return ast.NewNumber(value), nil
	}
	//
	switch {
	case lex.Number()(digits) == uint(len(digits)):
		value, err := parseFloat(name)
		if err != nil {
			return nil, t.srcmap.SyntaxError(symbol, "invalid number")
		}
		//
		return ast.NewNumber(value), nil
	case identifier(runes) == uint(len(runes)):
		if op, ok := t.env.Operator(name); ok && op.IsFunction() {
			return nil, t.srcmap.SyntaxError(symbol, fmt.Sprintf("function \"%s\" used as a variable", name))
		}
		//
		index, err := t.env.Intern(name)
		if err != nil {
			msg := fmt.Sprintf("cannot allocate variable \"%s\"", name)
			return nil, fmt.Errorf("%w: %w", t.srcmap.SyntaxError(symbol, msg), err)
		}
		//
		return ast.NewVariable(index), nil
	}
	//
	return nil, t.srcmap.SyntaxError(symbol, "expected number or variable")
}

func (t *translator) translateList(list *sexp.List) (*ast.Node, error) {
	head := list.Head()
	//
	if head == nil {
		return nil, t.srcmap.SyntaxError(list, "expected operator")
	}
	//
	op, ok := t.env.Operator(head.Value)
	if !ok {
		msg := fmt.Sprintf("unknown operator \"%s\"", head.Value)
		return nil, &UnknownOperatorError{head.Value, t.srcmap.SyntaxError(head, msg)}
	}
	//
	args := make([]*ast.Node, list.Len()-1)
	//
	for i := range args {
		arg, err := t.translate(list.Get(i + 1))
		if err != nil {
			return nil, err
		}
		//
		args[i] = arg
	}
	//
	switch {
	case op == ast.SUB && len(args) == 1:
		return negate(args[0]), nil
	case isVariadic(op) && len(args) >= 2:
		node := args[0]
		//
		for _, arg := range args[1:] {
			node = ast.NewBinary(op, node, arg)
		}
		//
		return node, nil
	case op.IsBinary() && !isVariadic(op) && len(args) == 2:
		return ast.NewBinary(op, args[0], args[1]), nil
	case !op.IsBinary() && len(args) == 1:
		return ast.NewUnary(op, args[0]), nil
	}
	//
	return nil, t.srcmap.SyntaxError(list, fmt.Sprintf("incorrect number of arguments for \"%s\"", head.Value))
}

// Arithmetic operators which accept any number of arguments (at least two).
func isVariadic(op ast.Op) bool {
	return op == ast.ADD || op == ast.SUB || op == ast.MUL || op == ast.DIV
}

// Negate a node, giving a negative literal for numbers and 0-x otherwise.
func negate(node *ast.Node) *ast.Node {
	if node.IsNumber() {
		node.Value = -node.Value
		return node
	}
	//
	return ast.NewBinary(ast.SUB, ast.NewNumber(0), node)
}
