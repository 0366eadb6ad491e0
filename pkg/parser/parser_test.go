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
	"errors"
	"math"
	"testing"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/util/assert"
	"github.com/consensys/go-differ/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	// 2+3*4
	expected := add(num(2), mul(num(3), num(4)))
	checkParse(t, "2+3*4", expected)
}

func Test_Parse_02(t *testing.T) {
	// Power is right associative
	expected := pow(num(2), pow(num(3), num(2)))
	checkParse(t, "2^3^2", expected)
}

func Test_Parse_03(t *testing.T) {
	expected := sub(sub(num(1), num(2)), num(3))
	checkParse(t, "1-2-3", expected)
}

func Test_Parse_04(t *testing.T) {
	expected := div(div(num(8), num(4)), num(2))
	checkParse(t, "8/4/2", expected)
}

func Test_Parse_05(t *testing.T) {
	x := ast.NewVariable(0)
	expected := add(pow(ast.NewUnary(ast.SIN, x), num(2)), pow(ast.NewUnary(ast.COS, x.Copy()), num(2)))
	checkParse(t, "sin(x)^2+cos(x)^2", expected)
}

func Test_Parse_06(t *testing.T) {
	env := newTestEnv()
	checkParseEnv(t, env, "y*x+y", add(mul(ast.NewVariable(0), ast.NewVariable(1)), ast.NewVariable(0)))
	// Slots allocated in first-seen order
	assert.Equal(t, []string{"y", "x"}, env.names)
}

func Test_Parse_07(t *testing.T) {
	expected := ast.NewBinary(ast.LOG, num(2), ast.NewVariable(0))
	checkParse(t, "log(2, x)", expected)
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "1.5e2", num(150))
	checkParse(t, ".5", num(0.5))
	checkParse(t, " ( 2 +\t3 ) ", add(num(2), num(3)))
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, "-2", num(-2))
	checkParse(t, "-x", sub(num(0), ast.NewVariable(0)))
	checkParse(t, "2*-3", mul(num(2), num(-3)))
	checkParse(t, "-2^2", sub(num(0), pow(num(2), num(2))))
	checkParse(t, "2^-1", pow(num(2), num(-1)))
}

func Test_Parse_10(t *testing.T) {
	expected := ast.NewUnary(ast.FAC, ast.NewUnary(ast.LN, add(ast.NewVariable(0), num(1))))
	checkParse(t, "fac(ln(x+1))", expected)
}

func Test_Parse_11(t *testing.T) {
	// Out of range literals saturate
	checkParse(t, "1e400", num(math.Inf(1)))
	checkParse(t, "-1e400", num(math.Inf(-1)))
	checkParse(t, "1e-400", num(0))
	checkParse(t, "x*1e400", mul(ast.NewVariable(0), num(math.Inf(1))))
}

func Test_Parse_12(t *testing.T) {
	env := newTestEnv()
	// Non-finite literals are not variables
	checkParseEnv(t, env, "inf", num(math.Inf(1)))
	checkParseEnv(t, env, "(-inf)", num(math.Inf(-1)))
	checkParseEnv(t, env, "nan*x", mul(num(math.NaN()), ast.NewVariable(0)))
	checkParseEnv(t, env, "infinity+nan2", add(ast.NewVariable(1), ast.NewVariable(2)))
	assert.Equal(t, []string{"x", "infinity", "nan2"}, env.names)
}

func Test_Parse_Invalid_01(t *testing.T) {
	checkSyntaxError(t, "", "expected operand, found end of input")
	checkSyntaxError(t, "2+", "expected operand, found end of input")
	checkSyntaxError(t, "2*)", "expected operand, found ')'")
}

func Test_Parse_Invalid_02(t *testing.T) {
	checkSyntaxError(t, "(2", "expected ')', found end of input")
	checkSyntaxError(t, "2)", "expected end of input, found ')'")
	checkSyntaxError(t, "2 3", "expected end of input, found '3'")
}

func Test_Parse_Invalid_03(t *testing.T) {
	checkSyntaxError(t, "2 $ 3", "expected operand or operator, found '$'")
	checkSyntaxError(t, "sin", "expected '(', found end of input")
	checkSyntaxError(t, "log(2)", "expected ',', found ')'")
	checkSyntaxError(t, "sin(1,2)", "expected ')', found ','")
}

func Test_Parse_Invalid_04(t *testing.T) {
	var unknown *UnknownOperatorError
	//
	_, err := Parse("2+foo(x)", newTestEnv())
	//
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "foo", unknown.Name)
	assert.Equal(t, "unknown function \"foo\"", unknown.Cause.Message())
	span := unknown.Cause.Span()
	assert.Equal(t, 2, span.Start())
}

func Test_Parse_Invalid_05(t *testing.T) {
	env := newTestEnv()
	env.capacity = 2
	//
	_, err := Parse("a+b+c", env)
	//
	assert.ErrorIs(t, err, errFull)
	// Variables allocated before the failure are retained
	assert.Equal(t, []string{"a", "b"}, env.names)
}

// ==================================================================
// Framework
// ==================================================================

var errFull = errors.New("full")

type testEnv struct {
	capacity int
	names    []string
}

func newTestEnv() *testEnv {
	return &testEnv{capacity: 8}
}

func (p *testEnv) Operator(name string) (ast.Op, bool) {
	for _, op := range ast.Operators() {
		if op.Name() == name {
			return op, true
		}
	}
	//
	return 0, false
}

func (p *testEnv) Intern(name string) (uint, error) {
	for i, n := range p.names {
		if n == name {
			return uint(i), nil
		}
	}
	//
	if len(p.names) >= p.capacity {
		return 0, errFull
	}
	//
	p.names = append(p.names, name)
	//
	return uint(len(p.names) - 1), nil
}

func checkParse(t *testing.T, input string, expected *ast.Node) {
	checkParseEnv(t, newTestEnv(), input, expected)
}

func checkParseEnv(t *testing.T, env Environment, input string, expected *ast.Node) {
	actual, err := Parse(input, env)
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %v", input, err)
	} else if !actual.Equal(expected) {
		t.Errorf("incorrect tree for \"%s\"", input)
	}
}

func checkSyntaxError(t *testing.T, input string, msg string) {
	var serr *source.SyntaxError
	//
	node, err := Parse(input, newTestEnv())
	//
	if node != nil {
		t.Errorf("unexpected tree for \"%s\"", input)
	} else if !errors.As(err, &serr) {
		t.Errorf("expected syntax error for \"%s\", got %v", input, err)
	} else if serr.Message() != msg {
		t.Errorf("incorrect error for \"%s\" (was \"%s\", expected \"%s\")", input, serr.Message(), msg)
	}
}

func num(v float64) *ast.Node { return ast.NewNumber(v) }
func add(l *ast.Node, r *ast.Node) *ast.Node { return ast.NewBinary(ast.ADD, l, r) }
func sub(l *ast.Node, r *ast.Node) *ast.Node { return ast.NewBinary(ast.SUB, l, r) }
func mul(l *ast.Node, r *ast.Node) *ast.Node { return ast.NewBinary(ast.MUL, l, r) }
func div(l *ast.Node, r *ast.Node) *ast.Node { return ast.NewBinary(ast.DIV, l, r) }
func pow(l *ast.Node, r *ast.Node) *ast.Node { return ast.NewBinary(ast.POW, l, r) }
