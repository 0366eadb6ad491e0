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
package differ

import (
	"github.com/consensys/go-differ/pkg/ast"
	log "github.com/sirupsen/logrus"
)

// Differentiate produces the symbolic derivative of an expression tree with
// respect to the variable in a given slot.  The result is always a freshly
// allocated tree which shares nothing with the input.  Differentiation fails
// with an UnsupportedOperatorError if the tree applies an operator without a
// differentiation rule to an operand which depends on the variable.
func (c *Context) Differentiate(node *ast.Node, index uint) (*ast.Node, error) {
	d := deriver{index}
	//
	result, err := d.derive(node)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("differentiated %d nodes w.r.t. slot %d into %d nodes", node.Size(), index, result.Size())
	//
	return result, nil
}

// DifferentiateN applies Differentiate a given number of times, simplifying
// after each step.  An order of zero returns a copy of the input.
func (c *Context) DifferentiateN(node *ast.Node, index uint, order uint) (*ast.Node, error) {
	result := node.Copy()
	//
	for i := uint(0); i < order; i++ {
		derivative, err := c.Differentiate(result, index)
		if err != nil {
			return nil, err
		}
		//
		result = Simplify(derivative)
	}
	//
	return result, nil
}

// deriver applies differentiation rules with respect to a fixed variable slot.
type deriver struct {
	index uint
}

func (d deriver) derive(node *ast.Node) (*ast.Node, error) {
	switch node.Kind {
	case ast.NUMBER:
		return ast.NewNumber(0), nil
	case ast.VARIABLE:
		if node.Var == d.index {
			return ast.NewNumber(1), nil
		}
		// Other variables are constant
		return ast.NewNumber(0), nil
	}
	//
	switch node.Op {
	case ast.ADD, ast.SUB:
		return d.deriveAddSub(node)
	case ast.MUL:
		return d.deriveMul(node)
	case ast.DIV:
		return d.deriveDiv(node)
	case ast.POW:
		return d.derivePow(node)
	case ast.SIN, ast.COS, ast.TAN, ast.LN, ast.EXP:
		return d.deriveFunction(node)
	case ast.LOG, ast.FAC:
		if node.CountVars(d.index) == 0 {
			return ast.NewNumber(0), nil
		}
		//
		return nil, &UnsupportedOperatorError{node.Op}
	}
	//
	panic("unreachable")
}

// D(l) op D(r)
func (d deriver) deriveAddSub(node *ast.Node) (*ast.Node, error) {
	dl, dr, err := d.deriveBoth(node)
	if err != nil {
		return nil, err
	}
	//
	return ast.NewBinary(node.Op, dl, dr), nil
}

// D(l)*r + l*D(r)
func (d deriver) deriveMul(node *ast.Node) (*ast.Node, error) {
	dl, dr, err := d.deriveBoth(node)
	if err != nil {
		return nil, err
	}
	//
	return add(mul(dl, node.Right.Copy()), mul(node.Left.Copy(), dr)), nil
}

// (D(l)*r - l*D(r)) / r^2
func (d deriver) deriveDiv(node *ast.Node) (*ast.Node, error) {
	dl, dr, err := d.deriveBoth(node)
	if err != nil {
		return nil, err
	}
	//
	numerator := sub(mul(dl, node.Right.Copy()), mul(node.Left.Copy(), dr))
	//
	return div(numerator, pow(node.Right.Copy(), num(2))), nil
}

// Differentiate b^e, distinguishing which of the base and exponent depend on
// the variable.
func (d deriver) derivePow(node *ast.Node) (*ast.Node, error) {
	var (
		base     = node.Left
		exponent = node.Right
		inBase   = base.CountVars(d.index) != 0
		inExp    = exponent.CountVars(d.index) != 0
	)
	//
	switch {
	case !inBase && !inExp:
		return num(0), nil
	case !inBase:
		// b^e * ln(b) * D(e)
		de, err := d.derive(exponent)
		if err != nil {
			return nil, err
		}
		//
		return mul(mul(node.Copy(), ast.NewUnary(ast.LN, base.Copy())), de), nil
	case !inExp:
		// e * b^(e-1) * D(b)
		db, err := d.derive(base)
		if err != nil {
			return nil, err
		}
		//
		reduced := pow(base.Copy(), sub(exponent.Copy(), num(1)))
		//
		return mul(mul(exponent.Copy(), reduced), db), nil
	}
	// b^e * (D(b)*e/b + ln(b)*D(e))
	db, de, err := d.deriveBoth(node)
	if err != nil {
		return nil, err
	}
	//
	lhs := div(mul(db, exponent.Copy()), base.Copy())
	rhs := mul(ast.NewUnary(ast.LN, base.Copy()), de)
	//
	return mul(node.Copy(), add(lhs, rhs)), nil
}

// Apply the chain rule to a unary function.
func (d deriver) deriveFunction(node *ast.Node) (*ast.Node, error) {
	arg := node.Left
	//
	da, err := d.derive(arg)
	if err != nil {
		return nil, err
	}
	//
	switch node.Op {
	case ast.SIN:
		// cos(a) * D(a)
		return mul(ast.NewUnary(ast.COS, arg.Copy()), da), nil
	case ast.COS:
		// -sin(a) * D(a)
		return mul(mul(num(-1), ast.NewUnary(ast.SIN, arg.Copy())), da), nil
	case ast.TAN:
		// D(a) / cos(a)^2
		return div(da, pow(ast.NewUnary(ast.COS, arg.Copy()), num(2))), nil
	case ast.LN:
		// D(a) / a
		return div(da, arg.Copy()), nil
	case ast.EXP:
		// exp(a) * D(a)
		return mul(ast.NewUnary(ast.EXP, arg.Copy()), da), nil
	}
	//
	panic("unreachable")
}

func (d deriver) deriveBoth(node *ast.Node) (*ast.Node, *ast.Node, error) {
	dl, err := d.derive(node.Left)
	if err != nil {
		return nil, nil, err
	}
	//
	dr, err := d.derive(node.Right)
	if err != nil {
		return nil, nil, err
	}
	//
	return dl, dr, nil
}

func num(value float64) *ast.Node { return ast.NewNumber(value) }

func add(lhs *ast.Node, rhs *ast.Node) *ast.Node { return ast.NewBinary(ast.ADD, lhs, rhs) }

func sub(lhs *ast.Node, rhs *ast.Node) *ast.Node { return ast.NewBinary(ast.SUB, lhs, rhs) }

func mul(lhs *ast.Node, rhs *ast.Node) *ast.Node { return ast.NewBinary(ast.MUL, lhs, rhs) }

func div(lhs *ast.Node, rhs *ast.Node) *ast.Node { return ast.NewBinary(ast.DIV, lhs, rhs) }

func pow(lhs *ast.Node, rhs *ast.Node) *ast.Node { return ast.NewBinary(ast.POW, lhs, rhs) }
