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
package ast

import (
	"fmt"
	"math"
)

// Op identifies one of the fixed set of operators which can appear in an
// expression tree.  The set is closed: every behaviour associated with an
// operator is an exhaustive switch over these values.
type Op uint8

// ADD represents binary addition.
const ADD Op = 0

// SUB represents binary subtraction.
const SUB Op = 1

// MUL represents binary multiplication.
const MUL Op = 2

// DIV represents binary division.
const DIV Op = 3

// POW represents exponentiation (right associative).
const POW Op = 4

// SIN represents the sine function.
const SIN Op = 5

// COS represents the cosine function.
const COS Op = 6

// TAN represents the tangent function.
const TAN Op = 7

// LN represents the natural logarithm.
const LN Op = 8

// EXP represents the natural exponential function.
const EXP Op = 9

// LOG represents the logarithm log(b, x) of x in base b.
const LOG Op = 10

// FAC represents the factorial, generalised to reals as fac(x) = Γ(x+1).
const FAC Op = 11

// Operators returns every operator, in code order.
func Operators() []Op {
	return []Op{ADD, SUB, MUL, DIV, POW, SIN, COS, TAN, LN, EXP, LOG, FAC}
}

// Name returns the textual name of this operator, as recognised by the parser.
// Infix operators are named by their symbol, and functions by their name.
func (op Op) Name() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case POW:
		return "^"
	case SIN:
		return "sin"
	case COS:
		return "cos"
	case TAN:
		return "tan"
	case LN:
		return "ln"
	case EXP:
		return "exp"
	case LOG:
		return "log"
	case FAC:
		return "fac"
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// String implements the Stringer interface.
func (op Op) String() string {
	return op.Name()
}

// IsBinary determines whether this operator consumes two operands (true) or
// one (false).
func (op Op) IsBinary() bool {
	switch op {
	case ADD, SUB, MUL, DIV, POW, LOG:
		return true
	case SIN, COS, TAN, LN, EXP, FAC:
		return false
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// IsCommutative determines whether the operands of this operator can be
// swapped without changing its value.
func (op Op) IsCommutative() bool {
	return op == ADD || op == MUL
}

// IsFunction determines whether this operator is written in call syntax
// (e.g. "sin(x)") rather than infix syntax (e.g. "x+y").
func (op Op) IsFunction() bool {
	switch op {
	case ADD, SUB, MUL, DIV, POW:
		return false
	case SIN, COS, TAN, LN, EXP, LOG, FAC:
		return true
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// Precedence returns the binding strength of this operator, where higher
// binds tighter.  This is only used when rendering expressions.
func (op Op) Precedence() uint {
	switch op {
	case ADD, SUB:
		return 1
	case MUL, DIV:
		return 2
	case POW:
		return 3
	case SIN, COS, TAN, LN, EXP, LOG, FAC:
		return 4
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// Apply computes the native numeric result of this operator.  For unary
// operators the second operand is ignored.  Division by zero and out-of-domain
// arguments follow IEEE-754 semantics, producing an infinity or NaN.
func (op Op) Apply(lhs float64, rhs float64) float64 {
	switch op {
	case ADD:
		return lhs + rhs
	case SUB:
		return lhs - rhs
	case MUL:
		return lhs * rhs
	case DIV:
		return lhs / rhs
	case POW:
		return math.Pow(lhs, rhs)
	case SIN:
		return math.Sin(lhs)
	case COS:
		return math.Cos(lhs)
	case TAN:
		return math.Tan(lhs)
	case LN:
		return math.Log(lhs)
	case EXP:
		return math.Exp(lhs)
	case LOG:
		return math.Log(rhs) / math.Log(lhs)
	case FAC:
		return math.Gamma(lhs + 1)
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}
