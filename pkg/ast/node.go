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

// Kind identifies what a given node in an expression tree represents.
type Kind uint8

// NUMBER signals a numeric literal.
const NUMBER Kind = 0

// VARIABLE signals a reference to a variable slot.
const VARIABLE Kind = 1

// OPERATOR signals the application of an operator to one or two operands.
const OPERATOR Kind = 2

// Node is a node in an expression tree.  Which payload field is meaningful
// depends on the kind: Value for numbers; Var for variables; and Op for
// operators.  Operator nodes always have a left child, and binary operators
// also have a right child.
//
// A tree exclusively owns its children, and subtrees are never shared between
// two live trees.  Rewriting functions return the replacement subtree which the
// caller must store in place of the original, and Copy is the only way to
// duplicate structure.
type Node struct {
	Kind  Kind
	Value float64
	Var   uint
	Op    Op
	Left  *Node
	Right *Node
}

// NewNumber constructs a numeric literal.
func NewNumber(value float64) *Node {
	return &Node{Kind: NUMBER, Value: value}
}

// NewVariable constructs a reference to a given variable slot.
func NewVariable(index uint) *Node {
	return &Node{Kind: VARIABLE, Var: index}
}

// NewBinary applies a binary operator to two operands.
func NewBinary(op Op, lhs *Node, rhs *Node) *Node {
	if !op.IsBinary() {
		panic(fmt.Sprintf("operator %s is not binary", op))
	}
	//
	return &Node{Kind: OPERATOR, Op: op, Left: lhs, Right: rhs}
}

// NewUnary applies a unary operator to a single operand.
func NewUnary(op Op, arg *Node) *Node {
	if op.IsBinary() {
		panic(fmt.Sprintf("operator %s is not unary", op))
	}
	//
	return &Node{Kind: OPERATOR, Op: op, Left: arg}
}

// IsNumber checks whether this node is a numeric literal.
func (n *Node) IsNumber() bool {
	return n.Kind == NUMBER
}

// IsConstant checks whether this node is a numeric literal with exactly the
// given value.
func (n *Node) IsConstant(value float64) bool {
	return n.Kind == NUMBER && n.Value == value
}

// Copy produces a fully independent deep copy of this tree.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	//
	return &Node{n.Kind, n.Value, n.Var, n.Op, n.Left.Copy(), n.Right.Copy()}
}

// Equal checks whether two trees are structurally identical.  Numeric
// literals are compared by value, except that NaN is considered equal to NaN.
func (n *Node) Equal(other *Node) bool {
	switch {
	case n == nil || other == nil:
		return n == other
	case n.Kind != other.Kind:
		return false
	case n.Kind == NUMBER:
		return n.Value == other.Value || (math.IsNaN(n.Value) && math.IsNaN(other.Value))
	case n.Kind == VARIABLE:
		return n.Var == other.Var
	}
	//
	return n.Op == other.Op && n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// CountVars returns the number of leaf occurrences of a given variable slot in
// this tree.  A count of zero means the tree is constant with respect to that
// variable.  For unary operators only the operand is considered.
func (n *Node) CountVars(index uint) uint {
	switch n.Kind {
	case NUMBER:
		return 0
	case VARIABLE:
		if n.Var == index {
			return 1
		}
		//
		return 0
	}
	//
	count := n.Left.CountVars(index)
	//
	if n.Op.IsBinary() {
		count += n.Right.CountVars(index)
	}
	//
	return count
}

// Size returns the number of nodes in this tree.
func (n *Node) Size() uint {
	if n == nil {
		return 0
	}
	//
	return 1 + n.Left.Size() + n.Right.Size()
}
