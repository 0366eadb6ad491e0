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
	"math"
	"testing"

	"github.com/consensys/go-differ/pkg/util/assert"
)

// sin(x) * (x + y)^2
func sample() *Node {
	x, y := NewVariable(0), NewVariable(1)
	sum := NewBinary(ADD, x.Copy(), y)
	//
	return NewBinary(MUL, NewUnary(SIN, x), NewBinary(POW, sum, NewNumber(2)))
}

func Test_Ast_Copy_01(t *testing.T) {
	tree := sample()
	dup := tree.Copy()
	//
	assert.True(t, tree.Equal(dup))
	// Mutating the copy must not affect the original
	dup.Right.Right.Value = 3
	dup.Left.Left.Var = 7
	//
	assert.False(t, tree.Equal(dup))
	assert.Equal(t, 2.0, tree.Right.Right.Value)
	assert.Equal(t, 0, tree.Left.Left.Var)
}

func Test_Ast_Equal_01(t *testing.T) {
	assert.True(t, NewNumber(math.NaN()).Equal(NewNumber(math.NaN())))
	assert.False(t, NewNumber(1).Equal(NewVariable(1)))
	assert.False(t, NewBinary(ADD, NewNumber(1), NewNumber(2)).Equal(NewBinary(SUB, NewNumber(1), NewNumber(2))))
	assert.False(t, NewUnary(SIN, NewNumber(1)).Equal(NewUnary(COS, NewNumber(1))))
}

func Test_Ast_CountVars_01(t *testing.T) {
	tree := sample()
	//
	assert.Equal(t, 2, tree.CountVars(0))
	assert.Equal(t, 1, tree.CountVars(1))
	assert.Equal(t, 0, tree.CountVars(2))
	assert.Equal(t, 8, tree.Size())
}

func Test_Ast_Walk_01(t *testing.T) {
	var (
		tree  = sample()
		seen  = make(map[*Node]uint)
		order []Kind
	)
	//
	Walk(tree, func(n *Node) {
		seen[n]++
		order = append(order, n.Kind)
	})
	//
	assert.Equal(t, int(tree.Size()), len(seen))
	//
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
	// Parent before children, left before right.
	assert.Equal(t, []Kind{OPERATOR, OPERATOR, VARIABLE, OPERATOR, OPERATOR, VARIABLE, VARIABLE, NUMBER}, order)
}

func Test_Ast_Operators_01(t *testing.T) {
	assert.Equal(t, 12, len(Operators()))
	//
	for _, op := range Operators() {
		assert.True(t, op.Name() != "")
		assert.Equal(t, op.IsBinary() && !op.IsFunction(), op.Precedence() < 4)
	}
	//
	assert.True(t, ADD.IsCommutative())
	assert.True(t, MUL.IsCommutative())
	assert.False(t, SUB.IsCommutative())
	assert.False(t, POW.IsCommutative())
}

func Test_Ast_Apply_01(t *testing.T) {
	assert.Equal(t, 5.0, ADD.Apply(2, 3))
	assert.Equal(t, -1.0, SUB.Apply(2, 3))
	assert.Equal(t, 6.0, MUL.Apply(2, 3))
	assert.Equal(t, 512.0, POW.Apply(2, 9))
	assert.Near(t, 3.0, LOG.Apply(2, 8), 1e-12)
	assert.Near(t, 120.0, FAC.Apply(5, 0), 1e-9)
	assert.Near(t, 1.0, EXP.Apply(0, 0), 1e-12)
	assert.True(t, math.IsInf(DIV.Apply(1, 0), 1))
	assert.True(t, math.IsNaN(LN.Apply(-1, 0)))
}
