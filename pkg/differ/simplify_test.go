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
	"testing"

	"github.com/consensys/go-differ/pkg/util/assert"
)

func Test_Simplify_01(t *testing.T) {
	checkSimplify(t, "x*1", "x")
	checkSimplify(t, "1*x", "x")
	checkSimplify(t, "x*0", "0")
	checkSimplify(t, "0*x", "0")
	checkSimplify(t, "x+0", "x")
	checkSimplify(t, "0+x", "x")
}

func Test_Simplify_02(t *testing.T) {
	checkSimplify(t, "x-0", "x")
	checkSimplify(t, "x/1", "x")
	checkSimplify(t, "x^1", "x")
	checkSimplify(t, "x^0", "1")
	checkSimplify(t, "1^x", "1")
	checkSimplify(t, "0^x", "0")
	// Non-commutative operators are only checked on their fixed side
	checkSimplify(t, "0-x", "0-x")
	checkSimplify(t, "1/x", "1/x")
}

func Test_Simplify_03(t *testing.T) {
	checkSimplify(t, "2*3+x", "6+x")
	checkSimplify(t, "sin(0)*x+y", "y")
	checkSimplify(t, "(x*(2-1))+(3-3)*y", "x")
	checkSimplify(t, "x^(4-3)*(y^(2-2))", "x")
	checkSimplify(t, "ln(1)+x", "x")
	checkSimplify(t, "2^3^2", "512")
}

func Test_Simplify_04(t *testing.T) {
	// Root itself can be replaced
	ctx := NewContext(DefaultConfig())
	tree := parse(t, ctx, "(x+0)*1")
	//
	simplified := Simplify(tree)
	assert.True(t, simplified != tree)
	assert.True(t, simplified.Equal(parse(t, ctx, "x")))
}

func Test_Simplify_05(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	//
	folded, changed := FoldConstants(parse(t, ctx, "x*1"))
	assert.False(t, changed)
	assert.True(t, folded.Equal(parse(t, ctx, "x*1")))
	//
	pruned, changed := PruneNeutral(parse(t, ctx, "x*(2-1)"))
	assert.False(t, changed)
	assert.True(t, pruned.Equal(parse(t, ctx, "x*(2-1)")))
	//
	folded, changed = FoldConstants(parse(t, ctx, "x*(2-1)"))
	assert.True(t, changed)
	assert.True(t, folded.Equal(parse(t, ctx, "x*1")))
}

func Test_Simplify_Idempotent(t *testing.T) {
	for _, input := range simplifyInputs {
		ctx := NewContext(DefaultConfig())
		once := Simplify(parse(t, ctx, input))
		twice := Simplify(once.Copy())
		//
		assert.True(t, once.Equal(twice), "simplifying \"%s\" is not idempotent", input)
	}
}

func Test_Simplify_PreservesValue(t *testing.T) {
	for _, input := range simplifyInputs {
		ctx := NewContext(DefaultConfig())
		tree := parse(t, ctx, input)
		simplified := Simplify(tree.Copy())
		x, _ := ctx.Intern("x")
		y, _ := ctx.Intern("y")
		//
		for _, point := range samplePoints {
			ctx.SetValue(x, point)
			ctx.SetValue(y, 1-point)
			expected := ctx.Evaluate(tree)
			//
			assert.Near(t, expected, ctx.Evaluate(simplified), 1e-9, "simplifying \"%s\"", input)
		}
	}
}

func Test_Simplify_Derivatives(t *testing.T) {
	// Simplified derivatives are idempotent as well
	for _, input := range simplifyInputs {
		ctx := NewContext(DefaultConfig())
		tree := parse(t, ctx, input)
		x, _ := ctx.Intern("x")
		//
		derivative, err := ctx.Differentiate(tree, x)
		assert.NoError(t, err)
		//
		once := Simplify(derivative)
		twice := Simplify(once.Copy())
		assert.True(t, once.Equal(twice), "simplifying D(%s) is not idempotent", input)
	}
}

// ==================================================================
// Framework
// ==================================================================

var simplifyInputs = []string{
	"1", "x", "x+y*0", "(x*1+0)*(y^1-0)", "2*3*x", "x*(2+3)", "sin(x)^2+cos(x)^2",
	"x^(1+1)/(0+1)", "(x-0)^(y*0)", "exp(x*0)*ln(x+0)", "x*y+y*x", "tan(x)/x^3",
	"(x+1)^(x+y)", "2^x*1", "x/(1*y)",
}

func checkSimplify(t *testing.T, input string, expected string) {
	ctx := NewContext(DefaultConfig())
	// Allocate variables in a fixed order
	_ = parse(t, ctx, "x+y")
	actual := Simplify(parse(t, ctx, input))
	//
	if !actual.Equal(parse(t, ctx, expected)) {
		t.Errorf("simplifying \"%s\" did not give \"%s\"", input, expected)
	}
}
