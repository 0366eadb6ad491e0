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
	"math"

	"github.com/consensys/go-differ/pkg/ast"
)

// Evaluate computes the value of an expression tree using the current values
// of the variable slots.  Division by zero and out-of-domain arguments are not
// errors: they propagate IEEE-754 infinities and NaNs.
func (c *Context) Evaluate(node *ast.Node) float64 {
	switch node.Kind {
	case ast.NUMBER:
		return node.Value
	case ast.VARIABLE:
		return c.slots[node.Var].Value
	}
	//
	var (
		lhs = c.Evaluate(node.Left)
		rhs float64
	)
	//
	if node.Op.IsBinary() {
		rhs = c.Evaluate(node.Right)
	}
	//
	return node.Op.Apply(lhs, rhs)
}

// CheckedEvaluate computes the value of an expression tree as for Evaluate,
// except that the first operator producing a non-finite result from finite
// operands is reported as a NumericAnomalyError.
func (c *Context) CheckedEvaluate(node *ast.Node) (float64, error) {
	switch node.Kind {
	case ast.NUMBER:
		return node.Value, nil
	case ast.VARIABLE:
		return c.slots[node.Var].Value, nil
	}
	//
	lhs, err := c.CheckedEvaluate(node.Left)
	if err != nil {
		return lhs, err
	}
	//
	var rhs float64
	//
	if node.Op.IsBinary() {
		if rhs, err = c.CheckedEvaluate(node.Right); err != nil {
			return rhs, err
		}
	}
	//
	result := node.Op.Apply(lhs, rhs)
	//
	if !isFinite(result) && isFinite(lhs) && isFinite(rhs) {
		return result, &NumericAnomalyError{node.Op, lhs, rhs, result}
	}
	//
	return result, nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
