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

// TaylorSeries expands an expression around a given point into the truncated
// series
//
//	f(a) + f'(a)/1! * (x-a) + ... + f⁽ⁿ⁻¹⁾(a)/(n-1)! * (x-a)^(n-1)
//
// with n terms, where x is the variable in the given slot and a the point.
// When a is zero the factor (x-a) is written simply as x.  As a side effect,
// the slot's value is set to the point.  Zero terms yields the constant 0.
func (c *Context) TaylorSeries(node *ast.Node, index uint, point float64, terms uint) (*ast.Node, error) {
	var (
		series    *ast.Node
		current   = node.Copy()
		factorial = 1.0
	)
	//
	if terms == 0 {
		return num(0), nil
	}
	//
	c.SetValue(index, point)
	//
	for k := uint(0); k < terms; k++ {
		if k > 0 {
			factorial *= float64(k)
		}
		//
		coefficient := c.Evaluate(current)
		log.Debugf("taylor term %d: f^(%d)(%g) = %g", k, k, point, coefficient)
		//
		term := mul(div(num(coefficient), num(factorial)), pow(c.offset(index, point), num(float64(k))))
		//
		if series == nil {
			series = term
		} else {
			series = add(series, term)
		}
		// Only differentiate when another term is needed
		if k+1 < terms {
			derivative, err := c.Differentiate(current, index)
			if err != nil {
				return nil, err
			}
			//
			current = Simplify(derivative)
		}
	}
	//
	return Simplify(series), nil
}

// Construct the term (x-a), or simply x when a is zero.
func (c *Context) offset(index uint, point float64) *ast.Node {
	if point == 0 {
		return ast.NewVariable(index)
	}
	//
	return sub(ast.NewVariable(index), num(point))
}
