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
	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/util/source/sexp"
)

// SExp renders an expression tree in prefix notation, such that parsing the
// printed form as a prefix expression gives back the same tree.
func SExp(names Names, node *ast.Node) sexp.SExp {
	if node.Kind != ast.OPERATOR {
		return sexp.NewSymbol(Label(names, node))
	}
	//
	var (
		head = sexp.NewSymbol(node.Op.Name())
		lhs  = SExp(names, node.Left)
	)
	//
	if node.Op.IsBinary() {
		return sexp.NewList(head, lhs, SExp(names, node.Right))
	}
	//
	return sexp.NewList(head, lhs)
}
