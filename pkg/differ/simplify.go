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

// Simplify rewrites an expression tree by repeatedly folding constants and
// eliminating neutral elements until neither makes further progress.  Every
// successful rewrite strictly reduces the number of nodes, hence this always
// terminates.  The tree is rewritten in place and its root may be replaced,
// so callers must use the returned tree rather than the one given.
func Simplify(node *ast.Node) *ast.Node {
	var (
		folded, pruned bool
		size           = node.Size()
	)
	//
	for pass := 1; ; pass++ {
		node, folded = FoldConstants(node)
		node, pruned = PruneNeutral(node)
		//
		if !folded && !pruned {
			log.Debugf("simplified %d nodes into %d nodes (%d passes)", size, node.Size(), pass)
			return node
		}
	}
}

// FoldConstants replaces every operator whose operands are all numeric
// literals with a single literal holding its value.  This returns the
// (possibly replaced) root, and whether anything was changed.
func FoldConstants(node *ast.Node) (*ast.Node, bool) {
	if node.Kind != ast.OPERATOR {
		return node, false
	}
	//
	var changed bool
	//
	node.Left, changed = FoldConstants(node.Left)
	//
	if node.Op.IsBinary() {
		var rchanged bool
		//
		node.Right, rchanged = FoldConstants(node.Right)
		changed = changed || rchanged
		//
		if node.Left.IsNumber() && node.Right.IsNumber() {
			return ast.NewNumber(node.Op.Apply(node.Left.Value, node.Right.Value)), true
		}
	} else if node.Left.IsNumber() {
		return ast.NewNumber(node.Op.Apply(node.Left.Value, 0)), true
	}
	//
	return node, changed
}

// PruneNeutral eliminates operations on neutral or annihilating elements,
// such as "x*1", "x*0", "x+0", "x-0", "x/1", "x^1", "x^0", "1^x" and "0^x".
// The operands of commutative operators are checked in either position,
// whilst those of non-commutative operators are checked only in their fixed
// position.  This returns the (possibly replaced) root, and whether anything
// was changed.
func PruneNeutral(node *ast.Node) (*ast.Node, bool) {
	if node.Kind != ast.OPERATOR {
		return node, false
	}
	//
	var changed bool
	//
	node.Left, changed = PruneNeutral(node.Left)
	//
	if !node.Op.IsBinary() {
		return node, changed
	}
	//
	var rchanged bool
	//
	node.Right, rchanged = PruneNeutral(node.Right)
	changed = changed || rchanged
	//
	if node.Op.IsCommutative() {
		if replacement := pruneCommutative(node.Op, node.Left, node.Right); replacement != nil {
			return replacement, true
		} else if replacement := pruneCommutative(node.Op, node.Right, node.Left); replacement != nil {
			return replacement, true
		}
	} else if replacement := pruneFixed(node.Op, node.Left, node.Right); replacement != nil {
		return replacement, true
	}
	//
	return node, changed
}

// Check whether "other op constant" can be eliminated, returning the
// replacement if so.
func pruneCommutative(op ast.Op, other *ast.Node, constant *ast.Node) *ast.Node {
	switch {
	case op == ast.ADD && constant.IsConstant(0):
		return other
	case op == ast.MUL && constant.IsConstant(0):
		return constant
	case op == ast.MUL && constant.IsConstant(1):
		return other
	}
	//
	return nil
}

// Check whether "lhs op rhs" can be eliminated for a non-commutative operator,
// returning the replacement if so.
func pruneFixed(op ast.Op, lhs *ast.Node, rhs *ast.Node) *ast.Node {
	switch op {
	case ast.SUB, ast.DIV:
		// x-0 and x/1
		if (op == ast.SUB && rhs.IsConstant(0)) || (op == ast.DIV && rhs.IsConstant(1)) {
			return lhs
		}
	case ast.POW:
		switch {
		case rhs.IsConstant(0):
			return num(1)
		case rhs.IsConstant(1):
			return lhs
		case lhs.IsConstant(1):
			return lhs
		case lhs.IsConstant(0):
			return lhs
		}
	}
	//
	return nil
}
