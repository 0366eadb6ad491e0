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

import "github.com/consensys/go-differ/pkg/util/collection/stack"

// Walk visits every node of a tree exactly once, parent before children and
// left before right.  The traversal is iterative, so arbitrarily deep trees do
// not exhaust the call stack.
func Walk(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	//
	worklist := stack.NewStack[*Node]()
	worklist.Push(root)
	//
	for !worklist.IsEmpty() {
		node := worklist.Pop()
		visit(node)
		//
		if node.Kind != OPERATOR {
			continue
		} else if node.Right != nil {
			worklist.PushReversed(node.Left, node.Right)
		} else {
			worklist.Push(node.Left)
		}
	}
}
