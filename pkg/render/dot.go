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
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-differ/pkg/ast"
)

// ROOT_COLOR is the fill colour of the root node in a graph dump.
const ROOT_COLOR = "#FFFFAA"

// LEFT_COLOR is the fill colour of left children in a graph dump.
const LEFT_COLOR = "#AAFFAA"

// RIGHT_COLOR is the fill colour of right children in a graph dump.
const RIGHT_COLOR = "#FFAAAA"

// Dot writes an expression tree as a Graphviz digraph.  Each node is labelled
// using Label, and coloured according to whether it is the root, a left child
// or a right child.
func Dot(out io.Writer, names Names, root *ast.Node) error {
	var (
		ids     = make(map[*ast.Node]uint)
		colours = map[*ast.Node]string{root: ROOT_COLOR}
		lines   = []string{"digraph expr {", "\tnode [shape=box style=filled];"}
		edges   []string
	)
	//
	ast.Walk(root, func(node *ast.Node) {
		id := uint(len(ids))
		ids[node] = id
		label := strings.ReplaceAll(Label(names, node), "\"", "\\\"")
		lines = append(lines, fmt.Sprintf("\tn%d [label=\"%s\" fillcolor=\"%s\"];", id, label, colours[node]))
		//
		if node.Kind == ast.OPERATOR {
			colours[node.Left] = LEFT_COLOR
			//
			if node.Right != nil {
				colours[node.Right] = RIGHT_COLOR
			}
		}
	})
	// Edges can only be written once all ids are known
	ast.Walk(root, func(node *ast.Node) {
		if node.Kind != ast.OPERATOR {
			return
		}
		//
		edges = append(edges, fmt.Sprintf("\tn%d -> n%d;", ids[node], ids[node.Left]))
		//
		if node.Right != nil {
			edges = append(edges, fmt.Sprintf("\tn%d -> n%d;", ids[node], ids[node.Right]))
		}
	})
	//
	lines = append(lines, edges...)
	lines = append(lines, "}")
	//
	_, err := io.WriteString(out, strings.Join(lines, "\n")+"\n")
	//
	return err
}

// Tree writes an expression tree as indented text, one node per line with
// children indented beneath their parent.
func Tree(out io.Writer, names Names, root *ast.Node) error {
	return writeTree(out, names, root, 0)
}

func writeTree(out io.Writer, names Names, node *ast.Node, depth int) error {
	if _, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), Label(names, node)); err != nil {
		return err
	} else if node.Kind != ast.OPERATOR {
		return nil
	} else if err := writeTree(out, names, node.Left, depth+1); err != nil {
		return err
	} else if node.Right != nil {
		return writeTree(out, names, node.Right, depth+1)
	}
	//
	return nil
}
