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
package sexp

import (
	"testing"

	"github.com/consensys/go-differ/pkg/util/assert"
	"github.com/consensys/go-differ/pkg/util/source"
)

func Test_SExp_01(t *testing.T) {
	checkSExp(t, "x", "x")
	checkSExp(t, "  -1.5e3 ", "-1.5e3")
	checkSExp(t, "()", "()")
	checkSExp(t, "(+ x 1)", "(+ x 1)")
	checkSExp(t, "(*\n\t(sin x)   (log 2 y))", "(* (sin x) (log 2 y))")
	checkSExp(t, "(+ x ; comment\n 1) ; trailing", "(+ x 1)")
}

func Test_SExp_02(t *testing.T) {
	term, srcmap, err := Parse(source.NewSourceFile("expr", []byte("(+ x (* 2 y))")))
	//
	assert.True(t, err == nil)
	//
	list := term.AsList()
	assert.True(t, list != nil)
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "+", list.Head().Value)
	assert.True(t, list.Get(1).AsSymbol() != nil)
	assert.True(t, list.Get(2).AsList() != nil)
	// Spans of terms are recorded
	assert.Equal(t, source.NewSpan(0, 13), srcmap.Get(term))
	assert.Equal(t, source.NewSpan(3, 4), srcmap.Get(list.Get(1)))
	assert.Equal(t, source.NewSpan(5, 12), srcmap.Get(list.Get(2)))
}

func Test_SExp_03(t *testing.T) {
	assert.Equal(t, "\"a b\"", NewSymbol("a b").String(true))
	assert.Equal(t, "a b", NewSymbol("a b").String(false))
	assert.Equal(t, "(f \"(\")", NewList(NewSymbol("f"), NewSymbol("(")).String(true))
	assert.True(t, NewList().Head() == nil)
	assert.True(t, NewList(NewList()).Head() == nil)
}

func Test_SExp_Invalid_01(t *testing.T) {
	checkInvalidSExp(t, "", "unexpected end-of-file", 0)
	checkInvalidSExp(t, "(+ x", "unexpected end-of-file", 4)
	checkInvalidSExp(t, ")", "unexpected end-of-list", 0)
	checkInvalidSExp(t, "x y", "unexpected remainder", 2)
	checkInvalidSExp(t, "(x))", "unexpected remainder", 3)
}

// ==================================================================
// Framework
// ==================================================================

func checkSExp(t *testing.T, input string, expected string) {
	term, _, err := Parse(source.NewSourceFile("expr", []byte(input)))
	if err != nil {
		t.Fatalf("unexpected error parsing \"%s\": %s", input, err.Message())
	}
	//
	assert.Equal(t, expected, term.String(false))
}

func checkInvalidSExp(t *testing.T, input string, msg string, start int) {
	_, _, err := Parse(source.NewSourceFile("expr", []byte(input)))
	if err == nil {
		t.Fatalf("expected error parsing \"%s\"", input)
	}
	//
	span := err.Span()
	assert.Equal(t, msg, err.Message())
	assert.Equal(t, start, span.Start())
}
