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
package parser

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/util/source"
	"github.com/consensys/go-differ/pkg/util/source/lex"
	log "github.com/sirupsen/logrus"
)

// Environment resolves the names encountered during parsing.  Operator names
// are looked up in a fixed table, whilst any other identifier is interned as a
// variable (allocating a fresh slot on first use).
type Environment interface {
	// Operator returns the operator bound to a given name, if any.
	Operator(name string) (ast.Op, bool)
	// Intern returns the slot of a given variable, allocating one if this is
	// the first occurrence of the name.
	Intern(name string) (uint, error)
}

// UnknownOperatorError is reported when a call-like token "name(" does not
// resolve to a function in the operator table.
type UnknownOperatorError struct {
	// Name of the function being called.
	Name string
	// Location of the offending name.
	Cause *source.SyntaxError
}

func (e *UnknownOperatorError) Error() string {
	return e.Cause.Error()
}

// Unwrap exposes the underlying syntax error, so that its location can be
// reported.
func (e *UnknownOperatorError) Unwrap() error {
	return e.Cause
}

// Parse a given input string into an expression tree.  Variable names are
// interned into the given environment in the order they are first seen.
// Parsing is fail-fast: on error no tree is returned.
func Parse(input string, env Environment) (*ast.Node, error) {
	var (
		srcfile = source.NewSourceFile("expr", []byte(input))
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		span := source.NewSpan(start, start+1)
		//
		return nil, srcfile.Expected(span, "operand or operator")
	}
	// Remove any whitespace
	tokens = lex.Discard(tokens, WHITESPACE)
	//
	parser := &Parser{env, srcfile, tokens, 0}
	//
	return parser.Parse()
}

// status captures the outcome of attempting to parse a given production.
type status uint8

// success indicates the production matched.
const success status = 0

// softError indicates the production did not match at this position, and the
// caller should restore its position and try the next alternative.
const softError status = 1

// hardError indicates an unrecoverable syntax violation.
const hardError status = 2

// Parser is a recursive-descent parser for infix expressions.  The grammar,
// from tightest binding to loosest, is:
//
//	Primary → Call | Variable | Number | '(' Expr ')'
//	Power   → Primary ('^' Unary)?
//	Unary   → '-' Unary | Power
//	MulDiv  → Unary (('*' | '/') Unary)*
//	Expr    → MulDiv (('+' | '-') MulDiv)*
//
// Power is right-associative, whilst all other binary operators are
// left-associative.
type Parser struct {
	env     Environment
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Parse the entire token stream as a single expression.  Anything left over
// after the expression is an error.
func (p *Parser) Parse() (*ast.Node, error) {
	node, st, err := p.parseExpr()
	//
	if st != success {
		return nil, err
	} else if !p.follows(END_OF) {
		return nil, p.expected("end of input")
	}
	//
	log.Debugf("parsed \"%s\" (%d nodes)", string(p.srcfile.Contents()), node.Size())
	//
	return node, nil
}

func (p *Parser) parseExpr() (*ast.Node, status, error) {
	lhs, st, err := p.parseMulDiv()
	//
	for st == success && p.follows(ADD, SUB) {
		op := p.binaryOp(p.expect(p.lookahead().Kind))
		//
		rhs, st2, err2 := p.parseMulDiv()
		if st2 != success {
			return nil, hardError, err2
		}
		//
		lhs = ast.NewBinary(op, lhs, rhs)
	}
	//
	return lhs, st, err
}

func (p *Parser) parseMulDiv() (*ast.Node, status, error) {
	lhs, st, err := p.parseUnary()
	//
	for st == success && p.follows(MUL, DIV) {
		op := p.binaryOp(p.expect(p.lookahead().Kind))
		//
		rhs, st2, err2 := p.parseUnary()
		if st2 != success {
			return nil, hardError, err2
		}
		//
		lhs = ast.NewBinary(op, lhs, rhs)
	}
	//
	return lhs, st, err
}

func (p *Parser) parseUnary() (*ast.Node, status, error) {
	if !p.match(SUB) {
		return p.parsePower()
	}
	//
	arg, st, err := p.parseUnary()
	//
	if st != success {
		return nil, hardError, err
	}
	//
	return negate(arg), success, nil
}

func (p *Parser) parsePower() (*ast.Node, status, error) {
	base, st, err := p.parsePrimary()
	//
	if st != success || !p.match(POW) {
		return base, st, err
	}
	// Exponent binds to the right
	exponent, st, err := p.parseUnary()
	if st != success {
		return nil, hardError, err
	}
	//
	return ast.NewBinary(ast.POW, base, exponent), success, nil
}

// Parse a primary expression by trying each alternative in turn.  A soft error
// from one alternative rewinds the token stream before the next is tried.
func (p *Parser) parsePrimary() (*ast.Node, status, error) {
	alternatives := []func() (*ast.Node, status, error){
		p.parseCall,
		p.parseVariable,
		p.parseNumber,
		p.parseBracketed,
	}
	//
	for _, alternative := range alternatives {
		mark := p.index
		//
		node, st, err := alternative()
		if st != softError {
			return node, st, err
		}
		// Restore position
		p.index = mark
	}
	//
	return nil, softError, p.expected("operand")
}

func (p *Parser) parseCall() (*ast.Node, status, error) {
	if !p.follows(IDENTIFIER) || p.peek(1).Kind != LBRACE {
		return nil, softError, p.expected("function call")
	}
	//
	id := p.expect(IDENTIFIER)
	name := p.string(id)
	op, ok := p.env.Operator(name)
	//
	if !ok || !op.IsFunction() {
		msg := fmt.Sprintf("unknown function \"%s\"", name)
		return nil, hardError, &UnknownOperatorError{name, p.srcfile.SyntaxError(id.Span, msg)}
	}
	//
	p.expect(LBRACE)
	//
	lhs, st, err := p.parseExpr()
	if st != success {
		return nil, hardError, err
	}
	// Binary functions take a second argument
	if op.IsBinary() {
		if !p.match(COMMA) {
			return nil, hardError, p.expected("','")
		}
		//
		rhs, st, err := p.parseExpr()
		if st != success {
			return nil, hardError, err
		}
		//
		lhs = ast.NewBinary(op, lhs, rhs)
	} else {
		lhs = ast.NewUnary(op, lhs)
	}
	//
	if !p.match(RBRACE) {
		return nil, hardError, p.expected("')'")
	}
	//
	return lhs, success, nil
}

func (p *Parser) parseVariable() (*ast.Node, status, error) {
	if !p.follows(IDENTIFIER) {
		return nil, softError, p.expected("variable")
	}
	//
	id := p.expect(IDENTIFIER)
	name := p.string(id)
	// Non-finite literals
	if value, ok := constants[name]; ok {
		return ast.NewNumber(value), success, nil
	}
	// Function names cannot be used as variables
	if op, ok := p.env.Operator(name); ok && op.IsFunction() {
		return nil, hardError, p.expected("'('")
	}
	//
	index, err := p.env.Intern(name)
	if err != nil {
		msg := fmt.Sprintf("cannot allocate variable \"%s\"", name)
		return nil, hardError, fmt.Errorf("%w: %w", p.srcfile.SyntaxError(id.Span, msg), err)
	}
	//
	return ast.NewVariable(index), success, nil
}

func (p *Parser) parseNumber() (*ast.Node, status, error) {
	if !p.follows(NUMBER) {
		return nil, softError, p.expected("number")
	}
	//
	token := p.expect(NUMBER)
	//
	value, err := parseFloat(p.string(token))
	if err != nil {
		return nil, hardError, p.srcfile.SyntaxError(token.Span, "invalid number")
	}
	//
	return ast.NewNumber(value), success, nil
}

func (p *Parser) parseBracketed() (*ast.Node, status, error) {
	if !p.match(LBRACE) {
		return nil, softError, p.expected("'('")
	}
	//
	node, st, err := p.parseExpr()
	//
	if st != success {
		return nil, hardError, err
	} else if !p.match(RBRACE) {
		return nil, hardError, p.expected("')'")
	}
	//
	return node, success, nil
}

func (p *Parser) binaryOp(token lex.Token) ast.Op {
	switch token.Kind {
	case ADD:
		return ast.ADD
	case SUB:
		return ast.SUB
	case MUL:
		return ast.MUL
	case DIV:
		return ast.DIV
	}
	//
	panic("unreachable")
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Peek returns the token n positions beyond the next one, or the final (EOF)
// token if there are not enough tokens.
func (p *Parser) peek(n int) lex.Token {
	return p.tokens[min(p.index+n, len(p.tokens)-1)]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Construct an error reporting what was expected at the current position.
func (p *Parser) expected(class string) *source.SyntaxError {
	return p.srcfile.Expected(p.lookahead().Span, class)
}

// Convert a number literal in the same way as strtod, such that magnitudes
// beyond the float64 range become infinities (or zero on underflow) rather
// than errors.
func parseFloat(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	//
	return value, nil
}
