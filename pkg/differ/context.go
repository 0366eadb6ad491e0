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
	"errors"
	"fmt"

	"github.com/consensys/go-differ/pkg/ast"
	"github.com/consensys/go-differ/pkg/parser"
	"github.com/consensys/go-differ/pkg/symtab"
	log "github.com/sirupsen/logrus"
)

// ErrUnknownVariable signals a reference to a variable name which has not been
// allocated a slot.
var ErrUnknownVariable = errors.New("unknown variable")

// Config determines the fixed capacities of a differentiation context.
type Config struct {
	// MaxVariables bounds the number of distinct variables.
	MaxVariables uint
	// MaxNameLength bounds the length (in characters) of a variable name.
	// Longer names are truncated.
	MaxNameLength uint
}

// DefaultConfig returns the default context configuration.
func DefaultConfig() Config {
	return Config{MaxVariables: 32, MaxNameLength: 16}
}

// Slot holds the name and current value of a variable.
type Slot struct {
	Name  string
	Value float64
}

// Context holds the state of a single differentiation session: the table of
// operator names, the table of variable names, and the variable slots.  A
// context is not safe for concurrent use.
type Context struct {
	config    Config
	operators *symtab.Table[ast.Op]
	variables *symtab.Table[uint]
	slots     []Slot
}

// NewContext constructs a fresh context whose operator table is populated
// with every known operator.
func NewContext(config Config) *Context {
	var (
		ops       = ast.Operators()
		operators = symtab.New[ast.Op](uint(len(ops)))
	)
	//
	for _, op := range ops {
		if err := operators.Insert(op.Name(), op); err != nil {
			panic(err)
		}
	}
	//
	return &Context{config, operators, symtab.New[uint](config.MaxVariables), nil}
}

// Parse an input string into an expression tree, allocating slots for any
// variables encountered.
func (c *Context) Parse(input string) (*ast.Node, error) {
	return parser.Parse(input, c)
}

// ParsePrefix parses an input string written in prefix (S-expression)
// notation, allocating slots for any variables encountered.
func (c *Context) ParsePrefix(input string) (*ast.Node, error) {
	return parser.ParsePrefix(input, c)
}

// Operator returns the operator with the given name, if one exists.
func (c *Context) Operator(name string) (ast.Op, bool) {
	return c.operators.Lookup(name)
}

// Intern returns the slot allocated to a given variable name, allocating a new
// one if necessary.  Names are truncated to the configured maximum length
// beforehand.  This fails if all slots are in use.
func (c *Context) Intern(name string) (uint, error) {
	name = c.truncate(name)
	//
	if index, ok := c.variables.Lookup(name); ok {
		return index, nil
	}
	//
	index := uint(len(c.slots))
	//
	if err := c.variables.Insert(name, index); err != nil {
		return 0, err
	}
	//
	c.slots = append(c.slots, Slot{name, 0})
	log.Debugf("allocated slot %d for variable \"%s\"", index, name)
	//
	return index, nil
}

// Variable returns the slot allocated to a given variable name, if any.
func (c *Context) Variable(name string) (uint, bool) {
	return c.variables.Lookup(c.truncate(name))
}

// VariableName returns the name of the variable in a given slot.
func (c *Context) VariableName(index uint) string {
	return c.slots[index].Name
}

// Value returns the current value of a given slot.
func (c *Context) Value(index uint) float64 {
	return c.slots[index].Value
}

// SetValue assigns the value of a given slot.
func (c *Context) SetValue(index uint, value float64) {
	c.slots[index].Value = value
}

// Bind assigns the value of a variable by name.  This fails if the variable
// has not been allocated a slot.
func (c *Context) Bind(name string, value float64) error {
	index, ok := c.Variable(name)
	if !ok {
		return fmt.Errorf("%w \"%s\"", ErrUnknownVariable, name)
	}
	//
	c.SetValue(index, value)
	//
	return nil
}

// Slots returns a snapshot of the variable slots, in allocation order.
func (c *Context) Slots() []Slot {
	slots := make([]Slot, len(c.slots))
	copy(slots, c.slots)
	//
	return slots
}

func (c *Context) truncate(name string) string {
	if runes := []rune(name); uint(len(runes)) > c.config.MaxNameLength {
		return string(runes[:c.config.MaxNameLength])
	}
	//
	return name
}
