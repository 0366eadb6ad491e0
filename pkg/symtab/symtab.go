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
package symtab

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded signals an attempt to bind more keys than a table was
// opened with.
var ErrCapacityExceeded = errors.New("symbol table capacity exceeded")

// ErrDuplicateKey signals an attempt to bind a key which is already bound.
var ErrDuplicateKey = errors.New("duplicate symbol")

// Table is a fixed-capacity mapping from string keys to values of a given
// type.  Keys are retained in insertion order, and a key can be bound at most
// once.
type Table[V any] struct {
	// Maximum number of keys which can be bound.
	capacity uint
	// Keys in insertion order.
	keys []string
	// Bindings of keys to values.
	bindings map[string]V
}

// New constructs an empty table which can hold at most capacity bindings.
func New[V any](capacity uint) *Table[V] {
	return &Table[V]{capacity, nil, make(map[string]V, capacity)}
}

// Insert binds a key to a given value.  This fails if the key is already
// bound, or the table is full.
func (p *Table[V]) Insert(key string, value V) error {
	if _, ok := p.bindings[key]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateKey, key)
	} else if p.Len() >= p.capacity {
		return fmt.Errorf("%w (binding %q, capacity %d)", ErrCapacityExceeded, key, p.capacity)
	}
	//
	p.keys = append(p.keys, key)
	p.bindings[key] = value
	//
	return nil
}

// Lookup returns the value bound to a given key, or false if no such binding
// exists.
func (p *Table[V]) Lookup(key string) (V, bool) {
	value, ok := p.bindings[key]
	return value, ok
}

// Len returns the number of keys currently bound.
func (p *Table[V]) Len() uint {
	return uint(len(p.keys))
}

// Cap returns the maximum number of keys this table can hold.
func (p *Table[V]) Cap() uint {
	return p.capacity
}

// Keys returns the bound keys in the order they were inserted.
func (p *Table[V]) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	//
	return keys
}
