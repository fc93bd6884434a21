// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package symbol implements the symbol table used while emitting three
// address code.
//
// Scopes are plain integers handed out by the caller.  Scope Global is the
// fallback for every lookup.  Only one level of fallback exists: a name
// declared in scope 3 is not visible from scope 5 unless it is also declared
// in Global.
package symbol

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/google/tacgen/internal/compiler/position"
)

// Global is the outermost scope.
const Global = 0

// ID identifies a Symbol within the Table that declared it.
type ID int

// NoSymbol is returned with an error when no symbol could be produced.
const NoSymbol ID = -1

// Symbol describes a declared identifier.
type Symbol struct {
	Name  string             // identifier name
	Type  string             // declared type tag, not interpreted
	Scope int                // scope in which the identifier was declared
	Pos   *position.Position // Source file position of declaration, may be nil
}

type key struct {
	name  string
	scope int
}

// Table maps (name, scope) pairs to Symbols.  It grows without bound unless
// a MaxSymbols option is given.
type Table struct {
	mu      sync.RWMutex
	symbols []Symbol
	used    []bool
	index   map[key]ID

	maxSymbols int
}

// Option configures a new Table.
type Option func(*Table)

// MaxSymbols limits the table to n entries.  Zero or less means no limit.
func MaxSymbols(n int) Option {
	return func(t *Table) {
		t.maxSymbols = n
	}
}

// NewTable creates an empty Table.
func NewTable(opts ...Option) *Table {
	t := &Table{index: make(map[key]ID)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Declare inserts a new symbol named name of type typ into scope.
func (t *Table) Declare(name, typ string, scope int) (ID, error) {
	return t.DeclareAt(nil, name, typ, scope)
}

// DeclareAt inserts a new symbol, recording pos as its place of declaration.
// If the table is full a CapacityExceededError is returned.  If scope already
// holds name, the table is unchanged and a RedeclarationError carrying the
// existing symbol is returned.
func (t *Table) DeclareAt(pos *position.Position, name, typ string, scope int) (ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.maxSymbols > 0 && len(t.symbols) >= t.maxSymbols {
		return NoSymbol, &CapacityExceededError{Max: t.maxSymbols}
	}
	k := key{name, scope}
	if prev, ok := t.index[k]; ok {
		return NoSymbol, &RedeclarationError{Name: name, Scope: scope, Pos: pos, Prev: t.symbols[prev]}
	}
	id := ID(len(t.symbols))
	var p *position.Position
	if pos != nil {
		c := *pos
		p = &c
	}
	sym := Symbol{Name: strings.Clone(name), Type: strings.Clone(typ), Scope: scope, Pos: p}
	t.symbols = append(t.symbols, sym)
	t.used = append(t.used, false)
	t.index[key{sym.Name, scope}] = id
	glog.V(2).Infof("declared %q type %q in scope %d as symbol %d", name, typ, scope, id)
	return id, nil
}

// Lookup finds name in scope, and failing that in Global.  A miss returns a
// NotFoundError naming the scope originally asked for.
func (t *Table) Lookup(name string, scope int) (ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.index[key{name, scope}]
	if !ok {
		id, ok = t.index[key{name, Global}]
	}
	if !ok {
		return NoSymbol, &NotFoundError{Name: name, Scope: scope}
	}
	t.used[id] = true
	return id, nil
}

// Symbol returns a copy of the symbol with the given id.
func (t *Table) Symbol(id ID) (Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) >= len(t.symbols) {
		return Symbol{}, false
	}
	return t.symbols[id], true
}

// Len returns the number of symbols declared.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.symbols)
}

// Symbols returns every symbol in declaration order.
func (t *Table) Symbols() []Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r := make([]Symbol, len(t.symbols))
	copy(r, t.symbols)
	return r
}

// Unused returns, in declaration order, the symbols that no Lookup has
// resolved to.
func (t *Table) Unused() []Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var r []Symbol
	for i, u := range t.used {
		if !u {
			r = append(r, t.symbols[i])
		}
	}
	return r
}

// String prints the table in declaration order.  This method is only used
// for debugging.
func (t *Table) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "symtab %p {\n", t)
	for i, sym := range t.symbols {
		fmt.Fprintf(&buf, "\t%d: %q %q scope %d used %v\n", i, sym.Name, sym.Type, sym.Scope, t.used[i])
	}
	fmt.Fprintf(&buf, "}\n")
	return buf.String()
}
