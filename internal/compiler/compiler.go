// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package compiler drives symbol resolution and three address code emission
// for one compilation unit.
//
// A Unit owns its own symbol table, name allocator and instruction stream, so
// independent compilations never observe each other's state.  A Unit is not
// safe for concurrent use.
package compiler

import (
	"github.com/golang/glog"
	"github.com/google/tacgen/internal/compiler/alloc"
	"github.com/google/tacgen/internal/compiler/emit"
	"github.com/google/tacgen/internal/compiler/errors"
	"github.com/google/tacgen/internal/compiler/position"
	"github.com/google/tacgen/internal/compiler/symbol"
	"github.com/google/tacgen/internal/compiler/tac"
	pkgerrors "github.com/pkg/errors"
)

// Unit is a single compilation.
type Unit struct {
	name string // Name of the compilation unit, used in logs.

	syms  *symbol.Table
	alloc *alloc.Allocator
	emit  *emit.Emitter
	prog  tac.Program

	errors   errors.ErrorList // Every diagnostic reported is accumulated here.
	reporter errors.Reporter  // Optional caller supplied diagnostic sink.

	maxSymbols int
	dumpTAC    bool
}

// New creates a Unit named name with an empty symbol table and fresh counters.
func New(name string, opts ...Option) (*Unit, error) {
	u := &Unit{name: name}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}
	u.syms = symbol.NewTable(symbol.MaxSymbols(u.maxSymbols))
	u.alloc = alloc.New()
	u.emit = emit.New(u.alloc)
	return u, nil
}

// Name returns the name the Unit was created with.
func (u *Unit) Name() string {
	return u.name
}

// Symbols returns the Unit's symbol table.
func (u *Unit) Symbols() *symbol.Table {
	return u.syms
}

// Declare declares name with type typ in scope.  A redeclaration or a full
// table is reported as a diagnostic and returned; the caller decides whether
// to carry on.
func (u *Unit) Declare(pos *position.Position, name, typ string, scope int) (symbol.ID, error) {
	id, err := u.syms.DeclareAt(pos, name, typ, scope)
	if err != nil {
		u.report(pos, err)
		return id, err
	}
	SymbolsDeclared.Inc()
	return id, nil
}

// DeclareSpan is Declare for a declaration whose name and type tag appear at
// separate positions; diagnostics cover both.
func (u *Unit) DeclareSpan(namePos, typePos *position.Position, name, typ string, scope int) (symbol.ID, error) {
	return u.Declare(position.Merge(namePos, typePos), name, typ, scope)
}

// Resolve looks up name as seen from scope and returns the operand naming it.
// An undeclared identifier is reported as a diagnostic and returned.
func (u *Unit) Resolve(pos *position.Position, name string, scope int) (string, error) {
	id, err := u.syms.Lookup(name, scope)
	if err != nil {
		u.report(pos, err)
		return "", err
	}
	sym, _ := u.syms.Symbol(id)
	return sym.Name, nil
}

// Binary emits left op right and returns the temporary holding the result.
func (u *Unit) Binary(left, op, right string) string {
	t, i := u.emit.BinaryOp(left, op, right)
	u.append(i)
	return t
}

// Index emits a load of array[index] and returns the temporary holding it.
func (u *Unit) Index(array, index string) string {
	t, i := u.emit.ArrayAccess(array, index)
	u.append(i)
	return t
}

// IfGoto emits a jump to target taken when left relop right holds.
func (u *Unit) IfGoto(left, relop, right, target string) {
	u.append(u.emit.ConditionalJump(left, relop, right, target))
}

// Goto emits an unconditional jump to target.
func (u *Unit) Goto(target string) {
	u.append(u.emit.UnconditionalJump(target))
}

// NewLabel allocates a label, which can be jumped to before it is set.
func (u *Unit) NewLabel() string {
	return u.alloc.NextLabel()
}

// SetLabel binds label l to the next instruction emitted.
func (u *Unit) SetLabel(l string) {
	u.append(tac.Label{Name: l})
}

// Program returns the instructions emitted so far, in program order.
func (u *Unit) Program() tac.Program {
	p := make(tac.Program, len(u.prog))
	copy(p, u.prog)
	return p
}

// Errors returns every diagnostic reported so far, or nil.
func (u *Unit) Errors() error {
	return u.errors.Err()
}

// Finish ends the compilation, returning the program and any diagnostics.
func (u *Unit) Finish() (tac.Program, error) {
	if u.dumpTAC {
		glog.Infof("%s TAC:\n%s", u.Name(), u.prog)
	}
	if glog.V(1) {
		for _, sym := range u.syms.Unused() {
			glog.Infof("%s: declaration of `%s' in scope %d is never used", u.Name(), sym.Name, sym.Scope)
		}
	}
	return u.Program(), u.Errors()
}

func (u *Unit) append(i tac.Instr) {
	u.prog = append(u.prog, i)
	InstructionsEmitted.WithLabelValues(i.Kind().String()).Inc()
}

func (u *Unit) report(pos *position.Position, err error) {
	Diagnostics.WithLabelValues(diagnosticKind(err)).Inc()
	u.errors.Report(pos, err)
	if u.reporter != nil {
		u.reporter.Report(pos, err)
	}
}

func diagnosticKind(err error) string {
	var (
		re *symbol.RedeclarationError
		ce *symbol.CapacityExceededError
		nf *symbol.NotFoundError
	)
	switch {
	case pkgerrors.As(err, &re):
		return "redeclaration"
	case pkgerrors.As(err, &ce):
		return "capacity"
	case pkgerrors.As(err, &nf):
		return "undeclared"
	default:
		return "other"
	}
}
