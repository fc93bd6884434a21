// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package emit builds three address code instructions from operands the
// caller has already resolved.
//
// The emitter holds no state of its own apart from the Allocator it draws
// temporaries from, so a fixed sequence of calls against a fresh Allocator
// always produces the same instructions and names.  A temporary returned by
// BinaryOp or ArrayAccess is the operand a consuming instruction should use.
package emit

import (
	"strings"

	"github.com/golang/glog"
	"github.com/google/tacgen/internal/compiler/alloc"
	"github.com/google/tacgen/internal/compiler/tac"
)

// Emitter formats instructions, allocating result temporaries from a.
type Emitter struct {
	a *alloc.Allocator
}

// New creates an Emitter drawing names from a.
func New(a *alloc.Allocator) *Emitter {
	return &Emitter{a: a}
}

// BinaryOp assigns left op right to a fresh temporary, which is returned
// along with the instruction.
func (e *Emitter) BinaryOp(left, op, right string) (string, tac.AssignBinary) {
	i := tac.AssignBinary{Dst: e.a.NextTemp(), Left: left, Op: op, Right: right}
	trace(i)
	return i.Dst, i
}

// ConditionalJump jumps to target when left relop right holds.  target must
// already have been allocated; nothing is allocated here.
func (e *Emitter) ConditionalJump(left, relop, right, target string) tac.CondJump {
	i := tac.CondJump{Left: left, Relop: relop, Right: right, Target: target}
	trace(i)
	return i
}

// UnconditionalJump jumps to target.
func (e *Emitter) UnconditionalJump(target string) tac.Jump {
	i := tac.Jump{Target: target}
	trace(i)
	return i
}

// ArrayAccess loads array[index] into a fresh temporary, which is returned
// along with the instruction.
func (e *Emitter) ArrayAccess(array, index string) (string, tac.IndexedLoad) {
	i := tac.IndexedLoad{Dst: e.a.NextTemp(), Array: array, Index: index}
	trace(i)
	return i.Dst, i
}

func trace(i tac.Instr) {
	if glog.V(2) {
		glog.Infof("emitting %s `%s'", i.Kind(), strings.TrimSuffix(i.String(), "\n"))
	}
}
