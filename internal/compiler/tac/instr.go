// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package tac contains the three address code instructions produced by the
// emitter, and their textual form.
package tac

import (
	"bytes"
	"io"
)

// Instr is one three address code instruction.  The set of implementations is
// closed; String renders the instruction including its trailing newline.
type Instr interface {
	Kind() Kind
	String() string

	instr()
}

// AssignBinary stores the result of a binary operator in Dst.
type AssignBinary struct {
	Dst, Left, Op, Right string
}

// CondJump transfers control to Target when Left Relop Right holds.
type CondJump struct {
	Left, Relop, Right string
	Target             string
}

// Jump transfers control to Target.
type Jump struct {
	Target string
}

// IndexedLoad stores element Index of Array in Dst.
type IndexedLoad struct {
	Dst, Array, Index string
}

// Label binds the label Name to the position of the next instruction.
type Label struct {
	Name string
}

func (AssignBinary) Kind() Kind { return AssignBinaryKind }
func (CondJump) Kind() Kind     { return CondJumpKind }
func (Jump) Kind() Kind         { return JumpKind }
func (IndexedLoad) Kind() Kind  { return IndexedLoadKind }
func (Label) Kind() Kind        { return LabelKind }

func (AssignBinary) instr() {}
func (CondJump) instr()     {}
func (Jump) instr()         {}
func (IndexedLoad) instr()  {}
func (Label) instr()        {}

func (i AssignBinary) String() string {
	return i.Dst + " = " + i.Left + " " + i.Op + " " + i.Right + "\n"
}

func (i CondJump) String() string {
	return "if " + i.Left + " " + i.Relop + " " + i.Right + " goto " + i.Target + "\n"
}

func (i Jump) String() string {
	return "goto " + i.Target + "\n"
}

func (i IndexedLoad) String() string {
	return i.Dst + " = " + i.Array + "[" + i.Index + "]\n"
}

func (i Label) String() string {
	return i.Name + ":\n"
}

// Program is a sequence of instructions in program order.
type Program []Instr

// String renders every instruction in order.
func (p Program) String() string {
	var buf bytes.Buffer
	_, _ = p.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the text of every instruction in order to w.
func (p Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, i := range p {
		var m int
		m, err = io.WriteString(w, i.String())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Count returns how many instructions of kind k are in p.
func (p Program) Count(k Kind) int {
	c := 0
	for _, i := range p {
		if i.Kind() == k {
			c++
		}
	}
	return c
}
