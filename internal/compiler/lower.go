// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package compiler

// Cond is a relational test between two resolved operands.
type Cond struct {
	Left, Relop, Right string
}

// If emits then guarded by c:
//
//	if c goto Ltrue
//	goto Lend
//	Ltrue: then
//	Lend:
func (u *Unit) If(c Cond, then func()) {
	lTrue, lEnd := u.NewLabel(), u.NewLabel()
	u.IfGoto(c.Left, c.Relop, c.Right, lTrue)
	u.Goto(lEnd)
	u.SetLabel(lTrue)
	call(then)
	u.SetLabel(lEnd)
}

// IfElse emits then when c holds and els otherwise:
//
//	if c goto Ltrue
//	els
//	goto Lend
//	Ltrue: then
//	Lend:
func (u *Unit) IfElse(c Cond, then, els func()) {
	lTrue, lEnd := u.NewLabel(), u.NewLabel()
	u.IfGoto(c.Left, c.Relop, c.Right, lTrue)
	call(els)
	u.Goto(lEnd)
	u.SetLabel(lTrue)
	call(then)
	u.SetLabel(lEnd)
}

// While emits body repeated while the condition holds.  cond is required;
// body may be nil.  cond is called once, after the loop head label is set, so
// any instructions it emits to compute its operands are re-executed on every
// iteration:
//
//	Ltop: cond
//	if c goto Lbody
//	goto Lend
//	Lbody: body
//	goto Ltop
//	Lend:
func (u *Unit) While(cond func() Cond, body func()) {
	lTop, lBody, lEnd := u.NewLabel(), u.NewLabel(), u.NewLabel()
	u.SetLabel(lTop)
	c := cond()
	u.IfGoto(c.Left, c.Relop, c.Right, lBody)
	u.Goto(lEnd)
	u.SetLabel(lBody)
	call(body)
	u.Goto(lTop)
	u.SetLabel(lEnd)
}

func call(f func()) {
	if f != nil {
		f()
	}
}
