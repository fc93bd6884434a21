// Copyright 2016 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package position describes where in the source program a declaration or
// diagnostic originates.
package position

import "fmt"

// A Position is the location in the source program that a token appears.
type Position struct {
	Filename string // Source filename in which this token appears.
	Line     int    // Line in the source for this token, counted from zero.
	Startcol int    // Starting and ending columns in the source for this token.
	Endcol   int
}

// New returns a position for a single token on line, spanning columns start to end.
func New(filename string, line, start, end int) *Position {
	return &Position{Filename: filename, Line: line, Startcol: start, Endcol: end}
}

func (p Position) String() string {
	r := fmt.Sprintf("%s:%d:%d", p.Filename, p.Line+1, p.Startcol+1)
	if p.Endcol > p.Startcol {
		r += fmt.Sprintf("-%d", p.Endcol+1)
	}
	return r
}

// Merge returns a position spanning both a and b.  Either may be nil.
func Merge(a, b *Position) *Position {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	r := *a
	if b.Line > r.Line || (b.Line == r.Line && b.Endcol > r.Endcol) {
		r.Endcol = b.Endcol
	}
	if b.Line < r.Line {
		r.Line = b.Line
		r.Startcol = b.Startcol
	} else if b.Line == r.Line && b.Startcol < r.Startcol {
		r.Startcol = b.Startcol
	}
	return &r
}
