// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package alloc hands out the names of compiler generated temporaries and
// jump labels.
//
// An Allocator belongs to exactly one compilation.  Names are unique within
// that compilation for each category; two compilations with their own
// Allocators produce the same sequence of names for the same sequence of
// calls.
package alloc

import (
	"fmt"
	"math"
)

// Category names the kind of name being allocated.
type Category int

const (
	Temp  Category = iota // Temporaries holding intermediate expression results.
	Label                 // Jump targets.
)

var categoryPrefix = map[Category]string{
	Temp:  "t",
	Label: "L",
}

func (c Category) String() string {
	switch c {
	case Temp:
		return "temporary"
	case Label:
		return "label"
	default:
		panic("unexpected category")
	}
}

// Prefix returns the string every name in this category starts with.
func (c Category) Prefix() string {
	return categoryPrefix[c]
}

// OverflowError is the panic value raised when a counter has no more names to
// give out.  It indicates an internal compiler failure, not a user error.
type OverflowError struct {
	Category Category
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("internal compiler error: %s counter overflow", e.Category)
}

// Allocator holds the temporary and label counters for one compilation.
// It is not safe for concurrent use.
type Allocator struct {
	temps  int
	labels int
}

// New creates an Allocator with both counters at zero.
func New() *Allocator {
	return &Allocator{}
}

// NextTemp returns a fresh temporary name, t0, t1, ...
func (a *Allocator) NextTemp() string {
	return next(&a.temps, Temp)
}

// NextLabel returns a fresh label name, L0, L1, ...
func (a *Allocator) NextLabel() string {
	return next(&a.labels, Label)
}

// Temps returns the number of temporaries allocated so far.
func (a *Allocator) Temps() int {
	return a.temps
}

// Labels returns the number of labels allocated so far.
func (a *Allocator) Labels() int {
	return a.labels
}

// Reset returns both counters to zero, ready for an unrelated compilation.
func (a *Allocator) Reset() {
	a.temps = 0
	a.labels = 0
}

func next(counter *int, c Category) string {
	if *counter == math.MaxInt {
		panic(&OverflowError{c})
	}
	n := *counter
	*counter++
	return c.Prefix() + fmt.Sprint(n)
}
