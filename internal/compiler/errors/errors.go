// Copyright 2015 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package errors relays compile diagnostics to a sink chosen by the caller.
package errors

import (
	"strings"

	"github.com/golang/glog"
	"github.com/google/tacgen/internal/compiler/position"
	"github.com/pkg/errors"
)

// Reporter receives diagnostics as they are detected.  pos may be nil.
type Reporter interface {
	Report(pos *position.Position, err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(pos *position.Position, err error)

// Report calls f(pos, err).
func (f ReporterFunc) Report(pos *position.Position, err error) {
	f(pos, err)
}

type compileError struct {
	pos *position.Position
	err error
}

func (e compileError) Error() string {
	if e.pos == nil {
		return e.err.Error()
	}
	return e.pos.String() + ": " + e.err.Error()
}

func (e compileError) Unwrap() error {
	return e.err
}

// ErrorList contains a list of compile errors.
type ErrorList []*compileError

// Add appends an error message at a position to the list of errors.
func (p *ErrorList) Add(pos *position.Position, msg string) {
	p.Report(pos, errors.New(msg))
}

// Report implements Reporter by appending err at pos.
func (p *ErrorList) Report(pos *position.Position, err error) {
	var c *position.Position
	if pos != nil {
		cp := *pos
		c = &cp
	}
	*p = append(*p, &compileError{c, err})
}

// Append puts an ErrorList on the end of this ErrorList.
func (p *ErrorList) Append(l ErrorList) {
	*p = append(*p, l...)
}

// Errors returns the underlying errors, without positions, in report order.
func (p ErrorList) Errors() []error {
	r := make([]error, len(p))
	for i, e := range p {
		r[i] = e.err
	}
	return r
}

// Unwrap returns the underlying errors so errors.Is and errors.As can match
// any diagnostic in the list.
func (p ErrorList) Unwrap() []error {
	return p.Errors()
}

// Err returns the list as an error, or nil if it is empty.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// ErrorList implements the error interface.
func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	var r strings.Builder
	for i, e := range p {
		if i > 0 {
			r.WriteString("\n")
		}
		r.WriteString(e.Error())
	}
	return r.String()
}

// LogReporter writes each diagnostic to the warning log.
type LogReporter struct{}

// Report implements Reporter.
func (LogReporter) Report(pos *position.Position, err error) {
	glog.Warning(compileError{pos, err}.Error())
}

// Tee returns a Reporter that passes each diagnostic to every reporter in rs.
// nil entries are skipped.
func Tee(rs ...Reporter) Reporter {
	return ReporterFunc(func(pos *position.Position, err error) {
		for _, r := range rs {
			if r != nil {
				r.Report(pos, err)
			}
		}
	})
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
