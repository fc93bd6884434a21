// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package compiler

import (
	"github.com/google/tacgen/internal/compiler/errors"
	"github.com/prometheus/client_golang/prometheus"
	pkgerrors "github.com/pkg/errors"
)

// Option configures a new compilation Unit.
type Option func(*Unit) error

// MaxSymbols limits the symbol table to n entries.  Zero or less means no
// limit.
func MaxSymbols(n int) Option {
	return func(u *Unit) error {
		u.maxSymbols = n
		return nil
	}
}

// Reporter sends every diagnostic to r as well as recording it in the Unit.
func Reporter(r errors.Reporter) Option {
	return func(u *Unit) error {
		u.reporter = r
		return nil
	}
}

// DumpTAC instructs the Unit to log the finished program.
func DumpTAC() Option {
	return func(u *Unit) error {
		u.dumpTAC = true
		return nil
	}
}

// PrometheusRegisterer registers the compiler metrics with reg.  Several Units
// may share one registry.
func PrometheusRegisterer(reg prometheus.Registerer) Option {
	return func(u *Unit) error {
		for _, c := range []prometheus.Collector{SymbolsDeclared, InstructionsEmitted, Diagnostics} {
			if err := reg.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !pkgerrors.As(err, &are) {
					return errors.Wrapf(err, "registering compiler metrics")
				}
			}
		}
		return nil
	}
}
