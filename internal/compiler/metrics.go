// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package compiler

import "github.com/prometheus/client_golang/prometheus"

var (
	// SymbolsDeclared counts successful declarations.
	SymbolsDeclared = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "compiler",
		Name:      "symbols_declared_total",
		Help:      "number of symbols declared",
	})
	// InstructionsEmitted counts instructions appended to a program, by kind.
	InstructionsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compiler",
		Name:      "instructions_emitted_total",
		Help:      "number of three address code instructions emitted",
	}, []string{"kind"})
	// Diagnostics counts errors reported to the caller, by kind.
	Diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compiler",
		Name:      "diagnostics_total",
		Help:      "number of compile diagnostics reported",
	}, []string{"kind"})
)
