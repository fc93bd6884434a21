// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package tac

// Kind enumerates the shapes of three address code instruction.
type Kind int

const (
	AssignBinaryKind Kind = iota // dst = a op b
	CondJumpKind                 // if a relop b goto L
	JumpKind                     // goto L
	IndexedLoadKind              // dst = a[b]
	LabelKind                    // L:

	lastKind // Sentinel value for tests.
)

var kindNames = map[Kind]string{
	AssignBinaryKind: "assign",
	CondJumpKind:     "condjump",
	JumpKind:         "jump",
	IndexedLoadKind:  "load",
	LabelKind:        "label",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
