// Copyright 2018 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package tac_test

import (
	"bytes"
	"testing"

	"github.com/google/tacgen/internal/compiler/tac"
	"github.com/google/tacgen/internal/testutil"
)

func TestInstrString(t *testing.T) {
	for _, tc := range []struct {
		instr tac.Instr
		kind  tac.Kind
		want  string
	}{
		{tac.AssignBinary{"t0", "a", "+", "b"}, tac.AssignBinaryKind, "t0 = a + b\n"},
		{tac.CondJump{"t0", "<", "10", "L0"}, tac.CondJumpKind, "if t0 < 10 goto L0\n"},
		{tac.Jump{"L3"}, tac.JumpKind, "goto L3\n"},
		{tac.IndexedLoad{"t1", "arr", "i"}, tac.IndexedLoadKind, "t1 = arr[i]\n"},
		{tac.Label{"L0"}, tac.LabelKind, "L0:\n"},
	} {
		testutil.ExpectNoDiff(t, tc.want, tc.instr.String())
		testutil.ExpectNoDiff(t, tc.kind, tc.instr.Kind())
	}
}

func TestProgram(t *testing.T) {
	p := tac.Program{
		tac.AssignBinary{"t0", "a", "+", "b"},
		tac.CondJump{"t0", "<", "10", "L0"},
		tac.Jump{"L1"},
		tac.Label{"L0"},
		tac.IndexedLoad{"t1", "arr", "t0"},
		tac.Label{"L1"},
	}
	want := "t0 = a + b\n" +
		"if t0 < 10 goto L0\n" +
		"goto L1\n" +
		"L0:\n" +
		"t1 = arr[t0]\n" +
		"L1:\n"
	testutil.ExpectNoDiff(t, want, p.String())

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	testutil.FatalIfErr(t, err)
	testutil.ExpectNoDiff(t, int64(len(want)), n)
	testutil.ExpectNoDiff(t, want, buf.String())

	testutil.ExpectNoDiff(t, 2, p.Count(tac.LabelKind))
	testutil.ExpectNoDiff(t, 1, p.Count(tac.JumpKind))
}

func TestEmptyProgram(t *testing.T) {
	testutil.ExpectNoDiff(t, "", tac.Program(nil).String())
}
