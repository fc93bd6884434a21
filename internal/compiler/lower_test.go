// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package compiler_test

import (
	"testing"

	"github.com/google/tacgen/internal/compiler"
	"github.com/google/tacgen/internal/testutil"
)

var lowerTests = []struct {
	name string
	gen  func(u *compiler.Unit)
	want string
}{
	{"if",
		func(u *compiler.Unit) {
			u.If(compiler.Cond{Left: "a", Relop: "<", Right: "b"}, func() {
				u.Binary("a", "+", "1")
			})
		},
		"if a < b goto L0\n" +
			"goto L1\n" +
			"L0:\n" +
			"t0 = a + 1\n" +
			"L1:\n"},

	{"if else",
		func(u *compiler.Unit) {
			u.IfElse(compiler.Cond{Left: "a", Relop: "==", Right: "0"},
				func() { u.Binary("b", "*", "2") },
				func() { u.Index("arr", "a") })
		},
		"if a == 0 goto L0\n" +
			"t0 = arr[a]\n" +
			"goto L1\n" +
			"L0:\n" +
			"t1 = b * 2\n" +
			"L1:\n"},

	{"while with computed condition",
		func(u *compiler.Unit) {
			u.While(func() compiler.Cond {
				t := u.Index("arr", "i")
				return compiler.Cond{Left: t, Relop: "!=", Right: "0"}
			}, func() {
				u.Binary("i", "+", "1")
			})
		},
		"L0:\n" +
			"t0 = arr[i]\n" +
			"if t0 != 0 goto L1\n" +
			"goto L2\n" +
			"L1:\n" +
			"t1 = i + 1\n" +
			"goto L0\n" +
			"L2:\n"},

	{"nested if in while",
		func(u *compiler.Unit) {
			u.While(func() compiler.Cond {
				return compiler.Cond{Left: "i", Relop: "<", Right: "n"}
			}, func() {
				u.If(compiler.Cond{Left: "i", Relop: ">", Right: "5"}, func() {
					u.Goto("L9")
				})
			})
		},
		"L0:\n" +
			"if i < n goto L1\n" +
			"goto L2\n" +
			"L1:\n" +
			"if i > 5 goto L3\n" +
			"goto L4\n" +
			"L3:\n" +
			"goto L9\n" +
			"L4:\n" +
			"goto L0\n" +
			"L2:\n"},

	{"while with empty body",
		func(u *compiler.Unit) {
			u.While(func() compiler.Cond {
				return compiler.Cond{Left: "p", Relop: "!=", Right: "0"}
			}, nil)
		},
		"L0:\n" +
			"if p != 0 goto L1\n" +
			"goto L2\n" +
			"L1:\n" +
			"goto L0\n" +
			"L2:\n"},

	{"empty bodies",
		func(u *compiler.Unit) {
			u.IfElse(compiler.Cond{Left: "x", Relop: ">=", Right: "y"}, nil, nil)
		},
		"if x >= y goto L0\n" +
			"goto L1\n" +
			"L0:\n" +
			"L1:\n"},
}

func TestLowering(t *testing.T) {
	for _, tc := range lowerTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			u, err := compiler.New(tc.name)
			testutil.FatalIfErr(t, err)
			tc.gen(u)
			prog, err := u.Finish()
			testutil.FatalIfErr(t, err)
			testutil.ExpectNoDiff(t, tc.want, prog.String())
		})
	}
}

func TestLoweringIsDeterministic(t *testing.T) {
	for _, tc := range lowerTests {
		var out [2]string
		for i := range out {
			u, err := compiler.New(tc.name)
			testutil.FatalIfErr(t, err)
			tc.gen(u)
			out[i] = u.Program().String()
		}
		testutil.ExpectNoDiff(t, out[0], out[1])
	}
}
