// Copyright 2018 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package testutil holds helpers shared by the compiler package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Diff returns a human readable report of the differences between a and b, or
// the empty string if they are equal.
func Diff(a, b interface{}, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// ExpectNoDiff fails the test if want and got differ, printing the diff.
func ExpectNoDiff(tb testing.TB, want, got interface{}, opts ...cmp.Option) bool {
	tb.Helper()
	if diff := Diff(want, got, opts...); diff != "" {
		tb.Errorf("unexpected diff, -want +got:\n%s", diff)
		tb.Logf("expected:\n%#v", want)
		tb.Logf("received:\n%#v", got)
		return false
	}
	return true
}
