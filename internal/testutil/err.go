// Copyright 2020 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import "testing"

// FatalIfErr fails the test with a fatal error if err is not nil.
func FatalIfErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

// ExpectPanic runs f and fails the test unless f panics.  The recovered value
// is returned for further inspection.
func ExpectPanic(tb testing.TB, f func()) (r interface{}) {
	tb.Helper()
	defer func() {
		r = recover()
		if r == nil {
			tb.Error("expected a panic, got none")
		}
	}()
	f()
	return nil
}
