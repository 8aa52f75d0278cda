// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/netcodec/lib/value"
)

// RequireValueEqual fails the test unless got and want are equal under
// [value.Equal].
//
//	testutil.RequireValueEqual(t, decoded, want, "decoding %s", name)
func RequireValueEqual(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, got, want value.Value, msgAndArgs ...any) {
	t.Helper()
	if value.Equal(got, want) {
		return
	}
	t.Fatalf("%s: values differ at %s\n got: %s\nwant: %s",
		formatMessage(msgAndArgs), value.Diff(got, want), got, want)
}

// RequireErrorIs fails the test unless errors.Is(err, target).
//
//	testutil.RequireErrorIs(t, err, codec.ErrMalformedInput, "decoding truncated XML")
func RequireErrorIs(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, err, target error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error matching %v, got nil", formatMessage(msgAndArgs), target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("%s: error %q does not match %v", formatMessage(msgAndArgs), err, target)
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
