// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for netcodec packages.
//
// [RequireValueEqual] compares two [value.Value] trees and reports the
// path of the first difference together with both values in their
// kind-annotated debug form, which is far easier to read than a %v
// dump of two nested mappings.
//
// [RequireErrorIs] checks an error against a sentinel and prints the
// full error chain on mismatch.
//
// [WriteFile] creates a file with the given content inside a test's
// temporary directory and returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
