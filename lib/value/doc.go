// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package value defines the in-memory representation of a request or
// response body as it flows through the codec.
//
// A [Value] is a closed tagged union. Each value has exactly one
// [Kind]:
//
//   - [KindNull] -- an explicit null, distinct from an absent key
//     and from the empty string.
//   - [KindBool] -- true or false.
//   - [KindInt] -- a 64-bit signed integer. Integers carry a width
//     flag ([Value.IsLong]) so that the XML dialect can round-trip its
//     separate "int" and "long" type tags. The flag is presentation
//     only: [Equal] ignores it.
//   - [KindFloat] -- a float64.
//   - [KindText] -- a string.
//   - [KindSequence] -- an ordered list of values.
//   - [KindMapping] -- a string-keyed map. Key order carries no
//     meaning; [Value.Keys] returns keys sorted so that encoders are
//     deterministic.
//
// Values are immutable once built. Constructors copy their slice and
// map arguments, and accessors return copies, so a Value may be
// shared between goroutines without locking.
//
// [FromGo] converts ordinary Go data (the output of encoding/json,
// YAML, hand-built literals) into a Value. Types with no structural
// equivalent (time.Time, fmt.Stringer, errors, anything else) are
// sanitized to their display string rather than rejected. [Value.ToGo]
// converts back to plain Go data for printing and for libraries that
// want map[string]any.
//
// This package depends on no other netcodec packages.
package value
