// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package metadata holds the static tables the XML codec consults in
// both directions: which container tags hold lists and what their
// items are called, which mapping keys render as XML attributes, and
// which namespace URIs belong to extension prefixes.
//
// A [Metadata] is built once from [Tables] (typically [Defaults]
// merged with configuration and the server's extension list) and is
// read-only afterward. Every lookup is a pure map read, so one
// Metadata may serve any number of concurrent encode and decode calls.
//
// A failed lookup is never an error: [Metadata.Singular] falls back to
// stripping a trailing "s" and then to "item"; an unknown namespace
// simply has no prefix.
package metadata
