// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats codec output for a terminal.
//
// [Highlight] syntax-highlights an encoded JSON or XML payload with
// Chroma. [TreeRenderer] draws a decoded [value.Value] as an indented
// tree whose right-hand column shows the wire type each node carries
// in the XML dialect (bool, int, long, float, list, dict, text, null),
// which is the information a plain JSON dump hides.
//
// Both accept a color switch instead of detecting the terminal
// themselves; the command line layer decides from its flags and
// golang.org/x/term.
package render
