// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmltree is the minimal element tree the XML codec encodes
// into and decodes from.
//
// A [Node] has a tag, an ordered attribute list, ordered children and
// optional text. It carries no type semantics of its own; the codec
// decides what its attributes mean.
//
// Names come in two spellings. Trees built by the encoder use the
// prefixed names that appear on the wire ("atom:link", "quantum:type",
// "xmlns:xsi"). Trees returned by [Parse] use Clark notation for every
// namespaced name ("{http://www.w3.org/2005/Atom}link"), because a
// prefix means nothing once the document's declarations are gone.
// Namespace declarations themselves are kept as "xmlns" and
// "xmlns:prefix" attributes. [Clark] and [SplitClark] convert between
// a namespace/local pair and the Clark spelling.
//
// [Parse] builds a tree from document text using encoding/xml and
// reports every failure as a [*SyntaxError], whatever stage of the
// parser raised it. [Marshal] and [MarshalIndent] write a tree back out
// deterministically, attribute order preserved.
package xmltree
