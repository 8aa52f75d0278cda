// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec converts [value.Value] bodies to and from the two wire
// formats the networking API speaks: JSON and a typed XML dialect.
//
// JSON already distinguishes null, booleans, numbers, strings, arrays
// and objects, so [EncodeJSON] and [DecodeJSON] are a direct
// structural mapping. The only additions are float formatting (a float
// always carries a decimal point or exponent so it decodes as a float)
// and sanitizing of values JSON cannot hold (NaN and infinities become
// their display string). [DecodeJSON] wraps the parsed document as
// {"body": <document>}.
//
// The XML dialect carries the type information XML lacks in
// attributes:
//
//   - quantum:type="bool|int|long|float" on scalar elements, absent
//     for strings;
//   - quantum:type="list" and quantum:type="dict" on empty containers,
//     the only way an empty list differs from an empty mapping or an
//     empty string;
//   - xsi:nil="true" for null.
//
// Lists render as repeated child elements named by the singular of the
// container tag ([metadata.Metadata.Singular]). A mapping with exactly
// one key uses that key as the root element; any other mapping is
// wrapped in the virtual root "_v_root". Top-level keys ending in
// "_links" become atom:link elements under a named root and stay
// ordinary lists under the virtual root. Namespace declarations are
// added to the root once the tree is complete. [EncodeXML] builds the
// element tree, [MarshalXML] writes it, [DecodeXML] and
// [DecodeXMLNode] reverse the process.
//
// [Codec] is the content-type dispatcher that collaborators use:
// Serialize and Deserialize select JSON or XML by media type and fail
// immediately with [ErrUnsupportedContentType] for anything else.
//
// Every decode failure is a [*DecodeError] that matches either
// [ErrMalformedInput] (the text is not well-formed) or
// [ErrAmbiguousStructure] (well-formed, but not something the dialect
// can map to a single value) under errors.Is.
//
// Beyond the two wire formats, the package keeps a deterministic CBOR
// snapshot of a Value ([MarshalSnapshot]) using Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical value always
// produces identical bytes, which is what [Fingerprint] hashes.
//
// All functions are pure and reentrant. Nothing here performs I/O or
// keeps state between calls.
package codec
