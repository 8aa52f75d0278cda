// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput matches decode errors caused by text that is
	// not well-formed JSON or XML.
	ErrMalformedInput = errors.New("malformed input")

	// ErrAmbiguousStructure matches decode errors for well-formed XML
	// the dialect cannot map to a single value: a child tag repeated
	// under an element that is not a list, or a numeric type attribute
	// on text that is not a number.
	ErrAmbiguousStructure = errors.New("ambiguous structure")

	// ErrInvalidName matches encode errors for mapping keys that are
	// not valid XML element or attribute names.
	ErrInvalidName = errors.New("invalid XML name")

	// ErrUnsupportedContentType is returned by [ParseFormat] and the
	// [Codec] dispatcher for any media type other than JSON and XML.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// DecodeError describes why a payload could not be decoded.
type DecodeError struct {
	// Kind is ErrMalformedInput or ErrAmbiguousStructure.
	Kind error

	// Format is the wire format being decoded.
	Format Format

	// Path locates the offending element for XML structure errors,
	// e.g. "network/fixed_ips". Empty for syntax errors.
	Path string

	// Reason is a human-readable description.
	Reason string

	// Err is the underlying parser or conversion error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode %s: %v at %s: %s", e.Format, e.Kind, e.Path, e.Reason)
	}
	return fmt.Sprintf("decode %s: %v: %s", e.Format, e.Kind, e.Reason)
}

// Unwrap exposes both the kind sentinel and the underlying error, so
// errors.Is(err, ErrMalformedInput) and errors.As(err, &syntaxError)
// both work.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(format Format, err error) *DecodeError {
	return &DecodeError{Kind: ErrMalformedInput, Format: format, Reason: err.Error(), Err: err}
}

func ambiguous(path, reason string) *DecodeError {
	return &DecodeError{Kind: ErrAmbiguousStructure, Format: FormatXML, Path: path, Reason: reason}
}
