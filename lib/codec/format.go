// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"mime"
	"strings"
)

// Media types accepted by [ParseFormat].
const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// Format is one of the two supported wire formats. The zero value is
// not a valid format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatXML
)

// String returns the short name: "json" or "xml".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ContentType returns the media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return ContentTypeJSON
	case FormatXML:
		return ContentTypeXML
	default:
		return ""
	}
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatXML
}

// ParseFormat maps a content type to a Format. Media-type parameters
// such as "; charset=UTF-8" are accepted and ignored, and the type is
// compared case-insensitively. Anything other than application/json
// and application/xml returns an error matching
// [ErrUnsupportedContentType].
func ParseFormat(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnsupportedContentType, contentType, err)
	}
	switch mediaType {
	case ContentTypeJSON:
		return FormatJSON, nil
	case ContentTypeXML:
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
}

// ParseFormatName maps a short name ("json", "xml") or a content type
// to a Format. Used for command-line flags.
func ParseFormatName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	}
	return ParseFormat(name)
}
