// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/value"
)

var defaultMetadata = sync.OnceValue(func() *metadata.Metadata {
	return metadata.MustNew(metadata.Defaults())
})

// Codec serializes and deserializes request and response bodies by
// content type. A Codec is immutable and safe for concurrent use.
type Codec struct {
	metadata *metadata.Metadata
	logger   *slog.Logger
}

// New returns a Codec using md for XML. A nil md uses the default
// tables; a nil logger discards output.
func New(md *metadata.Metadata, logger *slog.Logger) *Codec {
	if md == nil {
		md = defaultMetadata()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Codec{metadata: md, logger: logger}
}

// Metadata returns the tables used for XML.
func (c *Codec) Metadata() *metadata.Metadata {
	return c.metadata
}

// Serialize encodes v in the format named by contentType. XML fails
// with [ErrInvalidName] when a mapping key cannot be an element name.
func (c *Codec) Serialize(v value.Value, contentType string) ([]byte, error) {
	format, err := ParseFormat(contentType)
	if err != nil {
		return nil, err
	}
	if format == FormatXML {
		if err := CheckXMLNames(v); err != nil {
			return nil, err
		}
	}
	return c.Encode(v, format), nil
}

// Deserialize decodes data in the format named by contentType and
// returns it wrapped as {"body": <decoded>}, whichever the format.
func (c *Codec) Deserialize(data []byte, contentType string) (value.Value, error) {
	format, err := ParseFormat(contentType)
	if err != nil {
		return value.Null(), err
	}

	switch format {
	case FormatJSON:
		return c.Decode(data, format)
	case FormatXML:
		decoded, err := c.Decode(data, format)
		if err != nil {
			return value.Null(), err
		}
		return value.Mapping(map[string]value.Value{BodyKey: decoded}), nil
	default:
		panic(fmt.Sprintf("codec: unhandled format %s", format))
	}
}

// Encode encodes v in a known format. XML output is a complete
// document with declaration.
func (c *Codec) Encode(v value.Value, format Format) []byte {
	var data []byte
	switch format {
	case FormatJSON:
		data = EncodeJSON(v)
	case FormatXML:
		data = MarshalXML(v, c.metadata)
	default:
		panic(fmt.Sprintf("codec: unhandled format %s", format))
	}
	c.logger.Debug("encoded body", "format", format, "bytes", len(data))
	return data
}

// EncodeIndent is Encode with pretty output: JSON members and XML
// child elements one per line, nested by indent. An empty indent is
// the same as Encode.
func (c *Codec) EncodeIndent(v value.Value, format Format, indent string) []byte {
	if indent == "" {
		return c.Encode(v, format)
	}
	var data []byte
	switch format {
	case FormatJSON:
		data = EncodeJSONIndent(v, indent)
	case FormatXML:
		data = MarshalXMLIndent(v, c.metadata, indent)
	default:
		panic(fmt.Sprintf("codec: unhandled format %s", format))
	}
	c.logger.Debug("encoded body", "format", format, "bytes", len(data), "indent", true)
	return data
}

// Decode decodes data in a known format, with the format's own result
// shape: JSON is wrapped in {"body": ...}, XML follows [DecodeXML].
func (c *Codec) Decode(data []byte, format Format) (value.Value, error) {
	var (
		decoded value.Value
		err     error
	)
	switch format {
	case FormatJSON:
		decoded, err = DecodeJSON(data)
	case FormatXML:
		decoded, err = DecodeXML(data, c.metadata)
	default:
		panic(fmt.Sprintf("codec: unhandled format %s", format))
	}
	if err != nil {
		c.logger.Debug("decode failed", "format", format, "bytes", len(data), "error", err)
		return value.Null(), err
	}
	c.logger.Debug("decoded body", "format", format, "bytes", len(data), "kind", decoded.Kind())
	return decoded, nil
}
