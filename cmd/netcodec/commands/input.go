// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/payload"
	"github.com/bureau-foundation/netcodec/lib/value"
)

// inputParams select how the body is read.
type inputParams struct {
	From  string `json:"from"  flag:"from,f" desc:"input format: json, xml, or a content type (default: sniffed)"`
	JSONC bool   `json:"jsonc" flag:"jsonc"  desc:"allow comments and trailing commas in JSON input"`
}

// readInput reads the body from the single optional file argument, or
// from in when there is none, and undoes any detected compression.
func readInput(args []string, in io.Reader) ([]byte, payload.Compression, error) {
	var (
		data   []byte
		source = "stdin"
		err    error
	)
	switch len(args) {
	case 0:
		data, err = io.ReadAll(in)
		if err != nil {
			return nil, payload.CompressionNone, cli.Internal("read stdin: %w", err)
		}
	case 1:
		source = args[0]
		data, err = os.ReadFile(source)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, payload.CompressionNone, cli.NotFound("input file %s does not exist", source)
		}
		if err != nil {
			return nil, payload.CompressionNone, cli.Internal("read %s: %w", source, err)
		}
	default:
		return nil, payload.CompressionNone, cli.Validation("expected at most one input file, got %d arguments", len(args))
	}

	data, compression, err := payload.Decompress(data)
	if err != nil {
		return nil, compression, cli.Validation("%s: %w", source, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, compression, cli.Validation("empty input on %s", source)
	}
	return data, compression, nil
}

// sniffFormat guesses the format of an undeclared body: XML when the
// first byte after whitespace and a UTF-8 byte order mark is '<'.
func sniffFormat(data []byte) codec.Format {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return codec.FormatXML
	}
	return codec.FormatJSON
}

// resolveFormat returns the format named by name, or the sniffed
// format of data when name is empty.
func resolveFormat(name string, data []byte) (codec.Format, error) {
	if name == "" {
		return sniffFormat(data), nil
	}
	format, err := codec.ParseFormatName(name)
	if err != nil {
		return 0, cli.Validation("--from: %w", err)
	}
	return format, nil
}

// readBody reads the input and deserializes it, returning the body
// without its envelope.
func readBody(s *session, params inputParams, args []string, in io.Reader) (value.Value, codec.Format, error) {
	data, compression, err := readInput(args, in)
	if err != nil {
		return value.Null(), 0, err
	}
	format, err := resolveFormat(params.From, data)
	if err != nil {
		return value.Null(), 0, err
	}
	if params.JSONC && format == codec.FormatJSON {
		data = jsonc.ToJSON(data)
	}
	s.logger.Debug("read input", "format", format, "compression", compression, "bytes", len(data))

	envelope, err := s.codec.Deserialize(data, format.ContentType())
	if err != nil {
		return value.Null(), format, explainDecodeError(err)
	}
	body, _ := envelope.Get(codec.BodyKey)
	return body, format, nil
}

// explainDecodeError turns codec errors into user-facing validation
// errors, keeping the chain for errors.Is.
func explainDecodeError(err error) error {
	switch {
	case errors.Is(err, codec.ErrMalformedInput):
		return cli.Validation("could not understand the body: %w", err)
	case errors.Is(err, codec.ErrAmbiguousStructure):
		return cli.Validation("body cannot be mapped to a value: %w", err)
	default:
		return fmt.Errorf("decoding body: %w", err)
	}
}
