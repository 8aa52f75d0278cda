// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/payload"
	"github.com/bureau-foundation/netcodec/lib/render"
	"github.com/bureau-foundation/netcodec/lib/value"
)

// outputParams override the configuration's output section.
type outputParams struct {
	Compact  bool   `json:"compact"  flag:"compact,c" desc:"single-line output"`
	Color    string `json:"color"    flag:"color"     desc:"highlight output: auto, always, or never (default from config)"`
	Compress string `json:"compress" flag:"compress"  desc:"compress output: none, lz4, or zstd (default from config)"`
}

// useColor resolves the color setting against the terminal.
func useColor(setting string, terminal bool) (bool, error) {
	switch setting {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return terminal, nil
	default:
		return false, cli.Validation("--color must be auto, always, or never, got %q", setting)
	}
}

// writeValue encodes v in format and writes it to streams.Out.
// Compressed output is written raw; text output is highlighted when
// color applies and ends with a newline.
func writeValue(s *session, streams Streams, params outputParams, v value.Value, format codec.Format) error {
	indent := s.config.Output.Indent
	if params.Compact {
		indent = ""
	}
	if format == codec.FormatXML {
		if err := codec.CheckXMLNames(v); err != nil {
			return cli.Validation("%w", err)
		}
	}
	data := s.codec.EncodeIndent(v, format, indent)

	compressionName := params.Compress
	if compressionName == "" {
		compressionName = s.config.Output.Compression
	}
	compression, err := payload.ParseCompression(compressionName)
	if err != nil {
		return cli.Validation("--compress: %w", err)
	}
	if compression != payload.CompressionNone {
		compressed, err := payload.Compress(data, compression)
		if err != nil {
			return cli.Internal("%w", err)
		}
		s.logger.Debug("compressed output", "compression", compression, "bytes", len(data), "compressed_bytes", len(compressed))
		_, err = streams.Out.Write(compressed)
		return err
	}

	colorSetting := params.Color
	if colorSetting == "" {
		colorSetting = s.config.Output.Color
	}
	color, err := useColor(colorSetting, streams.OutIsTerminal)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(streams.Out, render.Highlight(data, format, color))
	return err
}

// resolveOutputFormat returns the format named by name, or the
// configured default when name is empty.
func resolveOutputFormat(s *session, name string) (codec.Format, error) {
	if name == "" {
		name = s.config.Output.Format
	}
	format, err := codec.ParseFormatName(name)
	if err != nil {
		return 0, cli.Validation("--to: %w", err)
	}
	return format, nil
}
