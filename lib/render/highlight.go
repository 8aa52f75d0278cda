// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/bureau-foundation/netcodec/lib/codec"
)

// Highlight returns data with ANSI syntax highlighting for the given
// format. When color is false, or Chroma fails, data is returned
// unchanged.
func Highlight(data []byte, format codec.Format, color bool) string {
	if !color {
		return string(data)
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, string(data), format.String(), "terminal256", "monokai"); err != nil {
		return string(data)
	}
	return buffer.String()
}
