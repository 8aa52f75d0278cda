// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
)

type decodeParams struct {
	commonParams
	inputParams
	outputParams
}

func decodeCommand(streams Streams) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a request or response body to JSON",
		Description: `Read a body in XML or JSON and print the decoded value as JSON.

Decoding XML applies the metadata tables: registered plural tags become
lists, quantum:type attributes restore booleans and numbers, and
xsi:nil elements become null. atom:link children appear as a sibling
"<root>_links" list.

The JSON output does not distinguish int from long; use "netcodec tree"
or "netcodec diag" to see exact types.`,
		Usage: "netcodec decode [--from xml|json] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a captured XML response",
				Command:     "netcodec decode response.xml",
			},
			{
				Description: "Decode a compressed capture from a pipeline",
				Command:     "zstd -c response.xml | netcodec decode --from xml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			s, err := params.open()
			if err != nil {
				return err
			}
			v, _, err := readBody(s, params.inputParams, args, streams.In)
			if err != nil {
				return err
			}
			return writeValue(s, streams, params.outputParams, v, codec.FormatJSON)
		},
	}
}
