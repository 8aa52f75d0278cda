// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
)

type convertParams struct {
	commonParams
	inputParams
	outputParams
	To string `json:"to" flag:"to,t" desc:"output format: json, xml, or a content type (default from config)"`
}

func convertCommand(streams Streams) *cli.Command {
	var params convertParams

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert a body between XML and JSON",
		Description: `Decode a body in one format and encode it in another. Converting
XML to JSON and back reproduces the original value, including types
that only the XML type attributes carry.

The output format defaults to output.format from the configuration.`,
		Usage: "netcodec convert [--from xml|json] --to xml|json [file]",
		Examples: []cli.Example{
			{
				Description: "Turn an XML capture into JSON",
				Command:     "netcodec convert --to json response.xml",
			},
			{
				Description: "Produce the XML request for a JSON fixture",
				Command:     "netcodec convert --from json --to application/xml request.json",
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
			format, err := resolveOutputFormat(s, params.To)
			if err != nil {
				return err
			}
			return writeValue(s, streams, params.outputParams, v, format)
		},
	}
}
