// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
)

type encodeParams struct {
	commonParams
	outputParams
	JSONC bool   `json:"jsonc" flag:"jsonc"  desc:"allow comments and trailing commas in the input"`
	To    string `json:"to"    flag:"to,t"   desc:"output format: json, xml, or a content type" default:"xml"`
}

func encodeCommand(streams Streams) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a JSON value as a request body",
		Description: `Read a value written as JSON and encode it as a request body in
the --to format (XML by default).

The top-level mapping's single key names the XML root element, e.g.
{"network": {...}} encodes as <network>. Lists under registered plural
tags become repeated singular children; keys listed as attributes in
the configuration become XML attributes.

With --jsonc the input may contain comments and trailing commas, which
is convenient for hand-written fixtures.`,
		Usage: "netcodec encode [--to xml|json] [--jsonc] [file]",
		Examples: []cli.Example{
			{
				Description: "Encode a network as XML",
				Command:     `echo '{"network": {"name": "net1", "admin_state_up": true}}' | netcodec encode`,
			},
			{
				Description: "Encode a commented fixture and compress it",
				Command:     "netcodec encode --jsonc --compress zstd fixture.jsonc > body.xml.zst",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			s, err := params.open()
			if err != nil {
				return err
			}
			v, _, err := readBody(s, inputParams{From: "json", JSONC: params.JSONC}, args, streams.In)
			if err != nil {
				return err
			}
			format, err := codec.ParseFormatName(params.To)
			if err != nil {
				return cli.Validation("--to: %w", err)
			}
			return writeValue(s, streams, params.outputParams, v, format)
		},
	}
}
