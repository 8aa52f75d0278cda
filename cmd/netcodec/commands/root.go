// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
)

// Root builds the netcodec command tree over streams.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "netcodec",
		Description: `netcodec: request and response bodies of the networking API.

Encodes values as the API's XML dialect or JSON, decodes either back,
and inspects the result. XML handling is driven by metadata tables
(plural tags, attribute keys, extension namespaces) that a YAML
configuration file can extend; point $NETCODEC_CONFIG or --config at it.`,
		Output: streams.Err,
		Subcommands: []*cli.Command{
			encodeCommand(streams),
			decodeCommand(streams),
			convertCommand(streams),
			validateCommand(streams),
			diagCommand(streams),
			treeCommand(streams),
			metadataCommand(streams),
			versionCommand(streams),
		},
		Examples: []cli.Example{
			{
				Description: "Encode a JSON fixture as an XML request body",
				Command:     "netcodec encode request.json",
			},
			{
				Description: "Decode an XML response",
				Command:     "netcodec decode response.xml",
			},
			{
				Description: "Check a capture round-trips with your tables",
				Command:     "netcodec validate --config netcodec.yaml response.xml.zst",
			},
		},
	}
}
