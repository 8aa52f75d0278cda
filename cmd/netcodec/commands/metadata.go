// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/metadata"
)

type metadataParams struct {
	commonParams
	inputParams
}

func metadataCommand(streams Streams) *cli.Command {
	var params metadataParams

	return &cli.Command{
		Name:    "metadata",
		Summary: "Print the effective metadata tables as YAML",
		Description: `Print the tables the codec uses for XML: the default namespace,
plural tags, attribute keys and extension namespaces, after merging the
built-in tables, the configuration and its extension files.

Given a saved "list extensions" response (XML or JSON), the extension
namespaces it declares are merged in as well, so the output can be
pasted into the codec section of a configuration file.`,
		Usage: "netcodec metadata [--config file] [extensions-response]",
		Examples: []cli.Example{
			{
				Description: "Show the built-in tables",
				Command:     "netcodec metadata",
			},
			{
				Description: "Add the namespaces a server advertises",
				Command:     "curl -s $ENDPOINT/v2.0/extensions.json | netcodec metadata -",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			s, err := params.open()
			if err != nil {
				return err
			}
			tables := s.codec.Metadata().Tables()

			if len(args) > 0 {
				if args[0] == "-" {
					args = args[1:]
				}
				response, _, err := readBody(s, params.inputParams, args, streams.In)
				if err != nil {
					return err
				}
				namespaces, err := metadata.ExtensionNamespacesFrom(response)
				if err != nil {
					return cli.Validation("extensions response: %w", err)
				}
				tables = tables.Merge(metadata.Tables{ExtensionNamespaces: namespaces})
				if _, err := metadata.New(tables); err != nil {
					return cli.Validation("merged tables: %w", err)
				}
			}

			encoder := yaml.NewEncoder(streams.Out)
			encoder.SetIndent(2)
			if err := encoder.Encode(tables); err != nil {
				return cli.Internal("encoding tables: %w", err)
			}
			return encoder.Close()
		},
	}
}
