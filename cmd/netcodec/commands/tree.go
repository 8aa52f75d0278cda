// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/render"
)

type treeParams struct {
	commonParams
	inputParams
	Color string `json:"color" flag:"color" desc:"color the tree: auto, always, or never (default from config)"`
}

func treeCommand(streams Streams) *cli.Command {
	var params treeParams

	return &cli.Command{
		Name:    "tree",
		Summary: "Show the decoded value as a tree with wire types",
		Description: `Decode a body and draw its value as a tree. The right-hand column
gives each node's wire type: the quantum:type attribute the XML
encoder would write (bool, int, long, float), "list" or "dict" with an
item count for containers, and "text" or "null" for the rest.`,
		Usage: "netcodec tree [--from xml|json] [file]",
		Examples: []cli.Example{
			{
				Description: "Inspect the shape of a port listing",
				Command:     "netcodec tree ports.xml",
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

			setting := params.Color
			if setting == "" {
				setting = s.config.Output.Color
			}
			color, err := useColor(setting, streams.OutIsTerminal)
			if err != nil {
				return err
			}
			fmt.Fprintln(streams.Out, render.NewTreeRenderer(color).Render(v))
			return nil
		},
	}
}
