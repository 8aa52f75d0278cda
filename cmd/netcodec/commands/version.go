// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/version"
)

type versionParams struct {
	Full bool `json:"full" flag:"full" desc:"include Go version and platform"`
}

func versionCommand(streams Streams) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("version takes no arguments, got %q", args[0])
			}
			if params.Full {
				fmt.Fprintf(streams.Out, "netcodec %s\n", version.Full())
			} else {
				fmt.Fprintf(streams.Out, "netcodec %s\n", version.Info())
			}
			return nil
		},
	}
}
