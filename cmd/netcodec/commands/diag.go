// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
)

type diagParams struct {
	commonParams
	inputParams
	Fingerprint bool `json:"fingerprint" flag:"fingerprint" desc:"also print the value's BLAKE3 fingerprint"`
}

func diagCommand(streams Streams) *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Print the decoded value in CBOR diagnostic notation",
		Description: `Decode a body and print its value as the diagnostic notation of the
value's deterministic CBOR snapshot (RFC 8949 section 8).

Unlike JSON, diagnostic notation keeps every type distinction the codec
makes: 1 is an int, 1.0 a float, and a long integer appears as a tagged
number, 1668182380(5).`,
		Usage: "netcodec diag [--from xml|json] [--fingerprint] [file]",
		Examples: []cli.Example{
			{
				Description: "Check which numbers in a response decoded as long",
				Command:     "netcodec diag response.xml",
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

			snapshot, err := codec.MarshalSnapshot(v)
			if err != nil {
				return cli.Internal("snapshot: %w", err)
			}
			notation, err := codec.Diagnose(snapshot)
			if err != nil {
				return cli.Internal("diagnose snapshot: %w", err)
			}
			fmt.Fprintln(streams.Out, notation)

			if params.Fingerprint {
				fingerprint, err := codec.FingerprintOf(v)
				if err != nil {
					return cli.Internal("fingerprint: %w", err)
				}
				fmt.Fprintf(streams.Out, "fingerprint %s\n", fingerprint)
			}
			return nil
		},
	}
}
