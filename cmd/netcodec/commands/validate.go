// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/value"
)

type validateParams struct {
	commonParams
	inputParams
}

func validateCommand(streams Streams) *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that a body survives an encode/decode round trip",
		Description: `Decode a body, encode the value again in the same format, decode
that, and compare. Prints "valid" with the value's fingerprint when the
round trip preserves the value, including integer widths.

A mismatch means the body relies on something the metadata tables do
not describe, for example a list under a tag that is not registered as
a plural. The first difference is printed and the exit status is 1.`,
		Usage: "netcodec validate [--from xml|json] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate a captured response against the configured tables",
				Command:     "netcodec validate --config netcodec.yaml response.xml",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			s, err := params.open()
			if err != nil {
				return err
			}
			v, format, err := readBody(s, params.inputParams, args, streams.In)
			if err != nil {
				return err
			}
			return validateRoundTrip(s, streams, v, format)
		},
	}
}

func validateRoundTrip(s *session, streams Streams, v value.Value, format codec.Format) error {
	encoded, err := s.codec.Serialize(v, format.ContentType())
	if err != nil {
		return cli.Validation("%w", err)
	}
	envelope, err := s.codec.Deserialize(encoded, format.ContentType())
	if err != nil {
		return cli.Internal("decoding re-encoded %s: %w", format, err)
	}
	again, _ := envelope.Get(codec.BodyKey)

	before, err := codec.FingerprintOf(v)
	if err != nil {
		return cli.Internal("fingerprint: %w", err)
	}
	after, err := codec.FingerprintOf(again)
	if err != nil {
		return cli.Internal("fingerprint: %w", err)
	}

	if before == after {
		fmt.Fprintf(streams.Out, "valid %s %s\n", format, before.Short())
		return nil
	}

	fmt.Fprintf(streams.Out, "round trip changed the value (%s -> %s)\n", before.Short(), after.Short())
	if path := value.Diff(v, again); path != "" {
		fmt.Fprintf(streams.Out, "  first difference at %s\n", path)
	} else {
		fmt.Fprintln(streams.Out, "  values are equal except for integer widths")
	}
	return &cli.ExitError{Code: 1}
}
