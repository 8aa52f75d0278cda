// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command netcodec encodes, decodes and inspects networking API
// bodies in XML and JSON. Run "netcodec --help" for usage.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/netcodec/cmd/netcodec/cli"
	"github.com/bureau-foundation/netcodec/cmd/netcodec/commands"
)

func main() {
	err := commands.Root(commands.StandardStreams()).Execute(os.Args[1:])
	code, report := cli.ExitStatus(err)
	if report {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}
