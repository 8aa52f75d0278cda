// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the netcodec command tree.
//
// Every command reads one body, from a file argument or stdin, after
// undoing lz4 or zstd compression detected by magic bytes. The input
// format comes from --from, or is sniffed: a document whose first
// significant byte is '<' is XML, anything else JSON. Configuration
// ($NETCODEC_CONFIG or --config) supplies the metadata tables and the
// output defaults.
package commands
