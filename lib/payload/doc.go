// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload reads and writes captured request and response
// bodies, which operators often keep compressed. A capture is a raw
// wire payload, optionally wrapped in a zstd frame or an LZ4 frame.
//
// [Detect] identifies the wrapping from the frame magic number, so
// [Decompress] needs no out-of-band tag: plain JSON and XML can never
// start with either magic sequence. [Compress] produces frames that
// standard zstd and lz4 command-line tools also read.
package payload
