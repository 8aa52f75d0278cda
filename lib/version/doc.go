// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the netcodec binary.
//
// [GitCommit], [GitDirty], [BuildTime] and [Version] are injected with
// -ldflags -X. When they are not, [Info] falls back to the VCS
// settings the Go toolchain embeds in the binary, so plain `go build`
// and `go install` output still names a commit.
package version
