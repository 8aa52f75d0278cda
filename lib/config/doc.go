// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for netcodec.
//
// Configuration is loaded from a single file specified by either the
// NETCODEC_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Without a file, callers use
// [Default], which is the built-in metadata tables and JSON output.
//
// The codec section overlays the built-in metadata tables: plurals,
// attribute keys and extension namespaces named in the file are added
// to (or replace) the defaults. Extension files listed under
// codec.extension_files are JSON with comments (JSONC) and hold either
// additional tables or a saved "list extensions" response, whose
// aliases and namespaces become extension prefixes.
//
// Variable expansion is performed on extension file paths after
// loading: ${HOME}, ${NETCODEC_CONFIG_DIR} (the directory holding the
// config file) and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Codec and Output sections
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Metadata] -- compiles the effective metadata tables
package config
