// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the netcodec binary.
//
// A [Command] tree dispatches on the first positional argument, binds
// flags from struct tags on a params struct ([FlagsFromParams]), and
// prints structured help with examples. Unknown commands and flags get
// an edit-distance suggestion.
//
// Commands return errors; main decides how to report them. A
// [ToolError] carries a category that selects the exit status, and an
// [ExitError] exits non-zero without printing anything further.
package cli
