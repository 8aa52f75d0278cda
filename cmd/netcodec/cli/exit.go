// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError exits with Code without printing an error line. The
// command has already written its own output, e.g. validate reporting
// a mismatch.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitStatus returns the process exit status for a command result and
// whether main should print err. Nil is 0.
func ExitStatus(err error) (code int, report bool) {
	if err == nil {
		return 0, false
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.Code, false
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return toolError.ExitCode(), true
	}
	return 1, true
}
