package cmd

import (
	"context"
	goerrors "errors"
	"os/exec"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

// ExitCode maps an error from Run to a process exit status. A tool's own
// non-zero status is passed through unchanged.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if goerrors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	if goerrors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return exitFailure
}
