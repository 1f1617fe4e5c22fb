package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the statforge CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates the record validated (possibly after repair)
	ExitSuccess = 0

	// ExitValidationFailed indicates the record was still invalid when
	// attempts ran out
	ExitValidationFailed = 1

	// ExitBackendFailure indicates a repair backend transport failure
	ExitBackendFailure = 2

	// ExitInvalidArguments indicates invalid command arguments or input
	ExitInvalidArguments = 3
)

// exitError carries an explicit exit code through the Cobra error path.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode implements the coded-error contract.
func (e *exitError) ExitCode() int { return e.code }

// NewExitError wraps err with an explicit exit code.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code for an error: 0 for nil, the error's own
// code when it implements ExitCode() int, otherwise ExitInvalidArguments.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitInvalidArguments
}
