package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the tool's own outcomes. On the happy path the tool
// adopts the wrapped subprocess's exit code instead.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // logging failed, or a subprocess exit code could not be determined
	ExitCommandError = 2 // usage errors, missing prerequisites
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI entry
// points.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// RelayedExit adopts a subprocess's exit code as the tool's own. It is
// not a failure of the tool, so nothing is printed for it: the
// subprocess owned the terminal and has already said what it had to say.
type RelayedExit struct {
	Code int
}

func (e *RelayedExit) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) for errors that carry no code of their own.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var relayed *RelayedExit
	if errors.As(err, &relayed) {
		return relayed.Code
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsRelayedExit returns true if the error only propagates a subprocess
// exit code. Uses errors.As to handle wrapped errors.
func IsRelayedExit(err error) bool {
	var relayed *RelayedExit
	return errors.As(err, &relayed)
}
