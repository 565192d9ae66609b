package build

import (
	"errors"
	"fmt"
)

// MissingExecutableError reports a required executable absent from the
// search path. The driver fails fast on it before any build work starts.
type MissingExecutableError struct {
	// Name is the executable as configured (e.g. "make", "cc").
	Name string

	// Err is the underlying lookup error.
	Err error
}

// Error implements the error interface.
func (e *MissingExecutableError) Error() string {
	return fmt.Sprintf("required executable %q not found on PATH", e.Name)
}

func (e *MissingExecutableError) Unwrap() error { return e.Err }

// IsMissingExecutable returns true if the error reports an executable
// missing from the search path. Uses errors.As to handle wrapped errors.
func IsMissingExecutable(err error) bool {
	var me *MissingExecutableError
	return errors.As(err, &me)
}
