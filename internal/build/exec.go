package build

import (
	"errors"
	"os"
	"os/exec"
)

// Relay runs an executable with the caller's standard streams attached
// and reports its exit code.
//
// The happy path returns the subprocess's own code, zero or not, with a
// nil error: a failing compile is a result to propagate, not a failure
// of the relay. A non-nil error means no exit code could be determined
// (the process failed to start or could not be waited on); the returned
// code is then 1.
func Relay(path string, args []string, env []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return 1, err
}
