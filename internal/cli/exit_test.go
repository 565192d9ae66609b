package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "exit error carries its code",
			err:  NewExitError(ExitCommandError, "bad usage"),
			want: ExitCommandError,
		},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "bad usage")),
			want: ExitCommandError,
		},
		{
			name: "relayed exit carries the subprocess code",
			err:  &RelayedExit{Code: 7},
			want: 7,
		},
		{
			name: "plain error defaults to failure",
			err:  errors.New("boom"),
			want: ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestIsRelayedExit(t *testing.T) {
	assert.True(t, IsRelayedExit(&RelayedExit{Code: 2}))
	assert.True(t, IsRelayedExit(fmt.Errorf("wrapped: %w", &RelayedExit{Code: 2})))
	assert.False(t, IsRelayedExit(errors.New("boom")))
	assert.False(t, IsRelayedExit(nil))
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapExitError(ExitFailure, "context", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "context")
	assert.Contains(t, err.Error(), "underlying")
}

func TestRelayedExit_Error(t *testing.T) {
	err := &RelayedExit{Code: 42}
	assert.Equal(t, "exit status 42", err.Error())
}
