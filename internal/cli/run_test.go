package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver mode is exercised in the build package, where the orchestrator
// and working directory are controlled. These tests cover the argument
// classification and exit code plumbing around it.

func TestRun_Help(t *testing.T) {
	code := Run([]string{"--help"})
	assert.Equal(t, ExitSuccess, code)
}

func TestRun_LogUsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no operands", args: []string{"--log"}},
		{name: "missing compiler", args: []string{"--log", "/tmp/scratch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := Run(tt.args)
			assert.Equal(t, ExitCommandError, code)
		})
	}
}

func TestRun_WrapperRecordsAndRelays(t *testing.T) {
	truePath, err := exec.LookPath("true")
	require.NoError(t, err)
	scratch := t.TempDir()

	code := Run([]string{"--log", scratch, truePath, "-c", "main.c"})
	assert.Equal(t, ExitSuccess, code)

	names, err := os.ReadDir(scratch)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.True(t, strings.HasPrefix(names[0].Name(), "main.c."))
	assert.True(t, strings.HasSuffix(names[0].Name(), ".json"))
}

func TestRun_WrapperRelaysFailure(t *testing.T) {
	falsePath, err := exec.LookPath("false")
	require.NoError(t, err)
	scratch := t.TempDir()

	code := Run([]string{"--log", scratch, falsePath, "-c", "main.c"})
	assert.Equal(t, 1, code)
}

func TestRun_WrapperMissingCompiler(t *testing.T) {
	scratch := t.TempDir()
	missing := filepath.Join(t.TempDir(), "no-such-compiler")

	code := Run([]string{"--log", scratch, missing})
	assert.Equal(t, ExitFailure, code)
}
