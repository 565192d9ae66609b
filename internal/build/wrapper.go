package build

import (
	"fmt"
	"log/slog"

	"github.com/roach88/makecdb/internal/invocation"
	"github.com/roach88/makecdb/internal/scratch"
)

// Wrapper is the logging-mode entry point: record what is being
// compiled, then run the real compiler.
type Wrapper struct {
	// WorkDir is the directory the orchestrator invoked the compiler in.
	WorkDir string

	// Env is the environment handed to the real compiler.
	Env []string

	// Tokens names record files (for testing). Defaults to the system
	// clock.
	Tokens scratch.TokenSource

	synth *invocation.Synthesizer
}

// NewWrapper creates a wrapper for one logging invocation.
func NewWrapper(workDir string, env []string) *Wrapper {
	return &Wrapper{
		WorkDir: workDir,
		Env:     env,
		Tokens:  scratch.NewSystemClock(),
		synth:   invocation.NewSynthesizer(),
	}
}

// Run records the invocation into scratchDir and relays the real
// compiler, returning its exit code.
//
// Recording happens first: a compile whose record cannot be written must
// not run, or the database would silently miss it. The compiler receives
// the original arguments unmodified; only the recorded command is
// filtered.
func (w *Wrapper) Run(scratchDir, compiler string, args []string) (int, error) {
	filtered := invocation.FilterArgs(append([]string{compiler}, args...))
	entries := w.synth.Entries(filtered, w.WorkDir)

	if err := scratch.WriteAll(scratchDir, entries, w.Tokens); err != nil {
		return 1, fmt.Errorf("logging invocation: %w", err)
	}
	slog.Debug("invocation logged", "compiler", compiler, "entries", len(entries))

	return Relay(compiler, args, w.Env)
}
