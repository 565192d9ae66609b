package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/makecdb/internal/build"
)

// VerboseEnv switches diagnostic logging to debug level. An environment
// variable rather than a flag: the whole argument vector is forwarded to
// make, so there is no flag namespace left for this tool.
const VerboseEnv = "MAKECDB_VERBOSE"

// Run executes the tool with the given raw arguments (without argument
// 0) and returns the process exit code.
func Run(args []string) int {
	setupLogging(os.Getenv(VerboseEnv) != "")

	cmd := NewRootCommand()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if IsRelayedExit(err) {
			return GetExitCode(err)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// setupLogging routes diagnostics to stderr; stdout belongs to the
// wrapped subprocesses. The default level is Warn so a clean build adds
// nothing to make's output.
func setupLogging(verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// Dispatch routes a parsed mode to its entry point.
func Dispatch(cmd *cobra.Command, mode Mode) error {
	switch m := mode.(type) {
	case HelpMode:
		return cmd.Help()
	case WrapperMode:
		return runWrapper(m)
	case DriverMode:
		return runDriver(m)
	default:
		return NewExitError(ExitCommandError, "unrecognized mode")
	}
}

// runDriver wraps one build: orchestrator, merge, cleanup.
func runDriver(m DriverMode) error {
	cfg, err := build.DefaultConfig()
	if err != nil {
		return WrapExitError(ExitCommandError, "resolving configuration", err)
	}

	code, err := build.NewDriver(cfg).Run(m.MakeArgs)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot start build", err)
	}
	if code != ExitSuccess {
		return &RelayedExit{Code: code}
	}
	return nil
}

// runWrapper handles one logging-mode invocation on behalf of a compiler.
func runWrapper(m WrapperMode) error {
	workDir, err := os.Getwd()
	if err != nil {
		return WrapExitError(ExitFailure, "resolving working directory", err)
	}

	code, err := build.NewWrapper(workDir, os.Environ()).Run(m.ScratchDir, m.Compiler, m.Args)
	if err != nil {
		return WrapExitError(ExitFailure, "compiler wrapper", err)
	}
	if code != ExitSuccess {
		return &RelayedExit{Code: code}
	}
	return nil
}
