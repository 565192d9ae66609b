package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the makecdb CLI.
//
// Flag parsing is disabled: in driver mode the argument vector belongs
// to make, in logging mode to the compiler. The command classifies the
// raw vector itself and dispatches on the result.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "makecdb [make-args...]",
		Short: "make wrapper that maintains a compilation database",
		Long: `makecdb wraps make to maintain compile_commands.json.

Run it exactly as you would run make; every argument is forwarded. The
build runs with CC and CXX redirected through this tool's logging mode,
and each observed compiler invocation is recorded. When make exits, the
records are merged into compile_commands.json in the current directory:
entries for recompiled files are replaced, entries for untouched files
are preserved. The exit code is make's own.

Logging mode (invoked by make's build rules, not by hand):
  makecdb --log <scratch-dir> <compiler> [compiler-args...]

Set ` + VerboseEnv + ` to any value for debug diagnostics on stderr.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ParseMode(args)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return Dispatch(cmd, mode)
		},
	}

	return cmd
}
