package cli

import "fmt"

// Mode is the operating mode decided once at startup from the raw
// argument vector. Exactly one variant applies per process; everything
// after the decision is statically typed on it.
type Mode interface {
	mode()
}

// DriverMode wraps the build orchestrator. All arguments pass through to
// it untouched.
type DriverMode struct {
	MakeArgs []string
}

// WrapperMode stands in for a compiler: log the invocation, then run the
// real compiler.
type WrapperMode struct {
	ScratchDir string
	Compiler   string
	Args       []string
}

// HelpMode prints usage text; no side effects.
type HelpMode struct{}

func (DriverMode) mode()  {}
func (WrapperMode) mode() {}
func (HelpMode) mode()    {}

// ParseMode classifies a raw argument vector (without argument 0).
//
// The flag namespace belongs to the orchestrator: only a leading --log
// or --help is interpreted. Anything else, including an empty vector,
// is a driver invocation and forwards verbatim. Even -h forwards, since
// the orchestrator may define it.
func ParseMode(args []string) (Mode, error) {
	if len(args) == 0 {
		return DriverMode{}, nil
	}

	switch args[0] {
	case "--help":
		return HelpMode{}, nil
	case "--log":
		if len(args) < 3 {
			return nil, fmt.Errorf("--log requires a scratch directory and a compiler path")
		}
		return WrapperMode{ScratchDir: args[1], Compiler: args[2], Args: args[3:]}, nil
	}

	return DriverMode{MakeArgs: args}, nil
}
