package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/makecdb/internal/compdb"
)

// Default executable names resolved on the search path at driver startup.
const (
	DefaultOrchestrator = "make"
	DefaultCC           = "cc"
	DefaultCXX          = "c++"
)

// Config carries everything a driver run depends on. All values are
// explicit so runs are reproducible and components stay independently
// testable; nothing reads ambient process state after construction.
type Config struct {
	// DatabasePath locates the persistent compilation database.
	DatabasePath string

	// WorkDir is the build's working directory. It seeds the scratch
	// directory derivation and becomes each entry's directory.
	WorkDir string

	// TempRoot hosts the per-build scratch directory.
	TempRoot string

	// WrapperPath is the executable substituted for the compilers.
	WrapperPath string

	// Orchestrator, CC, and CXX name the executables to locate on the
	// search path.
	Orchestrator string
	CC           string
	CXX          string

	// Env is the base environment for the orchestrator; the compiler
	// overrides are appended to it.
	Env []string
}

// DefaultConfig resolves a config from the current process state: the
// working directory, this executable's path, the system temp directory,
// and the process environment.
func DefaultConfig() (Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}

	wrapper, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("resolving wrapper executable: %w", err)
	}

	return Config{
		DatabasePath: filepath.Join(workDir, compdb.DefaultFilename),
		WorkDir:      workDir,
		TempRoot:     os.TempDir(),
		WrapperPath:  wrapper,
		Orchestrator: DefaultOrchestrator,
		CC:           DefaultCC,
		CXX:          DefaultCXX,
		Env:          os.Environ(),
	}, nil
}
