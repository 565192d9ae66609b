package build

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/roach88/makecdb/internal/compdb"
	"github.com/roach88/makecdb/internal/scratch"
)

// BuildTokenGenerator produces the identifier that correlates one driver
// run's log lines.
type BuildTokenGenerator interface {
	// Generate returns a new unique build token.
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDs. This is the production
// token source.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Driver orchestrates one wrapped build: locate the executables, run the
// orchestrator with compiler overrides, merge the scratch records into
// the database, clean up.
type Driver struct {
	cfg Config

	// BuildTokens overrides the build token source (for testing).
	BuildTokens BuildTokenGenerator
}

// NewDriver creates a driver for cfg.
func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg, BuildTokens: UUIDv7Generator{}}
}

// Run executes the orchestrator with makeArgs and returns the exit code
// the tool must adopt as its own.
//
// A non-nil error means the build never started (missing executables,
// scratch directory not creatable) and the code is meaningless. Once
// the orchestrator has run, Run always merges and always cleans up, and
// the returned code is the orchestrator's own, or 1 when its exit code
// could not be determined. Merge and cleanup failures are logged but
// never alter that code.
func (d *Driver) Run(makeArgs []string) (int, error) {
	log := slog.With("build", d.BuildTokens.Generate())

	makePath, err := locate(d.cfg.Orchestrator)
	if err != nil {
		return 0, err
	}
	ccPath, err := locate(d.cfg.CC)
	if err != nil {
		return 0, err
	}
	cxxPath, err := locate(d.cfg.CXX)
	if err != nil {
		return 0, err
	}

	scratchDir := scratch.DirFor(d.cfg.TempRoot, d.cfg.WorkDir)
	if err := os.MkdirAll(scratchDir, 0755); err != nil {
		return 0, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.Warn("scratch directory not removed", "dir", scratchDir, "error", err)
		}
	}()

	env := make([]string, 0, len(d.cfg.Env)+2)
	env = append(env, d.cfg.Env...)
	env = append(env,
		"CC="+wrapperCommand(d.cfg.WrapperPath, scratchDir, ccPath),
		"CXX="+wrapperCommand(d.cfg.WrapperPath, scratchDir, cxxPath),
	)

	// Hold interrupts while the orchestrator runs: it owns the terminal
	// and must exit first, so the merge and cleanup below still happen
	// when the user aborts the build.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("orchestrator starting", "path", makePath, "args", makeArgs, "scratch", scratchDir)
	code, runErr := Relay(makePath, makeArgs, env)
	signal.Stop(sigChan)
	if runErr != nil {
		log.Error("orchestrator exit code undetermined", "error", runErr)
	} else {
		log.Info("orchestrator finished", "code", code)
	}

	d.merge(log, scratchDir)

	return code, nil
}

// merge folds the scratch records into the persistent database. It runs
// after every build, successful or not, and never changes the build's
// exit code: a database problem is reported, not allowed to masquerade
// as a compile failure.
func (d *Driver) merge(log *slog.Logger, scratchDir string) {
	batch, err := scratch.ReadAll(scratchDir)
	if err != nil {
		log.Warn("scratch records unreadable, merging nothing", "error", err)
		batch = nil
	}

	existing, err := compdb.Load(d.cfg.DatabasePath)
	if err != nil {
		log.Warn("existing database unreadable, starting empty", "path", d.cfg.DatabasePath, "error", err)
		existing = nil
	}

	merged := compdb.Merge(existing, batch)
	if err := compdb.Write(d.cfg.DatabasePath, merged); err != nil {
		log.Error("database not written", "path", d.cfg.DatabasePath, "error", err)
		return
	}
	log.Info("database merged", "path", d.cfg.DatabasePath, "records", len(batch), "entries", len(merged))
}

// locate resolves an executable name on the search path.
func locate(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &MissingExecutableError{Name: name, Err: err}
	}
	return path, nil
}

// wrapperCommand renders a compiler override handed to the orchestrator:
// the wrapper in logging mode, bound to this build's scratch directory
// and the real compiler. The orchestrator splits the value on spaces, so
// no quoting is applied.
func wrapperCommand(wrapper, scratchDir, compiler string) string {
	return strings.Join([]string{wrapper, "--log", scratchDir, compiler}, " ")
}
