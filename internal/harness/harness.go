package harness

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roach88/makecdb/internal/compdb"
	"github.com/roach88/makecdb/internal/invocation"
	"github.com/roach88/makecdb/internal/scratch"
	"github.com/roach88/makecdb/internal/testutil"
)

// Harness executes one scenario in an isolated workspace.
// It runs the logging and merge stages with a deterministic clock so
// record names, and therefore merge order, are reproducible.
type Harness struct {
	workspace string
	dbPath    string
	clock     *testutil.DeterministicClock
	synth     *invocation.Synthesizer
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh temporary workspace for isolation.
//
// Execution flow:
//  1. Create the workspace and the declared source tree
//  2. Write the initial database, if the scenario declares one
//  3. For each build, log every invocation and merge the records
//  4. Evaluate assertions against the final database
func Run(scenario *Scenario) (*Result, error) {
	workspace, err := os.MkdirTemp("", "makecdb-harness-")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	defer os.RemoveAll(workspace)

	h := &Harness{
		workspace: workspace,
		dbPath:    filepath.Join(workspace, compdb.DefaultFilename),
		clock:     testutil.NewDeterministicClock(),
		synth:     invocation.NewSynthesizer(),
	}

	if err := h.createTree(scenario.Tree); err != nil {
		return nil, err
	}
	if err := h.seedDatabase(scenario.Database); err != nil {
		return nil, err
	}

	for i, b := range scenario.Builds {
		if err := h.runBuild(i, b); err != nil {
			return nil, err
		}
	}

	result := NewResult()
	result.Workspace = workspace

	result.Database, err = compdb.Load(h.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read final database: %w", err)
	}
	raw, err := os.ReadFile(h.dbPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read final database: %w", err)
	}
	result.Raw = raw

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}

// createTree creates the scenario's source files under the workspace.
// Contents do not matter; header inference only checks existence.
func (h *Harness) createTree(paths []string) error {
	for _, rel := range paths {
		path := filepath.Join(h.workspace, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create tree directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return fmt.Errorf("failed to create tree file %s: %w", rel, err)
		}
	}
	return nil
}

// seedDatabase writes the scenario's initial database. Entries with no
// directory default to the workspace, the directory the builds run in.
func (h *Harness) seedDatabase(entries []DatabaseEntry) error {
	if len(entries) == 0 {
		return nil
	}

	seed := make([]compdb.Entry, len(entries))
	for i, e := range entries {
		dir := e.Directory
		if dir == "" {
			dir = h.workspace
		}
		seed[i] = compdb.Entry{Directory: dir, Command: e.Command, File: e.File}
	}

	if err := compdb.Write(h.dbPath, seed); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// runBuild logs every invocation of one build into a fresh scratch
// directory and merges the records, the way the driver does after the
// orchestrator exits.
func (h *Harness) runBuild(index int, b Build) error {
	scratchDir, err := os.MkdirTemp(h.workspace, "scratch-")
	if err != nil {
		return fmt.Errorf("build %d: failed to create scratch directory: %w", index, err)
	}

	for _, argv := range b.Invocations {
		entries := h.synth.Entries(invocation.FilterArgs(argv), h.workspace)
		if err := scratch.WriteAll(scratchDir, entries, h.clock); err != nil {
			return fmt.Errorf("build %d: failed to log invocation: %w", index, err)
		}
	}

	batch, err := scratch.ReadAll(scratchDir)
	if err != nil {
		return fmt.Errorf("build %d: failed to read records: %w", index, err)
	}
	existing, err := compdb.Load(h.dbPath)
	if err != nil {
		return fmt.Errorf("build %d: failed to load database: %w", index, err)
	}
	if err := compdb.Write(h.dbPath, compdb.Merge(existing, batch)); err != nil {
		return fmt.Errorf("build %d: failed to write database: %w", index, err)
	}

	if err := os.RemoveAll(scratchDir); err != nil {
		return fmt.Errorf("build %d: failed to remove scratch directory: %w", index, err)
	}
	return nil
}
