package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/makecdb/internal/compdb"
)

// workspacePlaceholder replaces the temporary workspace path in golden
// snapshots, since the workspace is a fresh directory every run.
const workspacePlaceholder = "$WORK"

// DatabaseSnapshot captures the final database for golden comparison.
type DatabaseSnapshot struct {
	ScenarioName string         `json:"scenario_name"`
	Database     []compdb.Entry `json:"database"`
}

// RunWithGolden executes a scenario and compares the final database
// against a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails. Assertion failures and
// golden mismatches are reported through t.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares the given result's database against a golden
// file. This is useful when you've already run a scenario and want to
// compare the result without re-running.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := DatabaseSnapshot{
		ScenarioName: scenarioName,
		Database:     rewriteWorkspace(result.Database, result.Workspace),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}

// rewriteWorkspace substitutes the workspace placeholder into entry
// directories. Entries are copied; the input stays untouched.
func rewriteWorkspace(db []compdb.Entry, workspace string) []compdb.Entry {
	rewritten := make([]compdb.Entry, len(db))
	for i, entry := range db {
		if workspace != "" && strings.HasPrefix(entry.Directory, workspace) {
			entry.Directory = workspacePlaceholder + entry.Directory[len(workspace):]
		}
		rewritten[i] = entry
	}
	return rewritten
}
