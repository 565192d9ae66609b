package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a merge conformance scenario.
// Scenarios feed observed compiler invocations through the logging and
// merge pipeline and assert on the resulting database.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Tree lists source files to create in the scenario workspace.
	// Paths are relative to the workspace. Files are created empty;
	// header inference only checks that they exist.
	Tree []string `yaml:"tree,omitempty"`

	// Database holds the initial compilation database entries.
	// If empty, the scenario starts without a database file.
	Database []DatabaseEntry `yaml:"database,omitempty"`

	// Builds lists the builds to run in order. Each build's records are
	// merged into the database before the next build starts.
	Builds []Build `yaml:"builds"`

	// Assertions validate the final database.
	// Supported types: entry_count, contains_entry, entry_order,
	// unique_files, command_one_of.
	Assertions []Assertion `yaml:"assertions"`
}

// Build is one orchestrator run: the compiler invocations observed
// during it, in the order they were issued.
type Build struct {
	// Invocations holds one argument vector per compiler invocation,
	// including argument 0. An empty list models a build in which
	// nothing was recompiled.
	Invocations [][]string `yaml:"invocations"`
}

// DatabaseEntry is a compilation database entry as written in scenario
// YAML. Unlike the wire format, the directory may be omitted.
type DatabaseEntry struct {
	// Directory is the compile working directory.
	// Empty means the scenario workspace.
	Directory string `yaml:"directory,omitempty"`

	// Command is the space-joined compile command.
	Command string `yaml:"command"`

	// File is the translation unit path.
	File string `yaml:"file"`
}

// Assertion validates the final database.
type Assertion struct {
	// Type specifies the assertion type:
	// - "entry_count": the database holds exactly Count entries
	// - "contains_entry": an entry for File exists (with Command, if set)
	// - "entry_order": entries for Files appear in the given order
	// - "unique_files": no file path appears in more than one entry
	// - "command_one_of": File's entry carries one of Commands
	Type string `yaml:"type"`

	// File is the entry's file path (used by contains_entry,
	// command_one_of, and optionally entry_count to narrow the count).
	File string `yaml:"file,omitempty"`

	// Command is the expected exact command (used by contains_entry).
	// Empty means any command for the file is accepted.
	Command string `yaml:"command,omitempty"`

	// Commands are the candidate commands (used by command_one_of).
	Commands []string `yaml:"commands,omitempty"`

	// Files is the expected relative entry order (used by entry_order).
	Files []string `yaml:"files,omitempty"`

	// Count is the expected number of entries (used by entry_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertEntryCount    = "entry_count"
	AssertContainsEntry = "contains_entry"
	AssertEntryOrder    = "entry_order"
	AssertUniqueFiles   = "unique_files"
	AssertCommandOneOf  = "command_one_of"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Builds) == 0 {
		return fmt.Errorf("builds list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, path := range s.Tree {
		if path == "" {
			return fmt.Errorf("tree[%d]: path must not be empty", i)
		}
		if filepath.IsAbs(path) {
			return fmt.Errorf("tree[%d]: path must be relative to the workspace", i)
		}
	}

	for i, entry := range s.Database {
		if entry.Command == "" {
			return fmt.Errorf("database[%d]: command is required", i)
		}
		if entry.File == "" {
			return fmt.Errorf("database[%d]: file is required", i)
		}
	}

	for i, b := range s.Builds {
		for j, argv := range b.Invocations {
			if len(argv) == 0 {
				return fmt.Errorf("builds[%d].invocations[%d]: argument vector must not be empty", i, j)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertEntryCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for entry_count", index)
		}
	case AssertContainsEntry:
		if a.File == "" {
			return fmt.Errorf("assertions[%d]: file is required for contains_entry", index)
		}
	case AssertEntryOrder:
		if len(a.Files) == 0 {
			return fmt.Errorf("assertions[%d]: files list is required for entry_order", index)
		}
	case AssertUniqueFiles:
		// No operands.
	case AssertCommandOneOf:
		if a.File == "" {
			return fmt.Errorf("assertions[%d]: file is required for command_one_of", index)
		}
		if len(a.Commands) == 0 {
			return fmt.Errorf("assertions[%d]: commands list is required for command_one_of", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
