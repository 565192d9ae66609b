package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/makecdb/internal/compdb"
)

// AssertionError is returned when an assertion fails.
// It includes the final database to help debug the failure.
type AssertionError struct {
	Type     string         // Assertion type for categorization
	Expected string         // Human-readable expected outcome
	Actual   string         // Human-readable actual outcome
	Database []compdb.Entry // Final database for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFinal database:\n")
	for i, entry := range e.Database {
		fmt.Fprintf(&buf, "  [%d] %s: %s\n", i+1, entry.File, entry.Command)
	}

	return buf.String()
}

// assertEntryCount checks the database holds exactly the expected number
// of entries. With a file set, only entries for that file are counted.
func assertEntryCount(db []compdb.Entry, assertion Assertion) error {
	count := 0
	for _, entry := range db {
		if assertion.File == "" || entry.File == assertion.File {
			count++
		}
	}

	if count != assertion.Count {
		subject := "entries"
		if assertion.File != "" {
			subject = fmt.Sprintf("entries for %s", assertion.File)
		}
		return &AssertionError{
			Type:     AssertEntryCount,
			Expected: fmt.Sprintf("%d %s", assertion.Count, subject),
			Actual:   fmt.Sprintf("%d %s", count, subject),
			Database: db,
		}
	}

	return nil
}

// assertContainsEntry checks the database contains an entry for the
// file, with the exact command when one is specified.
func assertContainsEntry(db []compdb.Entry, assertion Assertion) error {
	for _, entry := range db {
		if entry.File != assertion.File {
			continue
		}
		if assertion.Command == "" || entry.Command == assertion.Command {
			return nil
		}
	}

	expected := fmt.Sprintf("entry for %s", assertion.File)
	if assertion.Command != "" {
		expected = fmt.Sprintf("entry for %s with command %q", assertion.File, assertion.Command)
	}
	return &AssertionError{
		Type:     AssertContainsEntry,
		Expected: expected,
		Actual:   "not found in database",
		Database: db,
	}
}

// assertEntryOrder checks the files appear in the database in the given
// relative order. Other entries may appear between them.
func assertEntryOrder(db []compdb.Entry, assertion Assertion) error {
	// Step 1: Find first position of each expected file
	positions := make(map[string]int)

	for i, entry := range db {
		for _, file := range assertion.Files {
			if entry.File == file && positions[file] == 0 {
				positions[file] = i + 1 // 1-indexed for readability
			}
		}
	}

	// Step 2: Verify all files found
	for _, file := range assertion.Files {
		if positions[file] == 0 {
			return &AssertionError{
				Type:     AssertEntryOrder,
				Expected: fmt.Sprintf("all files present: %v", assertion.Files),
				Actual:   fmt.Sprintf("missing entry for %s", file),
				Database: db,
			}
		}
	}

	// Step 3: Verify order
	for i := 1; i < len(assertion.Files); i++ {
		prev := assertion.Files[i-1]
		curr := assertion.Files[i]

		if positions[prev] >= positions[curr] {
			return &AssertionError{
				Type:     AssertEntryOrder,
				Expected: fmt.Sprintf("files in order: %v", assertion.Files),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, positions[prev], curr, positions[curr]),
				Database: db,
			}
		}
	}

	return nil
}

// assertUniqueFiles checks no file path appears in more than one entry.
func assertUniqueFiles(db []compdb.Entry, assertion Assertion) error {
	seen := make(map[string]int)
	for _, entry := range db {
		seen[entry.File]++
	}

	// Report the first duplicate in database order for determinism.
	for _, entry := range db {
		if seen[entry.File] > 1 {
			return &AssertionError{
				Type:     AssertUniqueFiles,
				Expected: "every file path appears in exactly one entry",
				Actual:   fmt.Sprintf("%d entries for %s", seen[entry.File], entry.File),
				Database: db,
			}
		}
	}

	return nil
}

// assertCommandOneOf checks the entry for the file carries one of the
// listed commands. Useful when concurrent recompiles of one file make
// the surviving command a race, while the set of candidates is fixed.
func assertCommandOneOf(db []compdb.Entry, assertion Assertion) error {
	for _, entry := range db {
		if entry.File != assertion.File {
			continue
		}
		for _, cmd := range assertion.Commands {
			if entry.Command == cmd {
				return nil
			}
		}
		return &AssertionError{
			Type:     AssertCommandOneOf,
			Expected: fmt.Sprintf("entry for %s with one of %d candidate commands", assertion.File, len(assertion.Commands)),
			Actual:   fmt.Sprintf("command %q", entry.Command),
			Database: db,
		}
	}

	return &AssertionError{
		Type:     AssertCommandOneOf,
		Expected: fmt.Sprintf("entry for %s", assertion.File),
		Actual:   "not found in database",
		Database: db,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertEntryCount:
			err = assertEntryCount(result.Database, assertion)
		case AssertContainsEntry:
			err = assertContainsEntry(result.Database, assertion)
		case AssertEntryOrder:
			err = assertEntryOrder(result.Database, assertion)
		case AssertUniqueFiles:
			err = assertUniqueFiles(result.Database, assertion)
		case AssertCommandOneOf:
			err = assertCommandOneOf(result.Database, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
