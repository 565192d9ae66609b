package compdb

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write serializes entries and overwrites the database at path.
//
// The write replaces the whole file. A nil slice is written as an empty
// array, so the database is valid JSON after every invocation even when
// the previous file was corrupt.
func Write(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling database: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}

	return nil
}
