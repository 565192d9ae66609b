package compdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the database at path.
//
// A missing file is an empty database, not an error. Unreadable or
// malformed content is reported to the caller, which decides whether to
// start over from empty.
//
// Returns an empty slice (not nil) for an absent database.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}
