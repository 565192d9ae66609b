package scratch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/makecdb/internal/compdb"
)

// recordExt marks record files written by the wrapper.
const recordExt = ".json"

// WriteAll persists one record file per entry into dir.
//
// Record names combine the entry's sanitized file path with a fresh token
// from tokens, so concurrent wrapper processes logging the same file never
// overwrite each other. Any write failure is fatal for the invocation:
// a compile whose record is lost must not run.
func WriteAll(dir string, entries []compdb.Entry, tokens TokenSource) error {
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshaling record for %s: %w", e.File, err)
		}

		name := recordName(e.File, tokens.Next())
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("writing record %s: %w", name, err)
		}
	}
	return nil
}

// ReadAll parses every record file in dir, in directory listing order.
//
// Malformed or unreadable records are skipped with a warning so one bad
// write cannot block the merge of the rest. Listing order is whatever
// os.ReadDir yields (lexical by name); when two records name the same
// file path, the merge keeps the later one in this order.
func ReadAll(dir string) ([]compdb.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing scratch directory: %w", err)
	}

	entries := make([]compdb.Entry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}

		path := filepath.Join(dir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable record", "record", de.Name(), "error", err)
			continue
		}

		var e compdb.Entry
		if err := json.Unmarshal(data, &e); err != nil {
			slog.Warn("skipping malformed record", "record", de.Name(), "error", err)
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// recordName builds a unique record filename for a file path.
//
// Path separators collapse to underscores so the name stays a single
// path component; NFC normalization keeps the slug stable across
// differently-composed spellings of the same path. The token suffix
// distinguishes concurrent writers for the same path.
func recordName(file string, token int64) string {
	slug := norm.NFC.String(file)
	slug = strings.ReplaceAll(slug, string(filepath.Separator), "_")
	slug = strings.ReplaceAll(slug, "/", "_")
	return slug + "." + strconv.FormatInt(token, 10) + recordExt
}
