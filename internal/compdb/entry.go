package compdb

import "strings"

// DefaultFilename is the database filename consumed by source-analysis
// tooling, resolved relative to the build's working directory.
const DefaultFilename = "compile_commands.json"

// Entry records how one file is compiled: the working directory the
// compiler ran in, the full command line, and the file the command
// compiles. File paths are recorded exactly as they appeared in the
// argument vector; no normalization is applied, so dedup compares them
// as plain strings.
type Entry struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

// NewEntry builds an entry from an argument vector. The vector is joined
// with single spaces; no shell quoting is introduced.
func NewEntry(dir string, args []string, file string) Entry {
	return Entry{
		Directory: dir,
		Command:   strings.Join(args, " "),
		File:      file,
	}
}
