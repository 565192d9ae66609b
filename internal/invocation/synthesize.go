package invocation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/makecdb/internal/compdb"
)

// headerCompanions maps each recognized source extension to the header
// extensions a companion header may use. Matching is case-sensitive:
// the legacy capital .C extension is C++ and pairs with capital .H.
var headerCompanions = map[string][]string{
	".c":   {".h"},
	".cc":  {".h", ".hh"},
	".cpp": {".h", ".hpp"},
	".C":   {".h", ".H"},
}

// Synthesizer produces database entries from filtered compiler argument
// vectors. The extension tables are carried as explicit state rather than
// package globals so variants can be constructed in tests.
type Synthesizer struct {
	companions map[string][]string
}

// NewSynthesizer creates a Synthesizer with the default extension tables.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{companions: headerCompanions}
}

// Entries scans a filtered argument vector for source files and returns
// one entry per source plus synthetic entries for companion headers that
// exist on disk. dir is the working directory the compiler was invoked
// in; it becomes each entry's directory and anchors relative header
// lookups.
//
// Each synthetic entry's command is the source's command with the header
// path substituted for the source argument, so analysis tooling treats a
// standalone header as if it were compiled with its companion's flags.
//
// Invocations with no source argument (link steps, flag-only queries)
// produce no entries. Multiple source arguments each produce their own
// primary and header entries, in argument order.
func (s *Synthesizer) Entries(args []string, dir string) []compdb.Entry {
	var entries []compdb.Entry
	for i := 1; i < len(args); i++ {
		ext := filepath.Ext(args[i])
		headerExts, ok := s.companions[ext]
		if !ok {
			continue
		}

		source := args[i]
		entries = append(entries, compdb.NewEntry(dir, args, source))

		stem := strings.TrimSuffix(source, ext)
		for _, headerExt := range headerExts {
			header := stem + headerExt
			if !fileExists(dir, header) {
				continue
			}

			synthetic := make([]string, len(args))
			copy(synthetic, args)
			synthetic[i] = header
			entries = append(entries, compdb.NewEntry(dir, synthetic, header))
		}
	}
	return entries
}

// fileExists reports whether path names an existing regular file,
// resolving relative paths against dir.
func fileExists(dir, path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
