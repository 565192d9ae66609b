package scratch

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// dirDomain separates the scratch-path hash from any other use of the
// working directory's bytes. Version suffix enables future migration.
const dirDomain = "makecdb/scratch/v1"

// dirPrefix namespaces scratch directories under the temp root.
const dirPrefix = "makecdb-"

// DirFor derives the scratch directory for a build rooted at workDir.
//
// Format: tempRoot/makecdb-<first 16 hex digits of SHA256(domain + 0x00 +
// workDir)>. The path depends only on workDir, never on time or process
// identity. Sixteen digits keep the name short while separating
// checkouts.
func DirFor(tempRoot, workDir string) string {
	h := sha256.New()
	h.Write([]byte(dirDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(workDir))
	digest := hex.EncodeToString(h.Sum(nil))
	return filepath.Join(tempRoot, dirPrefix+digest[:16])
}
