package harness

import "github.com/roach88/makecdb/internal/compdb"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if all assertions hold against the final database.
	Pass bool `json:"pass"`

	// Database holds the final compilation database entries in file order.
	Database []compdb.Entry `json:"database"`

	// Raw holds the exact bytes of the final database file, or nil if
	// the scenario never produced one.
	Raw []byte `json:"-"`

	// Workspace is the directory the scenario ran in. The directory is
	// removed after the run; the path is kept for snapshot rewriting.
	Workspace string `json:"-"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
