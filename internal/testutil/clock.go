// Package testutil provides deterministic token sources for tests, so
// scratch record names and the golden files derived from them are
// reproducible byte for byte.
package testutil

import "sync/atomic"

// DeterministicClock issues consecutive integer tokens starting at 1.
//
// scratch.SystemClock derives tokens from the wall clock, which keeps
// record names unique but different on every run. Tests substitute this
// clock so a scenario always produces the same record names, and
// therefore the same merge order.
type DeterministicClock struct {
	seq atomic.Int64
}

// NewDeterministicClock creates a clock whose first token is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next returns the next token. Safe for concurrent use.
func (c *DeterministicClock) Next() int64 {
	return c.seq.Add(1)
}
