package scratch

import (
	"sync/atomic"
	"time"
)

// TokenSource yields monotonically distinct tokens for record names.
// Two calls never return the same token.
type TokenSource interface {
	Next() int64
}

// SystemClock issues nanosecond wall-clock tokens. When the wall clock
// has not advanced past the previous token, the token is bumped past it
// instead, so a single process never reuses a token even under rapid
// successive calls.
type SystemClock struct {
	last atomic.Int64
}

// NewSystemClock creates a clock seeded from the wall clock on first use.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Next returns the next token.
//
// Thread-safe: lock-free via compare-and-swap on the last issued token.
func (c *SystemClock) Next() int64 {
	for {
		last := c.last.Load()
		token := time.Now().UnixNano()
		if token <= last {
			token = last + 1
		}
		if c.last.CompareAndSwap(last, token) {
			return token
		}
	}
}
