package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/makecdb/internal/compdb"
	"github.com/roach88/makecdb/internal/scratch"
)

// recordNames logs entries into a fresh directory with the given clock
// and returns the resulting record names in listing order.
func recordNames(t *testing.T, clock scratch.TokenSource, entries []compdb.Entry) []string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, scratch.WriteAll(dir, entries, clock))

	dirents, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, len(dirents))
	for i, de := range dirents {
		names[i] = de.Name()
	}
	return names
}

func TestDeterministicClock_TokensStartAtOne(t *testing.T) {
	clock := NewDeterministicClock()

	assert.Equal(t, int64(1), clock.Next())
	assert.Equal(t, int64(2), clock.Next())
	assert.Equal(t, int64(3), clock.Next())
}

func TestDeterministicClock_RecordNamesReproducible(t *testing.T) {
	// Golden files pin record-derived output, so two runs of the same
	// scenario must name their records identically.
	entries := []compdb.Entry{
		{Directory: "/src", Command: "cc -c main.c", File: "main.c"},
		{Directory: "/src", Command: "cc -c util.c", File: "util.c"},
	}

	first := recordNames(t, NewDeterministicClock(), entries)
	second := recordNames(t, NewDeterministicClock(), entries)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"main.c.1.json", "util.c.2.json"}, first)
}

func TestDeterministicClock_ConcurrentWritersNeverCollide(t *testing.T) {
	// Wrapper processes share one scratch directory; a shared clock must
	// hand every writer a distinct token or records for the same file
	// path would overwrite each other before the merge.
	dir := t.TempDir()
	clock := NewDeterministicClock()
	entry := compdb.Entry{Directory: "/src", Command: "cc -c common.h", File: "common.h"}

	const writers = 32
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- scratch.WriteAll(dir, []compdb.Entry{entry}, clock)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	dirents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, dirents, writers, "every writer's record survives")
}
