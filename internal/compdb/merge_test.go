package compdb

import (
	"reflect"
	"testing"
)

func TestMerge_Supersession(t *testing.T) {
	existing := []Entry{
		{Directory: "/src", Command: "cc -c -O0 a.c", File: "a.c"},
	}
	batch := []Entry{
		{Directory: "/src", Command: "cc -c -O2 a.c", File: "a.c"},
	}

	merged := Merge(existing, batch)

	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Command != "cc -c -O2 a.c" {
		t.Errorf("command = %q, want batch command", merged[0].Command)
	}
}

func TestMerge_Preservation(t *testing.T) {
	existing := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
		{Directory: "/src", Command: "cc -c b.c", File: "b.c"},
	}
	batch := []Entry{
		{Directory: "/src", Command: "cc -c -O2 b.c", File: "b.c"},
	}

	merged := Merge(existing, batch)

	want := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
		{Directory: "/src", Command: "cc -c -O2 b.c", File: "b.c"},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %v, want %v", merged, want)
	}
}

func TestMerge_EmptyBatch(t *testing.T) {
	existing := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
	}

	merged := Merge(existing, nil)

	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("merged = %v, want database unchanged", merged)
	}
}

func TestMerge_IntoEmpty(t *testing.T) {
	batch := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
		{Directory: "/src", Command: "cc -c b.c", File: "b.c"},
	}

	merged := Merge(nil, batch)

	if !reflect.DeepEqual(merged, batch) {
		t.Errorf("merged = %v, want all batch entries in order", merged)
	}
}

func TestMerge_BatchDedupLastWins(t *testing.T) {
	batch := []Entry{
		{Directory: "/src", Command: "cc -c -DA a.c", File: "a.c"},
		{Directory: "/src", Command: "cc -c b.c", File: "b.c"},
		{Directory: "/src", Command: "cc -c -DB a.c", File: "a.c"},
	}

	merged := Merge(nil, batch)

	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	// a.c keeps its first-seen position but carries the last-seen command.
	if merged[0].File != "a.c" || merged[0].Command != "cc -c -DB a.c" {
		t.Errorf("merged[0] = %v, want last a.c entry in first position", merged[0])
	}
	if merged[1].File != "b.c" {
		t.Errorf("merged[1].File = %q, want b.c", merged[1].File)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	existing := []Entry{
		{Directory: "/src", Command: "cc -c old.c", File: "old.c"},
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
	}
	batch := []Entry{
		{Directory: "/src", Command: "cc -c -O2 a.c", File: "a.c"},
		{Directory: "/src", Command: "cc -c new.c", File: "new.c"},
	}

	once := Merge(existing, batch)
	twice := Merge(once, batch)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed the database:\nonce  = %v\ntwice = %v", once, twice)
	}
}

func TestMerge_NoPathNormalization(t *testing.T) {
	// Dedup compares file paths as strings; spellings of the same file
	// are distinct entries.
	existing := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "./a.c"},
	}
	batch := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
	}

	merged := Merge(existing, batch)

	if len(merged) != 2 {
		t.Errorf("len(merged) = %d, want 2 distinct spellings", len(merged))
	}
}
