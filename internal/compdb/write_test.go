package compdb

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWrite_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	entries := []Entry{
		{Directory: "/src", Command: "cc -c main.c -o main.o", File: "main.c"},
	}

	if err := Write(path, entries); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	want := `[
  {
    "directory": "/src",
    "command": "cc -c main.c -o main.o",
    "file": "main.c"
  }
]`
	if string(data) != want {
		t.Errorf("database = %q, want %q", data, want)
	}
}

func TestWrite_NilEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)

	if err := Write(path, nil); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("database = %q, want empty JSON array", data)
	}
}

func TestWrite_OverwritesCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte("{garbage"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	entries := []Entry{
		{Directory: "/src", Command: "cc -c a.c", File: "a.c"},
	}
	if err := Write(path, entries); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after Write() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, entries) {
		t.Errorf("loaded = %v, want %v", loaded, entries)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	entries := []Entry{
		{Directory: "/src", Command: "cc -c a.c -o a.o", File: "a.c"},
		{Directory: "/src/sub", Command: "c++ -c b.cc -o b.o", File: "b.cc"},
	}

	if err := Write(path, entries); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, entries) {
		t.Errorf("loaded = %v, want %v", loaded, entries)
	}
}
