// Package compdb reads, merges, and writes compilation databases.
//
// A compilation database is a JSON array of entries, one entry per file,
// each recording the working directory and the exact command line used to
// compile that file. Source-analysis tooling consumes the database from a
// fixed filename in the build's working directory.
//
// The package enforces one invariant across merges: file paths are unique
// within a database, and the most recently observed entry for a path wins.
// Merging is incremental and idempotent:
//   - entries for files untouched by the current batch are preserved,
//   - entries superseded by the batch are replaced,
//   - re-merging an unchanged batch leaves the database byte-identical.
package compdb
