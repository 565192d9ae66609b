// Package scratch manages the per-build scratch directory that collects
// compiler invocation records before they are merged into the database.
//
// The directory's location is a pure function of the build's working
// directory, so every wrapper process of one build resolves the same
// path with no coordination, and a re-entrant configure step that bakes
// the path into generated files still finds it on later runs.
//
// Each observed entry becomes its own record file. Record names embed a
// monotonically distinct token, so arbitrarily many concurrent wrapper
// processes can log the same file path without taking a lock: every
// writer lands on a fresh name, and the merge deduplicates afterward.
package scratch
