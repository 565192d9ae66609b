// Package invocation turns observed compiler invocations into compilation
// database entries.
//
// The wrapper stands in for the real compiler, so each invocation is seen
// exactly as the build orchestrator issued it. The argument vector passes
// through a small denylist filter first (dependency-generation flags the
// probing invocation must not record), then the synthesizer picks out
// source file arguments and emits one entry per source plus synthetic
// entries for companion headers found on disk.
//
// Header inference is heuristic on purpose: only a same-directory,
// same-basename header with a conventional extension is considered. It is
// not a dependency scan and must not grow into one.
package invocation
