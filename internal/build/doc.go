// Package build runs the two halves of a wrapped build.
//
// The Driver is invoked once per build: it locates the orchestrator and
// the real compilers, re-invokes the orchestrator with CC and CXX
// redirected through this tool's logging mode, and merges the scratch
// records into the persistent database when the orchestrator exits,
// whether it succeeded, failed, or was interrupted. The scratch
// directory is removed on every exit path.
//
// The Wrapper is invoked once per compile unit by the orchestrator's
// build rules: it records what is being compiled into the scratch
// directory, then relays the real compiler unmodified.
//
// Both halves propagate their subprocess's exit code unchanged; callers
// must see the true build result, never a wrapper-induced code.
package build
