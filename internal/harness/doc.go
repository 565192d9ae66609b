// Package harness provides conformance testing for the compilation
// database pipeline.
//
// The harness executes merge scenarios: each scenario declares a source
// tree, an optional pre-existing database, and a sequence of builds
// whose compiler invocations are logged and merged exactly the way the
// driver merges them after make exits. Compiler processes are never
// started; process relay is covered by the build package tests.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	tree:
//	  - main.c
//	  - main.h
//	database:
//	  - command: cc -c main.c
//	    file: main.c
//	builds:
//	  - invocations:
//	      - [cc, -c, -O2, main.c]
//	assertions:
//	  - type: contains_entry
//	    file: main.c
//	    command: cc -c -O2 main.c
//
// Tree files are created empty in the scenario workspace; header
// inference only checks that they exist. Database entries with no
// directory default to the workspace, the directory every build runs in.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - entry_count: the database holds exactly N entries, optionally for one file
//   - contains_entry: an entry for the file exists, with the exact command if given
//   - entry_order: entries for the files appear in the given relative order
//   - unique_files: no file path appears in more than one entry
//   - command_one_of: the file's entry carries one of the candidate commands
package harness
