// Package main is the entry point for the makecdb binary, which runs in
// two modes: as a make wrapper and, re-invoked through CC/CXX, as a
// compiler wrapper.
package main

import (
	"os"

	"github.com/roach88/makecdb/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
