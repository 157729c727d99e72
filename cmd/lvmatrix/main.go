// SPDX-License-Identifier: MIT

// Command lvmatrix exercises the matrix and nn packages from the shell.
//
//	lvmatrix mul                   multiply the demo matrices
//	lvmatrix eval FILE             check every fixture case in FILE
//	lvmatrix sweep FILE --out P    plot a network's response to one input
//	lvmatrix info                  report CPU features and worker defaults
package main

import (
	"os"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
