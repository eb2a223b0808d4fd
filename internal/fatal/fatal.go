// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

// Package fatal prints one-line diagnostics in the classic coreutils
// form "prog: message" and terminates the process with status 1.
//
// Library packages return errors instead of calling into this package;
// only the command mains terminate the process.
package fatal

import (
	"fmt"
	"io"
	"os"
)

// Replaced by the tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatalf prints "prog: message" to standard error and exits 1.
func Fatalf(prog, format string, v ...any) {
	fmt.Fprintf(stderr, "%s: %s\n", prog, fmt.Sprintf(format, v...))
	exit(1)
}
