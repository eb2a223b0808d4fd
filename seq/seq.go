// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

// Seq prints a sequence of floating-point numbers from FIRST to LAST
// in steps of INCREMENT, rendered with a printf-style format.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/krwc/coreutils/internal/fatal"
	"github.com/krwc/coreutils/internal/sequence"
)

const prog = "seq"

const help = `Usage: seq [OPTION]... LAST
  or:  seq [OPTION]... FIRST LAST
  or:  seq [OPTION]... FIRST INCREMENT LAST
Print numbers from FIRST to LAST, in steps of INCREMENT.

  -f, --format=FORMAT     use printf style floating-point FORMAT
  -s, --separator=STRING  use STRING to separate numbers (default: \n)
  -w, --equal-width       equalize width by padding with leading zeroes
                          (accepted, not implemented)
  -h, --help              display this help and exit
  -v, --version           output version information and exit

FIRST and INCREMENT default to 1. FIRST, INCREMENT and LAST are
interpreted as floating point values. Without -f, the printed
precision is taken from the FIRST and INCREMENT operands as written.
`

const version = "Implementation of GNU seq, version 1.1.0"

func main() {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	format := flags.StringP("format", "f", "", "use printf style floating-point FORMAT")
	separator := flags.StringP("separator", "s", "\n", "use STRING to separate numbers")
	flags.BoolP("equal-width", "w", false, "equalize width by padding with leading zeroes")
	wantHelp := flags.BoolP("help", "h", false, "display this help and exit")
	wantVersion := flags.BoolP("version", "v", false, "output version information and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fatal.Fatalf(prog, "%v", err)
	}
	if *wantHelp {
		fmt.Print(help)
		return
	}
	if *wantVersion {
		fmt.Println(version)
		return
	}

	spec, err := sequence.ParseOperands(flags.Args())
	if err != nil {
		fatal.Fatalf(prog, "%v", err)
	}
	spec.Separator = *separator
	if flags.Changed("format") {
		if err := sequence.ValidateFormat(*format); err != nil {
			fatal.Fatalf(prog, "%v", err)
		}
		spec.Format = *format
	}

	out := bufio.NewWriter(os.Stdout)
	if err := spec.Write(out); err != nil {
		fatal.Fatalf(prog, "write error: %v", err)
	}
	if err := out.Flush(); err != nil {
		fatal.Fatalf(prog, "write error: %v", err)
	}
}
