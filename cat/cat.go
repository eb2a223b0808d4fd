// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

// Cat concatenates files, or standard input, to standard output,
// optionally numbering lines, marking line ends and squeezing runs of
// blank lines.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/krwc/coreutils/internal/decorate"
	"github.com/krwc/coreutils/internal/fatal"
)

const prog = "cat"

const help = `Usage: cat [OPTION]... [FILE]...
Concatenate FILE(s), or standard input, to standard output.

  -n, --number         number all output lines
  -E, --show-ends      display $ at end of each line
  -s, --squeeze-blank  suppress repeated empty output lines
  -h, --help           display this help and exit
  -v, --version        output version information and exit

With no FILE, or when FILE is -, read standard input.
`

const version = "Partial implementation of GNU cat, version 1.1.0"

func main() {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	number := flags.BoolP("number", "n", false, "number all output lines")
	ends := flags.BoolP("show-ends", "E", false, "display $ at end of each line")
	squeeze := flags.BoolP("squeeze-blank", "s", false, "suppress repeated empty output lines")
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

	args := flags.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	decs := decorate.Decorators{
		Ends:    *ends,
		Number:  *number,
		Squeeze: *squeeze,
	}
	if err := run(args, decs, os.Stdout); err != nil {
		fatal.Fatalf(prog, "%v", err)
	}
}

// run concatenates every operand to stdout in order. Decoration state
// is shared across operands so numbering and squeezing continue over
// file boundaries. The first failure aborts the remaining operands.
func run(args []string, decs decorate.Decorators, stdout io.Writer) error {
	state := decorate.NewState()
	for _, arg := range args {
		if err := cat(arg, decs, state, stdout); err != nil {
			return err
		}
	}
	return nil
}

func cat(name string, decs decorate.Decorators, st *decorate.State, stdout io.Writer) error {
	in := os.Stdin
	if name != "-" {
		f, err := open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	size := bufSize(in)
	out := bufio.NewWriterSize(stdout, 2*size)

	if !decs.Any() {
		if _, err := io.Copy(out, in); err != nil {
			return fmt.Errorf("%s: input/output error", name)
		}
		return out.Flush()
	}

	buf := make([]byte, size)
	if err := decorate.Copy(out, in, buf, decs, st, interactive(in)); err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	return nil
}

// open classifies access failures into the exact diagnostics cat has
// always printed for them.
func open(name string) (*os.File, error) {
	info, err := os.Stat(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%s: no such file or directory", name)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: permission denied", name)
	case err != nil:
		return nil, fmt.Errorf("%s: unknown error", name)
	case info.IsDir():
		return nil, fmt.Errorf("%s: is a directory", name)
	}

	f, err := os.Open(name)
	if errors.Is(err, fs.ErrPermission) {
		return nil, fmt.Errorf("%s: permission denied", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: unknown error", name)
	}
	advise(f)
	return f, nil
}

// interactive reports whether f is a terminal-like source. Output is
// then flushed per line instead of on buffer boundaries.
func interactive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
