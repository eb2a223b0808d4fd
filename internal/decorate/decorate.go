// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

// Package decorate implements cat's single-pass line decoration
// pipeline: line numbering, end-of-line marking and blank-line
// squeezing applied while streaming through a fixed-size buffer.
package decorate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decorators selects the optional per-line output transformations.
type Decorators struct {
	Ends    bool // append $ before each newline
	Number  bool // number all output lines
	Squeeze bool // suppress repeated empty output lines
}

// Any reports whether at least one decoration is enabled. With none
// enabled the stream can be copied verbatim, skipping line parsing.
func (d Decorators) Any() bool {
	return d.Ends || d.Number || d.Squeeze
}

// State carries the line counters across buffer reads. The caller owns
// it and passes the same value for every input of one invocation, so
// numbering and squeezing continue over file boundaries.
type State struct {
	// EmptyStreak counts consecutive newline-terminated lines ending at
	// the current one, where a non-blank line resets the count to 1.
	// Zero marks an unterminated line carried over from an earlier read.
	EmptyStreak int
	CurrentLine int
}

// NewState returns the state for the start of an invocation, as if a
// non-blank line had just been written.
func NewState() *State {
	return &State{EmptyStreak: 1, CurrentLine: 1}
}

// Copy streams r to w applying the enabled decorations line by line.
// Reads are chunked through buf. Within a chunk the next newline is
// located with a single forward search so that each whole line reaches
// the writer in one call; a trailing partial line is written through
// as-is and finished on a later read. When interactive is set the
// writer is flushed after every completed line so output appears
// without delay. The first read or write error aborts the copy.
func Copy(w *bufio.Writer, r io.Reader, buf []byte, d Decorators, st *State, interactive bool) error {
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if werr := writeLines(w, buf[:n], d, st, interactive); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return w.Flush()
		}
		if err != nil {
			return err
		}
	}
}

func writeLines(w *bufio.Writer, chunk []byte, d Decorators, st *State, interactive bool) error {
	for p := 0; p < len(chunk); {
		off := bytes.IndexByte(chunk[p:], '\n')

		// A zero streak means the previous chunk ended mid-line: we are
		// finishing a line whose start (and number) is already out.
		continuing := st.EmptyStreak == 0

		if off < 0 {
			if d.Number && !continuing {
				if _, err := fmt.Fprintf(w, "%6d: ", st.CurrentLine); err != nil {
					return err
				}
				st.CurrentLine++
			}
			if _, err := w.Write(chunk[p:]); err != nil {
				return err
			}
			st.EmptyStreak = 0
			return nil
		}

		switch {
		case continuing, off > 0:
			st.EmptyStreak = 1
		default:
			st.EmptyStreak++
		}

		if d.Squeeze && st.EmptyStreak >= 3 {
			p++
			continue
		}
		if d.Number && !continuing {
			if _, err := fmt.Fprintf(w, "%6d: ", st.CurrentLine); err != nil {
				return err
			}
			st.CurrentLine++
		}
		if _, err := w.Write(chunk[p : p+off]); err != nil {
			return err
		}
		if d.Ends {
			if err := w.WriteByte('$'); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		p += off + 1

		if interactive {
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
