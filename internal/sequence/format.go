// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

package sequence

import (
	"fmt"
	"strings"
)

// The printf subset seq accepts: floating-point verbs only, with
// distinct flags and an optional width and precision.
const (
	verbChars = "aefgAEFG"
	flagChars = "+- #0"
)

// FormatError reports why a format string failed validation and the
// byte offset of the offending character.
type FormatError struct {
	Format string
	Pos    int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s at offset %d", e.Format, e.Msg, e.Pos)
}

// ValidateFormat checks that format contains exactly one printf-style
// floating-point conversion %[flags][width][.precision]verb and that
// every other '%' appears in an escaped pair "%%". A run of an odd
// number of '%' characters is legal only when it has length one and
// introduces the single conversion; any later or longer odd run is a
// stray unescaped '%'.
func ValidateFormat(format string) error {
	errAt := func(pos int, msg string) error {
		return &FormatError{Format: format, Pos: pos, Msg: msg}
	}

	found := false
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		run := i
		for run < len(format) && format[run] == '%' {
			run++
		}
		if (run-i)%2 == 0 {
			// Fully escaped literal per-cent signs.
			i = run
			continue
		}
		if found || run-i > 1 {
			return errAt(i, "unescaped '%'")
		}
		i++

		var seen [128]bool
		for i < len(format) && strings.IndexByte(flagChars, format[i]) >= 0 {
			if seen[format[i]] {
				return errAt(i, fmt.Sprintf("repeated flag %q", format[i]))
			}
			seen[format[i]] = true
			i++
		}
		for i < len(format) && isDigit(format[i]) {
			i++ // width
		}
		if i < len(format) && format[i] == '.' {
			i++
			if i == len(format) || !isDigit(format[i]) {
				return errAt(i, "expected precision digits after '.'")
			}
			for i < len(format) && isDigit(format[i]) {
				i++
			}
		}
		if i == len(format) {
			return errAt(i, "missing conversion specifier")
		}
		if strings.IndexByte(verbChars, format[i]) < 0 {
			return errAt(i, fmt.Sprintf("invalid conversion specifier %q", format[i]))
		}
		i++
		found = true
	}
	if !found {
		return errAt(len(format), "no format found")
	}
	return nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
