// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

// Package sequence generates seq's numeric sequences: operand parsing
// with precision inference, printf-format validation and token output.
package sequence

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Spec describes one invocation: print First, First+Increment, … while
// the value has not passed Last, each rendered with Format and joined
// by Separator.
type Spec struct {
	First     float64
	Increment float64
	Last      float64
	Separator string
	Format    string
}

// ErrMissingOperand is returned when no positional operand was given.
var ErrMissingOperand = errors.New("missing operand")

// ParseOperands builds a Spec from the positional operands, one of
// LAST, FIRST LAST or FIRST INCREMENT LAST. FIRST and INCREMENT
// default to 1. The default format's precision is the larger of the
// decimal-fraction digit counts of the FIRST and INCREMENT literals as
// written, so "1 0.5 2" prints one fractional digit.
func ParseOperands(operands []string) (Spec, error) {
	spec := Spec{First: 1, Increment: 1, Separator: "\n"}
	first, increment := "1", "1"

	var err error
	switch len(operands) {
	case 0:
		return Spec{}, ErrMissingOperand
	case 1:
		spec.Last, err = parseOperand(operands[0])
	case 2:
		first = operands[0]
		if spec.First, err = parseOperand(first); err == nil {
			spec.Last, err = parseOperand(operands[1])
		}
	case 3:
		first, increment = operands[0], operands[1]
		if spec.First, err = parseOperand(first); err == nil {
			if spec.Increment, err = parseOperand(increment); err == nil {
				spec.Last, err = parseOperand(operands[2])
			}
		}
	default:
		return Spec{}, fmt.Errorf("extra operand '%s'", operands[3])
	}
	if err != nil {
		return Spec{}, err
	}
	if spec.Increment == 0 {
		return Spec{}, fmt.Errorf("invalid zero increment value: '%s'", increment)
	}

	prec := precisionOf(first)
	if p := precisionOf(increment); p > prec {
		prec = p
	}
	spec.Format = fmt.Sprintf("%%.%df", prec)
	return spec, nil
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid floating point argument: '%s'", s)
	}
	return v, nil
}

// precisionOf returns the number of decimal-fraction digits written in
// a numeric literal: "1.50" has two, "3" has none.
func precisionOf(lit string) int {
	dot := strings.IndexByte(lit, '.')
	if dot < 0 {
		return 0
	}
	return len(lit) - dot - 1
}

// Write prints the sequence to w: token k for k = 0, 1, 2, … while
// First + k*Increment has not passed Last, joined by Separator and
// terminated by a single newline. An empty sequence prints only the
// newline. Values are computed by multiplication rather than repeated
// addition so rounding error does not accumulate.
func (s Spec) Write(w io.Writer) error {
	format := goFormat(s.Format)
	for k := 0; ; k++ {
		v := s.First + float64(k)*s.Increment
		if s.Increment > 0 && v > s.Last {
			break
		}
		if s.Increment < 0 && v < s.Last {
			break
		}
		if k > 0 {
			if _, err := io.WriteString(w, s.Separator); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, format, v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// goFormat rewrites a validated format for Go's fmt package, which
// spells the C hex-float verbs %a/%A as %x/%X. Flags, width and
// precision carry over unchanged.
func goFormat(format string) string {
	b := []byte(format)
	for i := 0; i < len(b); i++ {
		if b[i] != '%' {
			continue
		}
		if i+1 < len(b) && b[i+1] == '%' {
			i++ // skip the escaped pair
			continue
		}
		// The single conversion: everything up to its verb is flags,
		// width or precision, none of which use a verb character.
		j := i + 1
		for j < len(b) && strings.IndexByte(verbChars, b[j]) < 0 {
			j++
		}
		if j < len(b) {
			switch b[j] {
			case 'a':
				b[j] = 'x'
			case 'A':
				b[j] = 'X'
			}
		}
		break
	}
	return string(b)
}
