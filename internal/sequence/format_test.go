// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFormatAccepts(t *testing.T) {
	valid := []string{
		"%f",
		"%.3f",
		"%+#-f",
		"%e",
		"%a",
		"%A",
		"%10.2G",
		"%-12e",
		"% f",
		"%08.2f",
		"x=%f;",
		"%f%%",
		"%%x%f",
		"100%%: %g",
	}
	for _, format := range valid {
		t.Run(format, func(t *testing.T) {
			require.NoError(t, ValidateFormat(format))
		})
	}
}

func TestValidateFormatRejects(t *testing.T) {
	invalid := []struct {
		name   string
		format string
		msg    string
	}{
		{"empty", "", "no format found"},
		{"bare percent", "%", "missing conversion specifier"},
		{"escape only", "%%", "no format found"},
		{"escape eats the only percent", "%%f", "no format found"},
		{"wrong specifier", "%c", "invalid conversion specifier"},
		{"integer specifier", "%d", "invalid conversion specifier"},
		{"second conversion", "%f%n", "unescaped '%'"},
		{"two float conversions", "%f %e", "unescaped '%'"},
		{"trailing odd run", "%f%%%", "unescaped '%'"},
		{"odd run of three", "%%%f", "unescaped '%'"},
		{"repeated zero flag", "%00f", "repeated flag"},
		{"repeated plus flag", "%++f", "repeated flag"},
		{"dot without digits", "%.f", "expected precision digits"},
		{"trailing dot", "%5.", "expected precision digits"},
		{"flags without specifier", "%+-", "missing conversion specifier"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFormat(tc.format)
			require.Error(t, err)
			require.ErrorContains(t, err, tc.msg)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			require.Equal(t, tc.format, ferr.Format)
		})
	}
}
