// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

package fatal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFatalf(t *testing.T) {
	var buf bytes.Buffer
	oldStderr, oldExit := stderr, exit
	defer func() { stderr, exit = oldStderr, oldExit }()

	code := -1
	stderr = &buf
	exit = func(c int) { code = c }

	Fatalf("cat", "%s: no such file or directory", "missing.txt")

	require.Equal(t, "cat: missing.txt: no such file or directory\n", buf.String())
	require.Equal(t, 1, code)
}
