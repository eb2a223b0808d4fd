// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

//go:build !linux && !freebsd

package main

import "os"

func bufSize(*os.File) int { return 64 * 1024 }

func advise(*os.File) {}
