// Copyright (c) 2026 the coreutils authors
// Use of this source code is governed by the GPL v3 or later.

//go:build linux || freebsd

package main

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// bufSize picks the read buffer size for f: at least 128KiB, or the
// file system's preferred block size when that is larger.
func bufSize(f *os.File) int {
	const defaultSize = 128 * 1024
	info, err := f.Stat()
	if err != nil {
		return defaultSize
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return defaultSize
	}
	if int(stat.Blksize) > defaultSize {
		return int(stat.Blksize)
	}
	return defaultSize
}

// advise hints the kernel that f will be read sequentially.
func advise(f *os.File) {
	unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
