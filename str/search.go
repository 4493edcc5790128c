// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str

import (
	"github.com/fastbytes/base/mem"
)

// IndexByte returns the index of the first occurrence of c in the logical
// value of s, or -1 if c is absent.  Searching for the NUL byte finds the
// terminator itself, when one exists within the slice.
func IndexByte(s []byte, c byte) int {
	n := Length(s)
	if c == 0 {
		if n < len(s) {
			return n
		}
		return -1
	}
	return mem.IndexByte(s[:n], c)
}

// LastIndexByte returns the index of the last occurrence of c in the
// logical value of s, or -1 if c is absent.  Searching for the NUL byte
// finds the terminator itself, when one exists within the slice.
func LastIndexByte(s []byte, c byte) int {
	n := Length(s)
	if c == 0 {
		if n < len(s) {
			return n
		}
		return -1
	}
	return mem.LastIndexByte(s[:n], c)
}

// IndexByteOrEnd returns the index of the first occurrence of c in the
// logical value of s, or the index of the terminator (the length of the
// logical value) if c is absent.
func IndexByteOrEnd(s []byte, c byte) int {
	n := Length(s)
	if c == 0 {
		return n
	}
	if pos := mem.IndexByte(s[:n], c); pos != -1 {
		return pos
	}
	return n
}

// Index returns the index of the first occurrence of the logical value of
// needle within the logical value of s, or -1 if it is absent.  An empty
// needle matches at position 0.
func Index(s, needle []byte) int {
	return mem.Index(s[:Length(s)], needle[:Length(needle)])
}

// IndexFold is Index under ASCII case folding.
func IndexFold(s, needle []byte) int {
	s = s[:Length(s)]
	needle = needle[:Length(needle)]
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(s) {
		return -1
	}
	first := lowerTable[needle[0]]
	last := lowerTable[needle[len(needle)-1]]
	lastPos := len(s) - len(needle)
	for pos := 0; pos <= lastPos; pos++ {
		if lowerTable[s[pos]] != first {
			continue
		}
		if lowerTable[s[pos+len(needle)-1]] != last {
			continue
		}
		if compareFold(s[pos:pos+len(needle)], needle) == 0 {
			return pos
		}
	}
	return -1
}
