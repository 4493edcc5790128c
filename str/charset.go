// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str

import (
	"github.com/willf/bitset"
)

// smallSetMax is the largest delimiter-set size handled by direct byte
// comparison.  Larger sets are answered through a 256-bit membership
// bitmap.
const smallSetMax = 4

// SpanAccept returns the length of the longest prefix of the logical value
// of s consisting entirely of bytes from set.
func SpanAccept(s, set []byte) int {
	s = s[:Length(s)]
	set = set[:Length(set)]
	if len(set) <= smallSetMax {
		for i := 0; i != len(s); i++ {
			if !inSmallSet(s[i], set) {
				return i
			}
		}
		return len(s)
	}
	b := newByteSet(set)
	for i := 0; i != len(s); i++ {
		if !b.Test(uint(s[i])) {
			return i
		}
	}
	return len(s)
}

// SpanReject returns the length of the longest prefix of the logical value
// of s containing no byte from set.
func SpanReject(s, set []byte) int {
	s = s[:Length(s)]
	set = set[:Length(set)]
	if len(set) <= smallSetMax {
		for i := 0; i != len(s); i++ {
			if inSmallSet(s[i], set) {
				return i
			}
		}
		return len(s)
	}
	b := newByteSet(set)
	for i := 0; i != len(s); i++ {
		if b.Test(uint(s[i])) {
			return i
		}
	}
	return len(s)
}

// IndexAny returns the index of the first byte of the logical value of s
// that appears in set, or -1 if no byte of s does.
func IndexAny(s, set []byte) int {
	pos := SpanReject(s, set)
	if pos == Length(s) {
		return -1
	}
	return pos
}

func inSmallSet(c byte, set []byte) bool {
	for i := 0; i != len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

func newByteSet(set []byte) *bitset.BitSet {
	b := bitset.New(256)
	for i := 0; i != len(set); i++ {
		b.Set(uint(set[i]))
	}
	return b
}
