// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str

import (
	"github.com/fastbytes/base/mem"
)

// Compare returns -1, 0, or 1 depending on whether the logical value of a
// is lexicographically less than, equal to, or greater than that of b.
// Bytes compare as unsigned values.
func Compare(a, b []byte) int {
	return sign(mem.Compare(a[:Length(a)], b[:Length(b)]))
}

// CompareN is Compare restricted to the first n bytes of each logical
// value.  It panics if n is negative.
func CompareN(a, b []byte, n int) int {
	if n < 0 {
		panic("CompareN() requires nonnegative n.")
	}
	return sign(mem.Compare(a[:Clamp(a, n)], b[:Clamp(b, n)]))
}

// sign collapses the engine's byte-difference result to -1, 0, or 1.
func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// CompareFold is Compare under ASCII case folding: 'A'..'Z' compare equal
// to 'a'..'z'.  Folded bytes compare as unsigned values.
func CompareFold(a, b []byte) int {
	return compareFold(a[:Length(a)], b[:Length(b)])
}

// CompareFoldN is CompareFold restricted to the first n bytes of each
// logical value.  It panics if n is negative.
func CompareFoldN(a, b []byte, n int) int {
	if n < 0 {
		panic("CompareFoldN() requires nonnegative n.")
	}
	return compareFold(a[:Clamp(a, n)], b[:Clamp(b, n)])
}

func compareFold(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i != n; i++ {
		ac := lowerTable[a[i]]
		bc := lowerTable[b[i]]
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
	}
	if len(a) < len(b) {
		return -1
	}
	if len(a) > len(b) {
		return 1
	}
	return 0
}

// lowerTable maps ASCII uppercase letters to lowercase and leaves every
// other byte value unchanged.
var lowerTable = func() (t [256]byte) {
	for i := range t {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		t[i] = c
	}
	return t
}()
