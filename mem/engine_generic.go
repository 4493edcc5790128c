// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package mem

// Scalar-tier fallbacks.  These produce byte-for-byte the same results as
// the accelerated kernels; the built-in copy covers both the disjoint and
// the overlapping case here.

func copyEngine(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

func moveEngine(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

func fillEngine(dst []byte, val byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] = val
	}
}

func fillWordsUnsafe(dst []byte, val byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] = val
	}
}

func indexByteEngine(s []byte, c byte) int {
	for i, b := range s {
		if b == c {
			return i
		}
	}
	return -1
}

func lastIndexByteEngine(s []byte, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func compareNEngine(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}
