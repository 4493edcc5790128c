// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

// Compare lexicographically compares a and b over min(len(a), len(b)) bytes.
// The sign of the result indicates which span is greater; its magnitude
// carries no meaning beyond that (at the first differing index i it is the
// byte difference a[i]-b[i]).  When all compared bytes are equal, the
// shorter span is less.
func Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if d := compareNEngine(a, b, n); d != 0 {
		return d
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CompareN compares at most n bytes of a and b, stopping early at the
// shorter span.  It returns the byte difference at the first differing
// index, or 0 when every compared byte matches.  It panics if n is
// negative.
func CompareN(a, b []byte, n int) int {
	if n < 0 {
		panic("CompareN() requires nonnegative n.")
	}
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	return compareNEngine(a, b, n)
}
