// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

// Copy transfers min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes transferred.  The regions must not overlap; results
// are undefined when they do (that case is Move's job).  No byte of dst
// beyond the transferred count is touched.
//
// The operation length is derived from the spans themselves, so the only way
// to violate the precondition is to construct genuinely aliasing slices.
func Copy(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	copyEngine(dst, src, n)
	return n
}

// CopyN transfers at most n bytes from src to dst, stopping early at the
// shorter span, and returns the number of bytes transferred.  The regions
// must not overlap.  It panics if n is negative.
func CopyN(dst, src []byte, n int) int {
	if n < 0 {
		panic("CopyN() requires nonnegative n.")
	}
	if len(src) < n {
		n = len(src)
	}
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	copyEngine(dst, src, n)
	return n
}

// Move transfers min(len(dst), len(src)) bytes from src to dst, permitting
// the regions to overlap arbitrarily, and returns the number of bytes
// transferred.  The destination content is byte-for-byte what a copy through
// a temporary buffer would have produced.
func Move(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	moveEngine(dst, src, n)
	return n
}

// CopyStop transfers bytes from src to dst until the byte stop has been
// transferred or min(len(dst), len(src)) bytes have been moved.  It returns
// the index just past the copied stop byte, or -1 if stop did not occur (in
// which case the full common length was transferred).  The regions must not
// overlap.
func CopyStop(dst, src []byte, stop byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return -1
	}
	idx := IndexByte(src[:n], stop)
	copyLen := n
	if idx >= 0 {
		copyLen = idx + 1
	}
	copyEngine(dst, src, copyLen)
	if idx < 0 {
		return -1
	}
	return idx + 1
}
