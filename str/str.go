// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package str provides C-string style operations over byte slices.  The
// logical value of a slice ends at its first NUL byte, or at the end of the
// slice when no NUL is present.  All functions are thin wrappers over the
// engines in github.com/fastbytes/base/mem.
package str

import (
	"github.com/fastbytes/base/mem"
)

// Length returns the length of the logical value of s: the index of the
// first NUL byte, or len(s) when s contains no NUL.
func Length(s []byte) int {
	if pos := mem.IndexByte(s, 0); pos != -1 {
		return pos
	}
	return len(s)
}

// Clamp returns the length of the logical value of s, never exceeding max.
// It panics if max is negative.
func Clamp(s []byte, max int) int {
	if max < 0 {
		panic("Clamp() requires nonnegative max.")
	}
	if max > len(s) {
		max = len(s)
	}
	return Length(s[:max])
}

// Copy copies the logical value of src into dst, truncating as needed so
// that dst always ends with a NUL byte when len(dst) > 0.  It returns the
// length of the logical value of src, so truncation occurred iff the return
// value is >= len(dst).
func Copy(dst, src []byte) int {
	srcLen := Length(src)
	if len(dst) == 0 {
		return srcLen
	}
	n := srcLen
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	mem.Copy(dst, src[:n])
	dst[n] = 0
	return srcLen
}

// Concat appends the logical value of src to the logical value of dst,
// truncating as needed so that dst still ends with a NUL byte.  It returns
// the length the combined value would have had without truncation.  If dst
// holds no NUL and is already full, src is ignored and len(dst) +
// Length(src) is returned.
func Concat(dst, src []byte) int {
	dstLen := Length(dst)
	srcLen := Length(src)
	if dstLen == len(dst) {
		return dstLen + srcLen
	}
	return dstLen + Copy(dst[dstLen:], src)
}

// Clone returns a newly allocated copy of the logical value of s.
func Clone(s []byte) []byte {
	n := Length(s)
	d := mem.MakeUnsafe(n)
	mem.Copy(d, s[:n])
	return d
}

// Transform copies the logical value of src into dst with the same
// truncation rule as Copy, returning the length of the logical value of
// src.  Transformed values compare bytewise in the same order as their
// sources.
func Transform(dst, src []byte) int {
	return Copy(dst, src)
}
