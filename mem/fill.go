// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

// Fill sets every byte of dst to val and returns len(dst).  No byte outside
// dst is touched.
func Fill(dst []byte, val byte) int {
	n := len(dst)
	if n == 0 {
		return 0
	}
	fillEngine(dst, val, n)
	return n
}

// Zero sets every byte of dst to zero.  Equivalent to Fill(dst, 0); the
// large path routes through the runtime's clear primitive.
func Zero(dst []byte) {
	if len(dst) == 0 {
		return
	}
	fillEngine(dst, 0, len(dst))
}

// FillUnsafe sets all values of dst[] to the given byte using whole-word
// stores, rounding the store count up to a word boundary.
//
// WARNING: This is a function designed to be used in inner loops, which
// assumes without checking that capacity is at least RoundUpPow2(len(dst),
// BytesPerWord).  It also assumes that the caller does not care if a few
// bytes past the end of dst[] are changed.  These assumptions are always
// satisfied when the last potentially-size-increasing operation on dst[] is
// {Re}makeUnsafe(), ResizeUnsafe(), or XcapUnsafe().
func FillUnsafe(dst []byte, val byte) {
	fillWordsUnsafe(dst, val, len(dst))
}
