// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

import (
	gunsafe "github.com/fastbytes/base/unsafe"
)

// BytesPerWord is the number of bytes in a machine word.  We don't use
// unsafe.Sizeof(uintptr(1)) since there are advantages to having this as an
// untyped constant; all supported kernels assume 64-bit words.
const BytesPerWord = 8

// Log2BytesPerWord is log2(BytesPerWord).  This is relevant for manual
// bit-shifting when we know that's a safe way to divide and the compiler does
// not (e.g. dividend is of signed int type).
const Log2BytesPerWord = uint(3)

// BitsPerWord is the number of bits in a machine word.
const BitsPerWord = BytesPerWord * 8

// Tier breakpoints.  Each boundary exists to dodge a specific hardware cliff
// (wide-vector wake-up latency below smallMax, loop setup cost below
// mediumMax, cache pollution above streamingMin); treat them as the one
// canonical tuning set rather than growing parallel code paths.
const (
	// smallMax is the largest size handled by the loop-free ladder of
	// overlapping head/tail stores.  Operations at or below this size never
	// touch a tier wider than two words per store group.
	smallMax = 64

	// mediumMax is the largest size handled by branchless wide-block store
	// sequences before the engines switch to an aligned unrolled loop.
	mediumMax = 1024

	// bulkMoveMin is the overlapping-move size at which the platform's block
	// move primitive beats direction-correct software loops.
	bulkMoveMin = 256

	// streamingMin is the copy size at which stores should bypass the cache
	// hierarchy; the destination of a copy this large will not be read again
	// soon enough for cached lines to pay for themselves.
	streamingMin = 16 << 20

	// zeroStreamMin is the corresponding threshold for zero-fills, which hit
	// the non-temporal cliff earlier than copies do.
	zeroStreamMin = 2 << 20
)

// bytesPerVec is the size of the maximum-width store group that may be used.
// It is set at init() time by CPU feature detection: 32 when 256-bit vector
// units are available, 16 otherwise.
var bytesPerVec int

// log2BytesPerVec supports efficient division by bytesPerVec.
var log2BytesPerVec uint

// BytesPerVec is an accessor for the bytesPerVec package variable.
func BytesPerVec() int {
	return bytesPerVec
}

// RoundUpPow2 returns val rounded up to a multiple of alignment, assuming
// alignment is a power of 2.
func RoundUpPow2(val, alignment int) int {
	return (val + alignment - 1) & (^(alignment - 1))
}

// DivUpPow2 efficiently divides a number by a power-of-2 divisor.  (This
// works for negative dividends since the language specifies arithmetic
// right-shifts of signed numbers.)
func DivUpPow2(dividend, divisor int, log2Divisor uint) int {
	return (dividend + divisor - 1) >> log2Divisor
}

// MakeUnsafe returns a byte slice of the given length which is guaranteed to
// have enough capacity for all Unsafe functions in this package to work.  (It
// is not itself an unsafe function: allocated memory is zero-initialized.)
func MakeUnsafe(len int) []byte {
	// Adding bytesPerVec rather than RoundUpPow2(len+1, bytesPerVec) makes
	// subslicing safe.
	return make([]byte, len, len+bytesPerVec)
}

// RemakeUnsafe reuses the given buffer if it has sufficient capacity;
// otherwise it does the same thing as MakeUnsafe.  It does NOT preserve
// existing contents of buf[]; use ResizeUnsafe() for that.
func RemakeUnsafe(bufptr *[]byte, len int) {
	minCap := len + bytesPerVec
	if minCap <= cap(*bufptr) {
		gunsafe.ExtendBytes(bufptr, len)
		return
	}
	// This is likely to be called in an inner loop processing variable-size
	// inputs, so mild exponential growth is appropriate.
	*bufptr = make([]byte, len, RoundUpPow2(minCap+(minCap/8), bytesPerVec))
}

// ResizeUnsafe changes the length of buf and ensures it has enough extra
// capacity to be passed to this package's Unsafe functions.  Existing buf[]
// contents are preserved (with possible truncation), though when length is
// increased, new bytes might not be zero-initialized.
func ResizeUnsafe(bufptr *[]byte, len int) {
	minCap := len + bytesPerVec
	if minCap <= cap(*bufptr) {
		gunsafe.ExtendBytes(bufptr, len)
		return
	}
	dst := make([]byte, len, RoundUpPow2(minCap+(minCap/8), bytesPerVec))
	copy(dst, *bufptr)
	*bufptr = dst
}

// XcapUnsafe is shorthand for ResizeUnsafe's most common use case (no length
// change, just want to ensure sufficient capacity).
func XcapUnsafe(bufptr *[]byte) {
	ResizeUnsafe(bufptr, len(*bufptr))
}
