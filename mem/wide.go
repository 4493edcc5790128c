// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

import (
	gunsafe "github.com/fastbytes/base/unsafe"
)

// CopyU32 transfers min(len(dst), len(src)) elements from src to dst and
// returns the number of elements transferred.  The regions must not
// overlap.
func CopyU32(dst, src []uint32) int {
	return Copy(gunsafe.U32sToBytes(dst), gunsafe.U32sToBytes(src)) >> 2
}

// MoveU32 is CopyU32 with overlap permitted.
func MoveU32(dst, src []uint32) int {
	return Move(gunsafe.U32sToBytes(dst), gunsafe.U32sToBytes(src)) >> 2
}

// CopyU16 transfers min(len(dst), len(src)) elements from src to dst and
// returns the number of elements transferred.  The regions must not
// overlap.
func CopyU16(dst, src []uint16) int {
	return Copy(gunsafe.U16sToBytes(dst), gunsafe.U16sToBytes(src)) >> 1
}

// CompareU32 lexicographically compares a and b element-wise over
// min(len(a), len(b)) elements; when all compared elements are equal, the
// shorter span is less.  Only the sign of the result is meaningful.
func CompareU32(a, b []uint32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
