// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package mem

import (
	"unsafe"
)

// Scalar mirrors of the wide-unit engines.

// Memset16Raw assumes dst points to an array of nElem 2-byte elements, and
// valPtr points to a single 2-byte element.  It fills dst with copies of
// *valPtr.
func Memset16Raw(dst, valPtr unsafe.Pointer, nElem int) {
	val := *((*uint16)(valPtr))
	for idx := 0; idx != nElem; idx++ {
		*((*uint16)(dst)) = val
		dst = unsafe.Add(dst, 2)
	}
}

// Memset32Raw assumes dst points to an array of nElem 4-byte elements, and
// valPtr points to a single 4-byte element.  It fills dst with copies of
// *valPtr.
func Memset32Raw(dst, valPtr unsafe.Pointer, nElem int) {
	val := *((*uint32)(valPtr))
	for idx := 0; idx != nElem; idx++ {
		*((*uint32)(dst)) = val
		dst = unsafe.Add(dst, 4)
	}
}

// RepeatI16 fills dst[] with the given int16.
func RepeatI16(dst []int16, val int16) {
	for i := range dst {
		dst[i] = val
	}
}

// RepeatU16 fills dst[] with the given uint16.
func RepeatU16(dst []uint16, val uint16) {
	for i := range dst {
		dst[i] = val
	}
}

// RepeatI32 fills dst[] with the given int32.
func RepeatI32(dst []int32, val int32) {
	for i := range dst {
		dst[i] = val
	}
}

// RepeatU32 fills dst[] with the given uint32.
func RepeatU32(dst []uint32, val uint32) {
	for i := range dst {
		dst[i] = val
	}
}

// IndexU16 returns the index of the first instance of val in main, or -1 if
// val is not present in main.
func IndexU16(main []uint16, val uint16) int {
	for i, v := range main {
		if v == val {
			return i
		}
	}
	return -1
}

// IndexU32 returns the index of the first instance of val in main, or -1 if
// val is not present in main.
func IndexU32(main []uint32, val uint32) int {
	for i, v := range main {
		if v == val {
			return i
		}
	}
	return -1
}

// LastIndexU32 returns the index of the last instance of val in main, or -1
// if val is not present in main.
func LastIndexU32(main []uint32, val uint32) int {
	for i := len(main) - 1; i >= 0; i-- {
		if main[i] == val {
			return i
		}
	}
	return -1
}
