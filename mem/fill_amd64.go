// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"reflect"
	"unsafe"
)

// fillEngine sets n bytes to val.  The value is broadcast to a full word
// before any band's store sequence; the band structure mirrors the copy
// engine's.
func fillEngine(dst []byte, val byte, n int) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	d := unsafe.Pointer(dstHeader.Data)
	w := broadcastByte(val)
	if n <= smallMax {
		fillSmall(d, w, n)
		return
	}
	if n <= 256 {
		fillMedium(d, w, n)
		return
	}
	if val == 0 && n >= zeroStreamMin {
		// The runtime clear primitive switches to non-temporal stores and
		// fences at this size; byte slices hold no pointers, so it applies.
		memclrNoHeapPointers(d, uintptr(n))
		return
	}
	fillLarge(d, w, n)
}

// fillMedium handles smallMax < n <= 256 with branchless overlapping
// head/tail block stores.
func fillMedium(d unsafe.Pointer, w uintptr, n int) {
	if n <= 128 {
		fill64(d, w)
		fill64(unsafe.Add(d, n-64), w)
		return
	}
	fill128(d, w)
	fill128(unsafe.Add(d, n-128), w)
}

// fillLarge aligns the destination to a 32-byte boundary with one unaligned
// block store, then runs a 128-byte unrolled aligned loop.
func fillLarge(d unsafe.Pointer, w uintptr, n int) {
	misalign := int(uintptr(d) & 31)
	if misalign != 0 {
		advance := 32 - misalign
		fill32(d, w)
		d = unsafe.Add(d, advance)
		n -= advance
	}
	for n >= 128 {
		fill128(d, w)
		d = unsafe.Add(d, 128)
		n -= 128
	}
	if n > 0 {
		fillTail(d, w, n)
	}
}

// fillWordsUnsafe stores whole words only, rounding n up to a word boundary.
func fillWordsUnsafe(dst []byte, val byte, n int) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	w := broadcastByte(val)
	nWord := DivUpPow2(n, BytesPerWord, Log2BytesPerWord)
	iter := unsafe.Pointer(dstHeader.Data)
	for widx := 0; widx < nWord; widx++ {
		storeWord(iter, w)
		iter = unsafe.Add(iter, BytesPerWord)
	}
}
