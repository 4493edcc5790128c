// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"reflect"
	"unsafe"
)

// copyEngine transfers n bytes between non-overlapping regions.  Tier
// selection is a pure function of n; only copyLarge additionally consults
// the destination address's low bits, to decide its alignment prologue.
func copyEngine(dst, src []byte, n int) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	srcHeader := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	d := unsafe.Pointer(dstHeader.Data)
	s := unsafe.Pointer(srcHeader.Data)
	if n <= smallMax {
		copySmall(d, s, n)
		return
	}
	if n <= mediumMax {
		copyMedium(d, s, n)
		return
	}
	if n < streamingMin {
		copyLarge(d, s, n)
		return
	}
	// The destination will not be re-read soon at this size; route to the
	// platform bulk move, whose non-temporal stores bypass the cache and
	// which fences before returning.
	bulkMove(d, s, uintptr(n))
}

// copyMedium handles smallMax < n <= mediumMax with branchless overlapping
// head/tail block stores sized 64/128/256 bytes, so that no size in a band
// pays loop setup or an unpredictable branch.
func copyMedium(d, s unsafe.Pointer, n int) {
	if n <= 128 {
		copy64(d, s)
		copy64(unsafe.Add(d, n-64), unsafe.Add(s, n-64))
		return
	}
	if n <= 256 {
		copy128(d, s)
		copy128(unsafe.Add(d, n-128), unsafe.Add(s, n-128))
		return
	}
	if n <= 512 {
		if n == 512 {
			copy256(d, s)
			copy256(unsafe.Add(d, 256), unsafe.Add(s, 256))
			return
		}
		copy256(d, s)
		copyTail(unsafe.Add(d, 256), unsafe.Add(s, 256), n-256)
		return
	}
	// 513..1024: short unaligned chunk loop, skipping the alignment
	// prologue in this transition zone.
	for n >= 256 {
		copy256(d, s)
		d = unsafe.Add(d, 256)
		s = unsafe.Add(s, 256)
		n -= 256
	}
	if n > 0 {
		copyTail(d, s, n)
	}
}

// copyLarge handles mediumMax < n < streamingMin: one unaligned 32-byte
// store brings the destination to a 32-byte boundary, then a 256-byte
// unrolled loop runs with aligned stores, with the remainder funneled back
// through copyTail.
func copyLarge(d, s unsafe.Pointer, n int) {
	misalign := int(uintptr(d) & 31)
	if misalign != 0 {
		advance := 32 - misalign
		copy32(d, s)
		d = unsafe.Add(d, advance)
		s = unsafe.Add(s, advance)
		n -= advance
	}
	for n >= 256 {
		copy256(d, s)
		d = unsafe.Add(d, 256)
		s = unsafe.Add(s, 256)
		n -= 256
	}
	if n > 0 {
		copyTail(d, s, n)
	}
}
