// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"reflect"
	"unsafe"
)

// moveEngine transfers n bytes between regions that may overlap.  The
// overlap relation is recomputed on every call and never cached:
// disjoint regions delegate to the copy engine, forward overlap (dest below
// src) runs low-to-high, backward overlap runs high-to-low, and overlapping
// regions of bulkMoveMin bytes or more go to the platform block move, which
// is direction-correct in both orders.
func moveEngine(dst, src []byte, n int) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	srcHeader := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	d := unsafe.Pointer(dstHeader.Data)
	s := unsafe.Pointer(srcHeader.Data)
	if n == 0 || d == s {
		return
	}
	if n <= smallMax {
		// All loads in a copySmall band precede all stores, so the small
		// ladder is overlap-safe as-is; an exact 64-byte move takes its
		// dedicated two-block form.
		copySmall(d, s, n)
		return
	}
	dp := uintptr(d)
	sp := uintptr(s)
	if dp < sp {
		if sp-dp >= uintptr(n) {
			copyEngineRaw(d, s, n)
			return
		}
		if n >= bulkMoveMin {
			bulkMove(d, s, uintptr(n))
			return
		}
		moveForward(d, s, n)
		return
	}
	if dp-sp >= uintptr(n) {
		copyEngineRaw(d, s, n)
		return
	}
	if n >= bulkMoveMin {
		bulkMove(d, s, uintptr(n))
		return
	}
	moveBackward(d, s, n)
}

// copyEngineRaw re-runs the copy engine's tier ladder on raw pointers; used
// once overlap has been ruled out.
func copyEngineRaw(d, s unsafe.Pointer, n int) {
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
	bulkMove(d, s, uintptr(n))
}

// moveForward copies low-to-high: each destination write only ever clobbers
// source bytes already consumed.  128-byte unrolled, 32-byte block granule.
func moveForward(d, s unsafe.Pointer, n int) {
	for n >= 128 {
		copy32(d, s)
		copy32(unsafe.Add(d, 32), unsafe.Add(s, 32))
		copy32(unsafe.Add(d, 64), unsafe.Add(s, 64))
		copy32(unsafe.Add(d, 96), unsafe.Add(s, 96))
		d = unsafe.Add(d, 128)
		s = unsafe.Add(s, 128)
		n -= 128
	}
	for n >= 32 {
		copy32(d, s)
		d = unsafe.Add(d, 32)
		s = unsafe.Add(s, 32)
		n -= 32
	}
	if n > 0 {
		copySmall(d, s, n)
	}
}

// moveBackward copies high-to-low, the mirror of moveForward.
func moveBackward(d, s unsafe.Pointer, n int) {
	for n >= 128 {
		n -= 128
		copy32(unsafe.Add(d, n+96), unsafe.Add(s, n+96))
		copy32(unsafe.Add(d, n+64), unsafe.Add(s, n+64))
		copy32(unsafe.Add(d, n+32), unsafe.Add(s, n+32))
		copy32(unsafe.Add(d, n), unsafe.Add(s, n))
	}
	for n >= 32 {
		n -= 32
		copy32(unsafe.Add(d, n), unsafe.Add(s, n))
	}
	if n > 0 {
		copySmall(d, s, n)
	}
}
