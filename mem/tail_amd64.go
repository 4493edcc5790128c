// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"unsafe"
)

// Fixed-width unaligned load/store helpers and the byte-ladder fallbacks
// every tier funnels its remainder through.  All pointer arithmetic in this
// package happens here or in the engine loops; nothing else touches raw
// memory.

const (
	lowBytes  = 0x0101010101010101
	highBytes = 0x8080808080808080
	lowU16s   = 0x0001000100010001
	highU16s  = 0x8000800080008000
	lowU32s   = 0x0000000100000001
	highU32s  = 0x8000000080000000
)

func loadWord(p unsafe.Pointer) uintptr {
	return *(*uintptr)(p)
}

func storeWord(p unsafe.Pointer, w uintptr) {
	*(*uintptr)(p) = w
}

// zeroByteMask returns a word with bit 0x80 of byte i set iff byte i of w is
// zero.  A borrow can set a spurious high bit, but only in a byte above a
// true zero byte of the same word, so trailing-zeros localization is exact
// and callers scanning high-to-low re-verify the word bytewise.
func zeroByteMask(w uintptr) uintptr {
	return (w - lowBytes) &^ w & highBytes
}

// zeroU16Mask is zeroByteMask over 2-byte lanes.
func zeroU16Mask(w uintptr) uintptr {
	return (w - lowU16s) &^ w & highU16s
}

// zeroU32Mask is zeroByteMask over 4-byte lanes.
func zeroU32Mask(w uintptr) uintptr {
	return (w - lowU32s) &^ w & highU32s
}

// broadcastByte replicates val into every byte of a word.
func broadcastByte(val byte) uintptr {
	return lowBytes * uintptr(val)
}

// copy16 transfers 16 bytes as two words.  Both loads are issued before
// either store, so the transfer is correct even when the regions overlap by
// any amount.
func copy16(d, s unsafe.Pointer) {
	a := loadWord(s)
	b := loadWord(unsafe.Add(s, 8))
	storeWord(d, a)
	storeWord(unsafe.Add(d, 8), b)
}

// copy32 transfers 32 bytes, again loading everything before storing.
func copy32(d, s unsafe.Pointer) {
	a := loadWord(s)
	b := loadWord(unsafe.Add(s, 8))
	c := loadWord(unsafe.Add(s, 16))
	e := loadWord(unsafe.Add(s, 24))
	storeWord(d, a)
	storeWord(unsafe.Add(d, 8), b)
	storeWord(unsafe.Add(d, 16), c)
	storeWord(unsafe.Add(d, 24), e)
}

// copy64 and friends assume non-overlapping regions: their component block
// transfers interleave loads and stores.
func copy64(d, s unsafe.Pointer) {
	copy32(d, s)
	copy32(unsafe.Add(d, 32), unsafe.Add(s, 32))
}

func copy128(d, s unsafe.Pointer) {
	copy32(d, s)
	copy32(unsafe.Add(d, 32), unsafe.Add(s, 32))
	copy32(unsafe.Add(d, 64), unsafe.Add(s, 64))
	copy32(unsafe.Add(d, 96), unsafe.Add(s, 96))
}

func copy256(d, s unsafe.Pointer) {
	copy128(d, s)
	copy128(unsafe.Add(d, 128), unsafe.Add(s, 128))
}

// copySmall handles 0 <= n <= 64 as a branch ladder on power-of-two size
// bands, each band performing overlapping head and tail stores instead of a
// loop.  Every load in a band is issued before any store, so the Move engine
// reuses this path unchanged for small overlapping regions; an exact 64-byte
// transfer degenerates to two disjoint 32-byte block stores.
func copySmall(d, s unsafe.Pointer, n int) {
	if n >= 32 {
		h0 := loadWord(s)
		h1 := loadWord(unsafe.Add(s, 8))
		h2 := loadWord(unsafe.Add(s, 16))
		h3 := loadWord(unsafe.Add(s, 24))
		t := unsafe.Add(s, n-32)
		t0 := loadWord(t)
		t1 := loadWord(unsafe.Add(t, 8))
		t2 := loadWord(unsafe.Add(t, 16))
		t3 := loadWord(unsafe.Add(t, 24))
		storeWord(d, h0)
		storeWord(unsafe.Add(d, 8), h1)
		storeWord(unsafe.Add(d, 16), h2)
		storeWord(unsafe.Add(d, 24), h3)
		u := unsafe.Add(d, n-32)
		storeWord(u, t0)
		storeWord(unsafe.Add(u, 8), t1)
		storeWord(unsafe.Add(u, 16), t2)
		storeWord(unsafe.Add(u, 24), t3)
		return
	}
	if n >= 16 {
		h0 := loadWord(s)
		h1 := loadWord(unsafe.Add(s, 8))
		t0 := loadWord(unsafe.Add(s, n-16))
		t1 := loadWord(unsafe.Add(s, n-8))
		storeWord(d, h0)
		storeWord(unsafe.Add(d, 8), h1)
		storeWord(unsafe.Add(d, n-16), t0)
		storeWord(unsafe.Add(d, n-8), t1)
		return
	}
	if n >= 8 {
		a := loadWord(s)
		b := loadWord(unsafe.Add(s, n-8))
		storeWord(d, a)
		storeWord(unsafe.Add(d, n-8), b)
		return
	}
	if n >= 4 {
		a := *(*uint32)(s)
		b := *(*uint32)(unsafe.Add(s, n-4))
		*(*uint32)(d) = a
		*(*uint32)(unsafe.Add(d, n-4)) = b
		return
	}
	if n >= 2 {
		a := *(*uint16)(s)
		b := *(*uint16)(unsafe.Add(s, n-2))
		*(*uint16)(d) = a
		*(*uint16)(unsafe.Add(d, n-2)) = b
		return
	}
	if n == 1 {
		*(*byte)(d) = *(*byte)(s)
	}
}

// copyTail drains 0 <= n < 256 remainder bytes sequentially.  Non-overlapping
// regions only.
func copyTail(d, s unsafe.Pointer, n int) {
	for n >= 32 {
		copy32(d, s)
		d = unsafe.Add(d, 32)
		s = unsafe.Add(s, 32)
		n -= 32
	}
	if n >= 16 {
		copy16(d, s)
		d = unsafe.Add(d, 16)
		s = unsafe.Add(s, 16)
		n -= 16
	}
	if n >= 8 {
		storeWord(d, loadWord(s))
		d = unsafe.Add(d, 8)
		s = unsafe.Add(s, 8)
		n -= 8
	}
	if n >= 4 {
		*(*uint32)(d) = *(*uint32)(s)
		d = unsafe.Add(d, 4)
		s = unsafe.Add(s, 4)
		n -= 4
	}
	if n >= 2 {
		*(*uint16)(d) = *(*uint16)(s)
		d = unsafe.Add(d, 2)
		s = unsafe.Add(s, 2)
		n -= 2
	}
	if n == 1 {
		*(*byte)(d) = *(*byte)(s)
	}
}

// fill32 stores 32 bytes of the broadcast word.
func fill32(d unsafe.Pointer, w uintptr) {
	storeWord(d, w)
	storeWord(unsafe.Add(d, 8), w)
	storeWord(unsafe.Add(d, 16), w)
	storeWord(unsafe.Add(d, 24), w)
}

func fill64(d unsafe.Pointer, w uintptr) {
	fill32(d, w)
	fill32(unsafe.Add(d, 32), w)
}

func fill128(d unsafe.Pointer, w uintptr) {
	fill64(d, w)
	fill64(unsafe.Add(d, 64), w)
}

// fillSmall handles 0 <= n <= 64, mirroring copySmall's band structure.  The
// value arrives pre-broadcast; each band narrows it to the band's store
// width.
func fillSmall(d unsafe.Pointer, w uintptr, n int) {
	if n >= 32 {
		fill32(d, w)
		fill32(unsafe.Add(d, n-32), w)
		return
	}
	if n >= 16 {
		storeWord(d, w)
		storeWord(unsafe.Add(d, 8), w)
		storeWord(unsafe.Add(d, n-16), w)
		storeWord(unsafe.Add(d, n-8), w)
		return
	}
	if n >= 8 {
		storeWord(d, w)
		storeWord(unsafe.Add(d, n-8), w)
		return
	}
	if n >= 4 {
		*(*uint32)(d) = uint32(w)
		*(*uint32)(unsafe.Add(d, n-4)) = uint32(w)
		return
	}
	if n >= 2 {
		*(*uint16)(d) = uint16(w)
		*(*uint16)(unsafe.Add(d, n-2)) = uint16(w)
		return
	}
	if n == 1 {
		*(*byte)(d) = byte(w)
	}
}

// fillTail drains 0 <= n < 128 remainder bytes of a fill.
func fillTail(d unsafe.Pointer, w uintptr, n int) {
	for n >= 32 {
		fill32(d, w)
		d = unsafe.Add(d, 32)
		n -= 32
	}
	for n >= 8 {
		storeWord(d, w)
		d = unsafe.Add(d, 8)
		n -= 8
	}
	if n >= 4 {
		*(*uint32)(d) = uint32(w)
		d = unsafe.Add(d, 4)
		n -= 4
	}
	if n >= 2 {
		*(*uint16)(d) = uint16(w)
		d = unsafe.Add(d, 2)
		n -= 2
	}
	if n == 1 {
		*(*byte)(d) = byte(w)
	}
}
