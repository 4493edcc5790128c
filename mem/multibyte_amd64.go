// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"reflect"
	"unsafe"
)

// This file mirrors the byte-span engines over 2- and 4-byte elements, for
// callers who deal in wide units.  Most functions take unsafe.Pointer(s) and
// an element count and have names ending in 'Raw'; safe wrappers are
// provided for the common integer element types.

// Memset16Raw assumes dst points to an array of nElem 2-byte elements, and
// valPtr points to a single 2-byte element.  It fills dst with copies of
// *valPtr.
func Memset16Raw(dst, valPtr unsafe.Pointer, nElem int) {
	// Passing the value through a pointer avoids worrying about endianness
	// and leads to cleaner struct-filling code at call sites.
	val := *((*uint16)(valPtr))
	if nElem < BytesPerWord/2 {
		for idx := 0; idx != nElem; idx++ {
			*((*uint16)(dst)) = val
			dst = unsafe.Add(dst, 2)
		}
		return
	}
	valWord := lowU16s * uintptr(val)
	nWordMinus1 := (nElem - 1) >> (Log2BytesPerWord - 1)
	iter := dst
	for widx := 0; widx != nWordMinus1; widx++ {
		storeWord(iter, valWord)
		iter = unsafe.Add(iter, BytesPerWord)
	}
	storeWord(unsafe.Add(dst, nElem*2-BytesPerWord), valWord)
}

// Memset32Raw assumes dst points to an array of nElem 4-byte elements, and
// valPtr points to a single 4-byte element.  It fills dst with copies of
// *valPtr.
func Memset32Raw(dst, valPtr unsafe.Pointer, nElem int) {
	val := *((*uint32)(valPtr))
	if nElem < BytesPerWord/4 {
		if nElem != 0 {
			*((*uint32)(dst)) = val
		}
		return
	}
	valWord := lowU32s * uintptr(val)
	nWordMinus1 := (nElem - 1) >> (Log2BytesPerWord - 2)
	iter := dst
	for widx := 0; widx != nWordMinus1; widx++ {
		storeWord(iter, valWord)
		iter = unsafe.Add(iter, BytesPerWord)
	}
	storeWord(unsafe.Add(dst, nElem*4-BytesPerWord), valWord)
}

// RepeatI16 fills dst[] with the given int16.
func RepeatI16(dst []int16, val int16) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	Memset16Raw(unsafe.Pointer(dstHeader.Data), unsafe.Pointer(&val), dstHeader.Len)
}

// RepeatU16 fills dst[] with the given uint16.
func RepeatU16(dst []uint16, val uint16) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	Memset16Raw(unsafe.Pointer(dstHeader.Data), unsafe.Pointer(&val), dstHeader.Len)
}

// RepeatI32 fills dst[] with the given int32.
func RepeatI32(dst []int32, val int32) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	Memset32Raw(unsafe.Pointer(dstHeader.Data), unsafe.Pointer(&val), dstHeader.Len)
}

// RepeatU32 fills dst[] with the given uint32.
func RepeatU32(dst []uint32, val uint32) {
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	Memset32Raw(unsafe.Pointer(dstHeader.Data), unsafe.Pointer(&val), dstHeader.Len)
}

// IndexU16 returns the index of the first instance of val in main, or -1 if
// val is not present in main.
func IndexU16(main []uint16, val uint16) int {
	n := len(main)
	if n < 8 {
		for i, v := range main {
			if v == val {
				return i
			}
		}
		return -1
	}
	mainHeader := (*reflect.SliceHeader)(unsafe.Pointer(&main))
	p := unsafe.Pointer(mainHeader.Data)
	valWord := lowU16s * uintptr(val)
	i := 0
	for ; i+4 <= n; i += 4 {
		x := loadWord(unsafe.Add(p, i*2)) ^ valWord
		if zeroU16Mask(x) != 0 {
			for j := 0; j < 4; j++ {
				if main[i+j] == val {
					return i + j
				}
			}
		}
	}
	for ; i < n; i++ {
		if main[i] == val {
			return i
		}
	}
	return -1
}

// IndexU32 returns the index of the first instance of val in main, or -1 if
// val is not present in main.
func IndexU32(main []uint32, val uint32) int {
	n := len(main)
	if n < 4 {
		for i, v := range main {
			if v == val {
				return i
			}
		}
		return -1
	}
	mainHeader := (*reflect.SliceHeader)(unsafe.Pointer(&main))
	p := unsafe.Pointer(mainHeader.Data)
	valWord := lowU32s * uintptr(val)
	i := 0
	for ; i+2 <= n; i += 2 {
		x := loadWord(unsafe.Add(p, i*4)) ^ valWord
		if zeroU32Mask(x) != 0 {
			if main[i] == val {
				return i
			}
			if main[i+1] == val {
				return i + 1
			}
		}
	}
	if i < n && main[i] == val {
		return i
	}
	return -1
}

// LastIndexU32 returns the index of the last instance of val in main, or -1
// if val is not present in main.
func LastIndexU32(main []uint32, val uint32) int {
	n := len(main)
	if n < 4 {
		for i := n - 1; i >= 0; i-- {
			if main[i] == val {
				return i
			}
		}
		return -1
	}
	mainHeader := (*reflect.SliceHeader)(unsafe.Pointer(&main))
	p := unsafe.Pointer(mainHeader.Data)
	valWord := lowU32s * uintptr(val)
	i := n
	if n&1 == 1 {
		i--
		if main[i] == val {
			return i
		}
	}
	for i >= 2 {
		i -= 2
		x := loadWord(unsafe.Add(p, i*4)) ^ valWord
		if zeroU32Mask(x) != 0 {
			if main[i+1] == val {
				return i + 1
			}
			if main[i] == val {
				return i
			}
		}
	}
	return -1
}
