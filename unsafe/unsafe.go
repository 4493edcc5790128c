// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package unsafe provides zero-copy conversions between the slice and string
// shapes the primitive engines work over.  Nothing here allocates; every
// returned value shares memory with its argument.
package unsafe

import (
	"reflect"
	"unsafe"
)

// BytesToString casts src to a string without extra memory allocation.  The
// string returned by this function shares memory with "src".
func BytesToString(src []byte) (d string) {
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dh := (*reflect.StringHeader)(unsafe.Pointer(&d))
	dh.Data = sh.Data
	dh.Len = sh.Len
	return d
}

// StringToBytes casts src to []byte without extra memory allocation.  The
// data returned by this function shares memory with "src"; the caller must
// not write through it.
func StringToBytes(src string) (d []byte) {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&src))
	dh := (*reflect.SliceHeader)(unsafe.Pointer(&d))
	dh.Data = sh.Data
	dh.Len = sh.Len
	dh.Cap = sh.Len
	return d
}

// ExtendBytes extends the given byte slice, without zero-initializing the
// new storage space.  The caller must guarantee that cap(*dptr) >= newLen.
func ExtendBytes(dptr *[]byte, newLen int) {
	if cap(*dptr) < newLen {
		panic(newLen)
	}
	dh := (*reflect.SliceHeader)(unsafe.Pointer(dptr))
	dh.Len = newLen
}

// U16sToBytes reinterprets src as a byte slice covering the same memory.
func U16sToBytes(src []uint16) (d []byte) {
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dh := (*reflect.SliceHeader)(unsafe.Pointer(&d))
	dh.Data = sh.Data
	dh.Len = sh.Len * 2
	dh.Cap = sh.Cap * 2
	return d
}

// U32sToBytes reinterprets src as a byte slice covering the same memory.
func U32sToBytes(src []uint32) (d []byte) {
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dh := (*reflect.SliceHeader)(unsafe.Pointer(&d))
	dh.Data = sh.Data
	dh.Len = sh.Len * 4
	dh.Cap = sh.Cap * 4
	return d
}
