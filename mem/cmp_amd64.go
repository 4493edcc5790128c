// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"math/bits"
	"reflect"
	"unsafe"
)

// compareNEngine lexicographically compares a[0:n] with b[0:n], returning
// the byte difference a[i]-b[i] at the first differing index, or 0.  The
// engine never reads past the first difference's enclosing block.
//
// Below 32 bytes this is a word XOR loop that descends to the differing byte
// via trailing-zeros; above, a 128-byte unrolled loop skips equal 32-byte
// blocks on a single all-zero test each.
func compareNEngine(a, b []byte, n int) int {
	aHdr := (*reflect.SliceHeader)(unsafe.Pointer(&a))
	bHdr := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	pa := unsafe.Pointer(aHdr.Data)
	pb := unsafe.Pointer(bHdr.Data)
	i := 0
	if n >= 32 {
		for ; i+128 <= n; i += 128 {
			if d := diff32(pa, pb, i); d >= 0 {
				return byteDiff(pa, pb, d)
			}
			if d := diff32(pa, pb, i+32); d >= 0 {
				return byteDiff(pa, pb, d)
			}
			if d := diff32(pa, pb, i+64); d >= 0 {
				return byteDiff(pa, pb, d)
			}
			if d := diff32(pa, pb, i+96); d >= 0 {
				return byteDiff(pa, pb, d)
			}
		}
		for ; i+32 <= n; i += 32 {
			if d := diff32(pa, pb, i); d >= 0 {
				return byteDiff(pa, pb, d)
			}
		}
	}
	for ; i+8 <= n; i += 8 {
		x := loadWord(unsafe.Add(pa, i)) ^ loadWord(unsafe.Add(pb, i))
		if x != 0 {
			return byteDiff(pa, pb, i+(bits.TrailingZeros64(uint64(x))>>3))
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// diff32 XORs one 32-byte block and returns the absolute offset of its first
// differing byte, or -1 when the block is equal.
func diff32(pa, pb unsafe.Pointer, base int) int {
	x0 := loadWord(unsafe.Add(pa, base)) ^ loadWord(unsafe.Add(pb, base))
	x1 := loadWord(unsafe.Add(pa, base+8)) ^ loadWord(unsafe.Add(pb, base+8))
	x2 := loadWord(unsafe.Add(pa, base+16)) ^ loadWord(unsafe.Add(pb, base+16))
	x3 := loadWord(unsafe.Add(pa, base+24)) ^ loadWord(unsafe.Add(pb, base+24))
	if x0|x1|x2|x3 == 0 {
		return -1
	}
	if x0 != 0 {
		return base + (bits.TrailingZeros64(uint64(x0)) >> 3)
	}
	if x1 != 0 {
		return base + 8 + (bits.TrailingZeros64(uint64(x1)) >> 3)
	}
	if x2 != 0 {
		return base + 16 + (bits.TrailingZeros64(uint64(x2)) >> 3)
	}
	return base + 24 + (bits.TrailingZeros64(uint64(x3)) >> 3)
}

func byteDiff(pa, pb unsafe.Pointer, idx int) int {
	return int(*(*byte)(unsafe.Add(pa, idx))) - int(*(*byte)(unsafe.Add(pb, idx)))
}
