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

// indexByteEngine returns the index of the first byte equal to c, or -1.
//
// Tiers: byte loop below 16, then 8-byte has-zero-byte windows, and for 64
// bytes and up a block loop of four word windows whose match masks are
// OR-combined so a clean block costs one test.  Trailing-zeros localization
// of a forward mask is exact: a borrow artifact can only appear above a true
// match within the same word.
func indexByteEngine(s []byte, c byte) int {
	n := len(s)
	if n < 16 {
		for i := 0; i < n; i++ {
			if s[i] == c {
				return i
			}
		}
		return -1
	}
	hdr := (*reflect.SliceHeader)(unsafe.Pointer(&s))
	p := unsafe.Pointer(hdr.Data)
	w := broadcastByte(c)
	i := 0
	if n >= 64 {
		for ; i+32 <= n; i += 32 {
			m0 := zeroByteMask(loadWord(unsafe.Add(p, i)) ^ w)
			m1 := zeroByteMask(loadWord(unsafe.Add(p, i+8)) ^ w)
			m2 := zeroByteMask(loadWord(unsafe.Add(p, i+16)) ^ w)
			m3 := zeroByteMask(loadWord(unsafe.Add(p, i+24)) ^ w)
			if m0|m1|m2|m3 == 0 {
				continue
			}
			if m0 != 0 {
				return i + (bits.TrailingZeros64(uint64(m0)) >> 3)
			}
			if m1 != 0 {
				return i + 8 + (bits.TrailingZeros64(uint64(m1)) >> 3)
			}
			if m2 != 0 {
				return i + 16 + (bits.TrailingZeros64(uint64(m2)) >> 3)
			}
			return i + 24 + (bits.TrailingZeros64(uint64(m3)) >> 3)
		}
	}
	for ; i+8 <= n; i += 8 {
		if m := zeroByteMask(loadWord(unsafe.Add(p, i)) ^ w); m != 0 {
			return i + (bits.TrailingZeros64(uint64(m)) >> 3)
		}
	}
	for ; i < n; i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// lastIndexByteEngine is the high-to-low mirror of indexByteEngine.  A
// backward mask's most significant set bit may be a borrow artifact, so a
// flagged word is re-verified bytewise; the artifact guarantees a true match
// below it in the same word, so the verification never comes up empty.
func lastIndexByteEngine(s []byte, c byte) int {
	n := len(s)
	if n < 16 {
		for i := n - 1; i >= 0; i-- {
			if s[i] == c {
				return i
			}
		}
		return -1
	}
	hdr := (*reflect.SliceHeader)(unsafe.Pointer(&s))
	p := unsafe.Pointer(hdr.Data)
	w := broadcastByte(c)
	i := n
	if n >= 64 {
		for i >= 32 {
			i -= 32
			m0 := zeroByteMask(loadWord(unsafe.Add(p, i)) ^ w)
			m1 := zeroByteMask(loadWord(unsafe.Add(p, i+8)) ^ w)
			m2 := zeroByteMask(loadWord(unsafe.Add(p, i+16)) ^ w)
			m3 := zeroByteMask(loadWord(unsafe.Add(p, i+24)) ^ w)
			if m0|m1|m2|m3 == 0 {
				continue
			}
			if m3 != 0 {
				if j := lastInWord(s, i+24, c); j >= 0 {
					return j
				}
			}
			if m2 != 0 {
				if j := lastInWord(s, i+16, c); j >= 0 {
					return j
				}
			}
			if m1 != 0 {
				if j := lastInWord(s, i+8, c); j >= 0 {
					return j
				}
			}
			if j := lastInWord(s, i, c); j >= 0 {
				return j
			}
		}
	}
	for i >= 8 {
		i -= 8
		if zeroByteMask(loadWord(unsafe.Add(p, i))^w) != 0 {
			if j := lastInWord(s, i, c); j >= 0 {
				return j
			}
		}
	}
	for i--; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// lastInWord scans the 8-byte window starting at base high-to-low.
func lastInWord(s []byte, base int, c byte) int {
	for j := base + 7; j >= base; j-- {
		if s[j] == c {
			return j
		}
	}
	return -1
}
