// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

// IndexByte returns the index of the first byte of s equal to c, or -1 if c
// does not occur in s.
func IndexByte(s []byte, c byte) int {
	return indexByteEngine(s, c)
}

// LastIndexByte returns the index of the last byte of s equal to c, or -1 if
// c does not occur in s.
func LastIndexByte(s []byte, c byte) int {
	return lastIndexByteEngine(s, c)
}
