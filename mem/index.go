// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem

// Index returns the index of the first occurrence of needle in haystack, or
// -1 if needle is not present.  An empty needle matches at 0; a needle
// longer than the haystack never matches.
//
// The search scans for the needle's first byte, rejects candidates on their
// last byte, and only then verifies the full needle, so mismatching
// candidates are usually discarded without a comparison call.
func Index(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}
	if len(needle) == 1 {
		return IndexByte(haystack, needle[0])
	}
	first := needle[0]
	last := needle[len(needle)-1]
	maxStart := len(haystack) - len(needle)
	for start := 0; start <= maxStart; {
		rel := IndexByte(haystack[start:maxStart+1], first)
		if rel < 0 {
			return -1
		}
		idx := start + rel
		if haystack[idx+len(needle)-1] == last && CompareN(haystack[idx:], needle, len(needle)) == 0 {
			return idx
		}
		start = idx + 1
	}
	return -1
}
