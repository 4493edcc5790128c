// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"golang.org/x/sys/cpu"
)

// CPU capability is probed exactly once, here; every engine reads the result
// through package variables so the per-call tier decision is a pure function
// of operation size.

// hasAVX2 reports whether 256-bit vector units are available.  When false,
// the engines behave as if the widest store group were 16 bytes; results are
// identical either way.
var hasAVX2 bool

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	if hasAVX2 {
		bytesPerVec = 32
		log2BytesPerVec = 5
	} else {
		bytesPerVec = 16
		log2BytesPerVec = 4
	}
	bulkMove = runtimeMemmove
}
