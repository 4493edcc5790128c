// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package mem

func init() {
	// No accelerated path: the scalar tier serves every size class, with
	// observable behavior identical to the amd64 kernels.
	bytesPerVec = 16
	log2BytesPerVec = 4
}
