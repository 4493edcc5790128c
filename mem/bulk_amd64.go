// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package mem

import (
	"unsafe"
)

// The runtime's bulk primitives are the platform's block-move layer: they
// select REP MOVSB/STOSB or vector loops per CPU, switch to non-temporal
// stores above their own thresholds, and issue the fence those stores
// require before returning.  Engines route to them where a software loop
// stops winning: overlapping moves at bulkMoveMin and up (runtime.memmove is
// direction-correct for both overlap orders), copies at streamingMin and up,
// and large zero-fills.

//go:linkname runtimeMemmove runtime.memmove
func runtimeMemmove(to, from unsafe.Pointer, n uintptr)

//go:noescape
//go:linkname memclrNoHeapPointers runtime.memclrNoHeapPointers
func memclrNoHeapPointers(ptr unsafe.Pointer, n uintptr)

// bulkMove is the capability-table entry for the hardware block move; set at
// init().  On targets without an equivalent primitive the vector-loop tier
// runs unconditionally instead.
var bulkMove func(to, from unsafe.Pointer, n uintptr)
