// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mem provides tiered implementations of the classic byte-span
// primitives (copy, move, fill, scan, compare) which the compiler cannot be
// trusted to keep competitive with a tuned platform C library.
//
// Every engine dispatches on operation size: tiny operations take a loop-free
// branch ladder of overlapping head/tail word stores, medium operations take
// branchless wide-block store sequences, and large operations run an unrolled
// loop behind a destination-alignment prologue.  Very large copies and
// zero-fills are routed to the runtime's bulk primitives, which issue
// non-temporal stores and the trailing fence those stores require.  The tier
// breakpoints are package constants; the hardware-width decision is made once
// at init() from CPU feature probes, and every tier produces byte-for-byte
// the result of a naive reference loop.
//
// All functions here are pure: they inspect nothing but their arguments and
// retain no state between calls, so they are trivially safe to call from
// multiple goroutines on disjoint memory.  Callers own the access discipline
// for the spans they pass in; Copy's regions must not overlap (that is Move's
// job), and nothing here synchronizes anything.
//
// Two classes of functions are exported:
//
// - Functions with 'Unsafe' in their names are the most performant, but do
// not validate documented preconditions, and may have the unusual property of
// writing a few bytes *past* the end of the given slice.  The MakeUnsafe()
// function and its relatives allocate byte-slices with sufficient extra
// capacity for all such functions to work properly.
//
// - Their safe analogues work properly on ordinary slices, never touch memory
// outside the given spans, and panic when a cheaply checkable precondition is
// not met.
package mem
