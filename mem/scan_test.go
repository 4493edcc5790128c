// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mem_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/fastbytes/base/mem"
	"github.com/stretchr/testify/require"
)

func TestIndexByteScenarios(t *testing.T) {
	s := []byte("hello")
	require.Equal(t, 2, mem.IndexByte(s, 'l'))
	require.Equal(t, 3, mem.LastIndexByte(s, 'l'))
	require.Equal(t, -1, mem.IndexByte(s, 'x'))
	require.Equal(t, -1, mem.LastIndexByte(s, 'x'))
	require.Equal(t, -1, mem.IndexByte(nil, 'x'))
	require.Equal(t, -1, mem.LastIndexByte(nil, 'x'))
}

func TestIndexBytePlanted(t *testing.T) {
	const maxSize = 1025
	arr := mem.MakeUnsafe(maxSize)
	for size := 0; size <= maxSize; size++ {
		s := arr[:size]
		mem.Fill(s, 0x11)
		// Absent needle.
		if got := mem.IndexByte(s, 0x22); got != -1 {
			t.Fatalf("IndexByte found a needle that is not there (size %d, got %d).", size, got)
		}
		if got := mem.LastIndexByte(s, 0x22); got != -1 {
			t.Fatalf("LastIndexByte found a needle that is not there (size %d, got %d).", size, got)
		}
		if size == 0 {
			continue
		}
		// Planted at head, middle, and tail.
		for _, pos := range []int{0, size / 2, size - 1} {
			mem.Fill(s, 0x11)
			s[pos] = 0x22
			if got := mem.IndexByte(s, 0x22); got != pos {
				t.Fatalf("IndexByte: size %d, planted %d, got %d.", size, pos, got)
			}
			if got := mem.LastIndexByte(s, 0x22); got != pos {
				t.Fatalf("LastIndexByte: size %d, planted %d, got %d.", size, pos, got)
			}
		}
		// First/last of two occurrences.
		if size >= 2 {
			mem.Fill(s, 0x11)
			s[0] = 0x22
			s[size-1] = 0x22
			if got := mem.IndexByte(s, 0x22); got != 0 {
				t.Fatalf("IndexByte: size %d, want 0, got %d.", size, got)
			}
			if got := mem.LastIndexByte(s, 0x22); got != size-1 {
				t.Fatalf("LastIndexByte: size %d, want %d, got %d.", size, size-1, got)
			}
		}
	}
}

func TestIndexByteRandom(t *testing.T) {
	const maxSize = 2048
	const nIter = 500
	arr := mem.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		s := arr[sliceStart:sliceEnd]
		for i := range s {
			s[i] = byte(rand.Intn(4))
		}
		c := byte(rand.Intn(4))
		if got, want := mem.IndexByte(s, c), bytes.IndexByte(s, c); got != want {
			t.Fatalf("IndexByte: got %d, want %d.", got, want)
		}
		if got, want := mem.LastIndexByte(s, c), bytes.LastIndexByte(s, c); got != want {
			t.Fatalf("LastIndexByte: got %d, want %d.", got, want)
		}
	}
}

func indexByteSimdSubtask(dst, src []byte, nIter int) int {
	sum := 0
	for iter := 0; iter < nIter; iter++ {
		sum += mem.IndexByte(src, 0xfe)
	}
	return sum
}

func indexByteStandardSubtask(dst, src []byte, nIter int) int {
	sum := 0
	for iter := 0; iter < nIter; iter++ {
		sum += bytes.IndexByte(src, 0xfe)
	}
	return sum
}

func Benchmark_IndexByte(b *testing.B) {
	funcs := []taggedMultiBenchFunc{
		{
			f:   indexByteSimdSubtask,
			tag: "Tiered",
		},
		{
			f:   indexByteStandardSubtask,
			tag: "BytesPkg",
		},
	}
	for _, f := range funcs {
		multiBenchmark(f.f, f.tag+"Short", 0, 150, 9999999, b, multiBenchmarkOpts{srcInit: bytesInit0})
		multiBenchmark(f.f, f.tag+"Long", 0, 249250621, 50, b, multiBenchmarkOpts{srcInit: bytesInit0})
	}
}
