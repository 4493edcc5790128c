// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str_test

import (
	"testing"

	"github.com/fastbytes/base/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cstr builds a byte slice holding s followed by a NUL and then junk, so
// tests exercise the logical-value rule rather than slice length.
func cstr(s string) []byte {
	b := make([]byte, len(s)+3)
	copy(b, s)
	b[len(s)+1] = 0xee
	b[len(s)+2] = 0xff
	return b
}

func TestLength(t *testing.T) {
	assert.Equal(t, 5, str.Length(cstr("hello")))
	assert.Equal(t, 0, str.Length(cstr("")))
	assert.Equal(t, 3, str.Length([]byte("abc")))
	assert.Equal(t, 2, str.Length([]byte{'a', 'b', 0, 'c'}))
}

func TestClamp(t *testing.T) {
	s := cstr("hello")
	assert.Equal(t, 3, str.Clamp(s, 3))
	assert.Equal(t, 5, str.Clamp(s, 5))
	assert.Equal(t, 5, str.Clamp(s, 100))
	assert.Equal(t, 0, str.Clamp(s, 0))
	assert.Panics(t, func() { str.Clamp(s, -1) })
}

func TestCopy(t *testing.T) {
	dst := make([]byte, 8)
	n := str.Copy(dst, cstr("hi"))
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{'h', 'i', 0}, dst[:3])

	// Truncation keeps the terminator.
	dst = make([]byte, 4)
	n = str.Copy(dst, cstr("hello"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{'h', 'e', 'l', 0}, dst)

	// Zero-length destination is untouched.
	n = str.Copy(nil, cstr("hello"))
	assert.Equal(t, 5, n)
}

func TestConcat(t *testing.T) {
	dst := make([]byte, 16)
	str.Copy(dst, cstr("foo"))
	n := str.Concat(dst, cstr("bar"))
	assert.Equal(t, 6, n)
	assert.Equal(t, 6, str.Length(dst))
	assert.Equal(t, []byte("foobar"), dst[:6])

	// Truncated append.
	dst = make([]byte, 5)
	str.Copy(dst, cstr("foo"))
	n = str.Concat(dst, cstr("bar"))
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte{'f', 'o', 'o', 'b', 0}, dst)

	// Full, unterminated destination.
	dst = []byte("full")
	n = str.Concat(dst, cstr("bar"))
	assert.Equal(t, 7, n)
	assert.Equal(t, []byte("full"), dst)
}

func TestClone(t *testing.T) {
	src := cstr("hello")
	d := str.Clone(src)
	require.Equal(t, []byte("hello"), d)
	d[0] = 'j'
	assert.Equal(t, byte('h'), src[0])
	assert.Equal(t, []byte{}, str.Clone(cstr("")))
}

func TestTransform(t *testing.T) {
	dst := make([]byte, 8)
	n := str.Transform(dst, cstr("abc"))
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, str.Compare(dst, cstr("abc")))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, str.Compare(cstr("abc"), []byte("abc")))
	assert.Equal(t, -1, str.Compare(cstr("abc"), cstr("abd")))
	assert.Equal(t, 1, str.Compare(cstr("abd"), cstr("abc")))
	assert.Equal(t, -1, str.Compare(cstr("ab"), cstr("abc")))
	assert.Equal(t, 1, str.Compare(cstr("abc"), cstr("ab")))
	// Bytes compare unsigned.
	assert.Equal(t, 1, str.Compare([]byte{0x80}, []byte{0x7f}))
	// The result is always exactly -1, 0, or 1, even when the differing
	// bytes are further apart.
	assert.Equal(t, 1, str.Compare(cstr("abz"), cstr("aba")))
	assert.Equal(t, -1, str.Compare(cstr("aba"), cstr("abz")))
	assert.Equal(t, 1, str.CompareN(cstr("z"), cstr("a"), 1))
}

func TestCompareN(t *testing.T) {
	assert.Equal(t, 0, str.CompareN(cstr("abcx"), cstr("abcy"), 3))
	assert.Equal(t, -1, str.CompareN(cstr("abcx"), cstr("abcy"), 4))
	assert.Equal(t, 0, str.CompareN(cstr("abc"), cstr("abc"), 100))
	assert.Equal(t, 0, str.CompareN(cstr("x"), cstr("y"), 0))
	assert.Panics(t, func() { str.CompareN(nil, nil, -1) })
}

func TestCompareFold(t *testing.T) {
	assert.Equal(t, 0, str.CompareFold(cstr("HeLLo"), cstr("hello")))
	assert.Equal(t, -1, str.CompareFold(cstr("Abc"), cstr("abd")))
	assert.Equal(t, 1, str.CompareFold(cstr("aBd"), cstr("Abc")))
	// Non-letters do not fold.
	assert.NotEqual(t, 0, str.CompareFold([]byte{'['}, []byte{'{'}))
	assert.Equal(t, 0, str.CompareFoldN(cstr("ABCx"), cstr("abcy"), 3))
	assert.Panics(t, func() { str.CompareFoldN(nil, nil, -1) })
}
