// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str_test

import (
	"testing"

	"github.com/fastbytes/base/str"
	"github.com/stretchr/testify/assert"
)

func TestIndexByte(t *testing.T) {
	s := cstr("hello")
	assert.Equal(t, 2, str.IndexByte(s, 'l'))
	assert.Equal(t, 0, str.IndexByte(s, 'h'))
	assert.Equal(t, 4, str.IndexByte(s, 'o'))
	assert.Equal(t, -1, str.IndexByte(s, 'x'))
	// The terminator itself is findable.
	assert.Equal(t, 5, str.IndexByte(s, 0))
	assert.Equal(t, -1, str.IndexByte([]byte("hello"), 0))
}

func TestLastIndexByte(t *testing.T) {
	s := cstr("hello")
	assert.Equal(t, 3, str.LastIndexByte(s, 'l'))
	assert.Equal(t, -1, str.LastIndexByte(s, 'x'))
	assert.Equal(t, 5, str.LastIndexByte(s, 0))
}

func TestIndexByteOrEnd(t *testing.T) {
	s := cstr("hello")
	assert.Equal(t, 2, str.IndexByteOrEnd(s, 'l'))
	assert.Equal(t, 5, str.IndexByteOrEnd(s, 'x'))
	assert.Equal(t, 5, str.IndexByteOrEnd(s, 0))
	assert.Equal(t, 0, str.IndexByteOrEnd(cstr(""), 'x'))
}

func TestIndex(t *testing.T) {
	s := cstr("the quick brown fox")
	assert.Equal(t, 4, str.Index(s, cstr("quick")))
	assert.Equal(t, 0, str.Index(s, cstr("the")))
	assert.Equal(t, 16, str.Index(s, cstr("fox")))
	assert.Equal(t, -1, str.Index(s, cstr("lazy")))
	assert.Equal(t, 0, str.Index(s, cstr("")))
	assert.Equal(t, -1, str.Index(cstr("fo"), cstr("fox")))
}

func TestIndexFold(t *testing.T) {
	s := cstr("The Quick Brown Fox")
	assert.Equal(t, 4, str.IndexFold(s, cstr("qUiCk")))
	assert.Equal(t, 16, str.IndexFold(s, cstr("FOX")))
	assert.Equal(t, -1, str.IndexFold(s, cstr("lazy")))
	assert.Equal(t, 0, str.IndexFold(s, cstr("")))
}

func TestSpanAccept(t *testing.T) {
	assert.Equal(t, 3, str.SpanAccept(cstr("abcdef"), cstr("cba")))
	assert.Equal(t, 0, str.SpanAccept(cstr("abcdef"), cstr("xyz")))
	assert.Equal(t, 6, str.SpanAccept(cstr("aabbcc"), cstr("abc")))
	assert.Equal(t, 0, str.SpanAccept(cstr(""), cstr("abc")))
	assert.Equal(t, 0, str.SpanAccept(cstr("abc"), cstr("")))
	// Large set forces the bitmap path.
	assert.Equal(t, 10, str.SpanAccept(cstr("0123456789x"), cstr("9876543210")))
}

func TestSpanReject(t *testing.T) {
	assert.Equal(t, 3, str.SpanReject(cstr("abc,def"), cstr(",;")))
	assert.Equal(t, 7, str.SpanReject(cstr("abcdefg"), cstr(",;")))
	assert.Equal(t, 0, str.SpanReject(cstr(",abc"), cstr(",;")))
	assert.Equal(t, 3, str.SpanReject(cstr("abc"), cstr("")))
	assert.Equal(t, 1, str.SpanReject(cstr("xa"), cstr("abcdefghij")))
}

func TestIndexAny(t *testing.T) {
	assert.Equal(t, 3, str.IndexAny(cstr("abc,def"), cstr(",;")))
	assert.Equal(t, -1, str.IndexAny(cstr("abcdef"), cstr(",;")))
	assert.Equal(t, -1, str.IndexAny(cstr("abc"), cstr("")))
	assert.Equal(t, 0, str.IndexAny(cstr(";abc"), cstr(",;")))
	assert.Equal(t, 2, str.IndexAny(cstr("xy0z"), cstr("0123456789")))
}
