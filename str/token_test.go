// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str_test

import (
	"testing"

	"github.com/fastbytes/base/str"
	"github.com/stretchr/testify/assert"
)

func collectTokens(tk *str.Tokenizer) []string {
	var out []string
	for {
		tok, ok := tk.Next()
		if !ok {
			return out
		}
		out = append(out, string(tok))
	}
}

func collectFields(sp *str.Splitter) []string {
	var out []string
	for {
		field, ok := sp.Next()
		if !ok {
			return out
		}
		out = append(out, string(field))
	}
}

func TestTokenizer(t *testing.T) {
	got := collectTokens(str.NewTokenizer(cstr("  a bb  ccc "), cstr(" ")))
	assert.Equal(t, []string{"a", "bb", "ccc"}, got)

	got = collectTokens(str.NewTokenizer(cstr("a,b;;c"), cstr(",;")))
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// Delimiters only.
	got = collectTokens(str.NewTokenizer(cstr(",,,"), cstr(",")))
	assert.Empty(t, got)

	// Empty input.
	got = collectTokens(str.NewTokenizer(cstr(""), cstr(",")))
	assert.Empty(t, got)

	// No delimiters present.
	got = collectTokens(str.NewTokenizer(cstr("abc"), cstr(",")))
	assert.Equal(t, []string{"abc"}, got)
}

func TestSplitter(t *testing.T) {
	got := collectFields(str.NewSplitter(cstr("a,b,,c"), cstr(",")))
	assert.Equal(t, []string{"a", "b", "", "c"}, got)

	// Leading and trailing delimiters yield empty fields.
	got = collectFields(str.NewSplitter(cstr(",a,"), cstr(",")))
	assert.Equal(t, []string{"", "a", ""}, got)

	// Empty input yields one empty field.
	got = collectFields(str.NewSplitter(cstr(""), cstr(",")))
	assert.Equal(t, []string{""}, got)

	// No delimiters present.
	got = collectFields(str.NewSplitter(cstr("abc"), cstr(",;")))
	assert.Equal(t, []string{"abc"}, got)
}

func TestTokenizerSharesInput(t *testing.T) {
	s := cstr("ab cd")
	tk := str.NewTokenizer(s, cstr(" "))
	tok, ok := tk.Next()
	assert.True(t, ok)
	s[0] = 'x'
	assert.Equal(t, []byte("xb"), tok)
}
