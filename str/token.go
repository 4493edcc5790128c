// Copyright 2026 FastBytes Authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package str

// A Tokenizer yields the nonempty tokens of a byte string, treating any run
// of delimiter bytes as a single separator.  Leading and trailing delimiter
// runs produce no tokens.
type Tokenizer struct {
	rest   []byte
	delims []byte
}

// NewTokenizer returns a Tokenizer over the logical value of s, splitting
// on the bytes in the logical value of delims.
func NewTokenizer(s, delims []byte) *Tokenizer {
	return &Tokenizer{
		rest:   s[:Length(s)],
		delims: delims[:Length(delims)],
	}
}

// Next returns the next token, or (nil, false) when the input is exhausted.
// Returned tokens share memory with the tokenizer's input.
func (t *Tokenizer) Next() ([]byte, bool) {
	start := SpanAccept(t.rest, t.delims)
	t.rest = t.rest[start:]
	if len(t.rest) == 0 {
		return nil, false
	}
	end := SpanReject(t.rest, t.delims)
	tok := t.rest[:end]
	t.rest = t.rest[end:]
	return tok, true
}

// A Splitter yields the fields of a byte string separated by single
// delimiter bytes.  Adjacent delimiters produce empty fields, and a
// delimiter at either end of the input produces an empty field there.
type Splitter struct {
	rest   []byte
	delims []byte
	done   bool
}

// NewSplitter returns a Splitter over the logical value of s, splitting on
// the bytes in the logical value of delims.
func NewSplitter(s, delims []byte) *Splitter {
	return &Splitter{
		rest:   s[:Length(s)],
		delims: delims[:Length(delims)],
	}
}

// Next returns the next field, or (nil, false) when the input is exhausted.
// Returned fields share memory with the splitter's input.  An empty input
// yields exactly one empty field.
func (s *Splitter) Next() ([]byte, bool) {
	if s.done {
		return nil, false
	}
	pos := IndexAny(s.rest, s.delims)
	if pos == -1 {
		field := s.rest
		s.rest = nil
		s.done = true
		return field, true
	}
	field := s.rest[:pos]
	s.rest = s.rest[pos+1:]
	return field, true
}
