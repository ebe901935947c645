// Copyright 2022-2026 The codetidy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/token"
)

func texts(s *token.Stream) []string {
	var out []string
	for tok := range s.All() {
		out = append(out, tok.Text())
	}
	return out
}

func TestStreamAppend(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	assert.True(t, s.Head().Nil())
	assert.True(t, s.Tail().Nil())
	assert.Equal(t, 0, s.Len())

	a := s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	b := s.Append(token.Proto{Kind: token.Ident, Text: "b"})

	assert.Equal(t, a, s.Head())
	assert.Equal(t, b, s.Tail())
	assert.Equal(t, b, a.Next())
	assert.Equal(t, a, b.Prev())
	assert.True(t, a.Prev().Nil())
	assert.True(t, b.Next().Nil())
	assert.Equal(t, []string{"a", "b"}, texts(s))
}

func TestStreamInsert(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	c := s.Append(token.Proto{Kind: token.Ident, Text: "c"})

	b := s.InsertBefore(c, token.Proto{Kind: token.Ident, Text: "b"})
	require.False(t, b.Nil())
	assert.Equal(t, []string{"a", "b", "c"}, texts(s))

	// Inserting at the ends moves head/tail.
	s.InsertBefore(a, token.Proto{Kind: token.Ident, Text: "start"})
	s.InsertAfter(c, token.Proto{Kind: token.Ident, Text: "end"})
	assert.Equal(t, "start", s.Head().Text())
	assert.Equal(t, "end", s.Tail().Text())
	assert.Equal(t, []string{"start", "a", "b", "c", "end"}, texts(s))
}

func TestStreamInsertNil(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	s.Append(token.Proto{Kind: token.Ident, Text: "a"})

	assert.True(t, s.InsertBefore(token.Nil, token.Proto{Text: "x"}).Nil())
	assert.True(t, s.InsertAfter(token.Nil, token.Proto{Text: "x"}).Nil())
	assert.Equal(t, []string{"a"}, texts(s))

	// Tokens from another stream are rejected, not spliced.
	other := &token.Stream{}
	foreign := other.Append(token.Proto{Kind: token.Ident, Text: "f"})
	assert.True(t, s.InsertAfter(foreign, token.Proto{Text: "x"}).Nil())
}

func TestStreamRemove(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	b := s.Append(token.Proto{Kind: token.Ident, Text: "b"})
	c := s.Append(token.Proto{Kind: token.Ident, Text: "c"})

	s.Remove(b)
	assert.Equal(t, []string{"a", "c"}, texts(s))
	assert.Equal(t, c, a.Next())
	assert.Equal(t, a, c.Prev())

	s.Remove(a)
	s.Remove(c)
	assert.True(t, s.Head().Nil())
	assert.True(t, s.Tail().Nil())

	// Removing the nil token is a no-op.
	s.Remove(token.Nil)
}

func TestStreamIDsStableAcrossSplices(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	var toks []token.Token
	for _, text := range []string{"a", "b", "c", "d"} {
		toks = append(toks, s.Append(token.Proto{Kind: token.Ident, Text: text}))
	}

	// Cursors held across unrelated splices keep pointing at their tokens.
	s.InsertAfter(toks[0], token.Proto{Kind: token.Ident, Text: "x"})
	s.Remove(toks[2])
	assert.Equal(t, "b", toks[1].Text())
	assert.Equal(t, "d", toks[3].Text())
	assert.Equal(t, []string{"a", "x", "b", "d"}, texts(s))
}

func TestNilTokenChains(t *testing.T) {
	t.Parallel()

	// Every lookup on Nil yields Nil or a zero value, so chains never panic.
	assert.True(t, token.Nil.Next().Prev().NextCode(token.ScopeAll).Nil())
	assert.Equal(t, token.Unrecognized, token.Nil.Kind())
	assert.Equal(t, "", token.Nil.Text())
	assert.Equal(t, 0, token.Nil.Level())
	assert.Equal(t, 0, token.Nil.Width())
	assert.False(t, token.Nil.IsNewline())

	// Setters on Nil are no-ops rather than panics.
	token.Nil.SetRenderCol(5)
	token.Nil.SetLevel(5)
}

func TestNewlineProtoDefaultsToOne(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	nl := s.Append(token.Proto{Kind: token.Newline})
	assert.Equal(t, 1, nl.NewlineCount())

	nl3 := s.Append(token.Proto{Kind: token.Newline, Newlines: 3})
	assert.Equal(t, 3, nl3.NewlineCount())

	word := s.Append(token.Proto{Kind: token.Ident, Text: "w"})
	assert.Equal(t, 0, word.NewlineCount())
}
