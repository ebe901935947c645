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

func TestNextCodeSkipsTrivia(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	s.Append(token.Proto{Kind: token.Comment, Text: "// c"})
	s.Append(token.Proto{Kind: token.Newline, Newlines: 2})
	b := s.Append(token.Proto{Kind: token.Ident, Text: "b"})

	assert.Equal(t, b, a.NextCode(token.ScopeAll))
	assert.Equal(t, a, b.PrevCode(token.ScopeAll))
	assert.True(t, b.NextCode(token.ScopeAll).Nil())
}

func TestPrevNonCommentKeepsNewlines(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	nl := s.Append(token.Proto{Kind: token.Newline})
	s.Append(token.Proto{Kind: token.Comment, Text: "// c"})
	b := s.Append(token.Proto{Kind: token.Ident, Text: "b"})

	// PrevCode would step all the way to "a"; PrevNonComment stops at the
	// newline.
	assert.Equal(t, nl, b.PrevNonComment(token.ScopeAll))
}

func TestNextOfKind(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	open := s.Append(token.Proto{Kind: token.SParenOpen, Text: "(", Level: 0})
	s.Append(token.Proto{Kind: token.Ident, Text: "a", Level: 1})
	s.Append(token.Proto{Kind: token.ParenOpen, Text: "(", Level: 1})
	inner := s.Append(token.Proto{Kind: token.ParenClose, Text: ")", Level: 1})
	outer := s.Append(token.Proto{Kind: token.SParenClose, Text: ")", Level: 0})

	assert.Equal(t, outer, open.NextOfKind(token.SParenClose, 0, token.ScopeAll))
	assert.Equal(t, inner, open.NextOfKind(token.ParenClose, 1, token.ScopeAll))
	// A negative level matches any level.
	assert.Equal(t, inner, open.NextOfKind(token.ParenClose, -1, token.ScopeAll))
	// No match runs off the end.
	assert.True(t, open.NextOfKind(token.BraceClose, -1, token.ScopeAll).Nil())
}

func TestScopePreproc(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := s.Append(token.Proto{Kind: token.Ident, Text: "a"})
	s.Append(token.Proto{Kind: token.Newline})
	d1 := s.Append(token.Proto{Kind: token.Preproc, Text: "#define", Flags: token.FlagInPreproc})
	d2 := s.Append(token.Proto{Kind: token.Preproc, Text: "X", Flags: token.FlagInPreproc})
	s.Append(token.Proto{Kind: token.Newline})
	b := s.Append(token.Proto{Kind: token.Ident, Text: "b"})

	// Outside a directive, directive tokens are skipped.
	assert.Equal(t, b, a.NextCode(token.ScopePreproc))
	assert.Equal(t, a, b.PrevCode(token.ScopePreproc))

	// Inside a directive, the traversal refuses to leave it.
	assert.Equal(t, d2, d1.NextCode(token.ScopePreproc))
	assert.True(t, d2.NextCode(token.ScopePreproc).Nil())
	assert.True(t, d1.PrevCode(token.ScopePreproc).Nil())

	// ScopeAll sees everything.
	assert.Equal(t, d1, a.NextCode(token.ScopeAll))
}

func TestMatchingClose(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	outer := s.Append(token.Proto{Kind: token.FParenOpen, Text: "(", Level: 0})
	s.Append(token.Proto{Kind: token.Ident, Text: "a", Level: 1})
	inner := s.Append(token.Proto{Kind: token.ParenOpen, Text: "(", Level: 1})
	s.Append(token.Proto{Kind: token.Ident, Text: "b", Level: 2})
	innerClose := s.Append(token.Proto{Kind: token.ParenClose, Text: ")", Level: 1})
	outerClose := s.Append(token.Proto{Kind: token.FParenClose, Text: ")", Level: 0})

	assert.Equal(t, outerClose, outer.MatchingClose())
	assert.Equal(t, innerClose, inner.MatchingClose())

	// Non-open tokens have no matching close.
	assert.True(t, innerClose.MatchingClose().Nil())
}

func TestMatchingCloseUnbalanced(t *testing.T) {
	t.Parallel()

	// The close never arrives: the level drops below the open's first.
	s := &token.Stream{}
	open := s.Append(token.Proto{Kind: token.ParenOpen, Text: "(", Level: 1})
	s.Append(token.Proto{Kind: token.Ident, Text: "a", Level: 2})
	s.Append(token.Proto{Kind: token.SParenClose, Text: ")", Level: 0})
	require.True(t, open.MatchingClose().Nil())

	// Or the stream simply ends.
	s2 := &token.Stream{}
	open2 := s2.Append(token.Proto{Kind: token.BraceOpen, Text: "{", Level: 0})
	s2.Append(token.Proto{Kind: token.Ident, Text: "a", Level: 1})
	assert.True(t, open2.MatchingClose().Nil())
}
