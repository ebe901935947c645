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

package token

// Scope restricts how far a traversal operation may roam relative to
// preprocessor directives.
type Scope int

const (
	// ScopeAll applies no preprocessor filtering.
	ScopeAll Scope = iota
	// ScopePreproc keeps a traversal on the starting token's side of any
	// preprocessor boundary: starting inside a directive, the traversal
	// stops (returns [Nil]) when it would leave the directive; starting
	// outside, tokens inside directives are skipped.
	ScopePreproc
)

// Next returns the token after this one, or [Nil] at the end of the stream.
func (t Token) Next() Token {
	if t.Nil() {
		return Nil
	}
	return t.wrap(t.rec().next)
}

// Prev returns the token before this one, or [Nil] at the start of the
// stream.
func (t Token) Prev() Token {
	if t.Nil() {
		return Nil
	}
	return t.wrap(t.rec().prev)
}

// NextCode returns the next token that is neither a comment nor a newline.
func (t Token) NextCode(scope Scope) Token {
	return t.seek(true, scope, func(tok Token) bool {
		return tok.Kind().IsSkippable()
	})
}

// PrevCode returns the previous token that is neither a comment nor a
// newline.
func (t Token) PrevCode(scope Scope) Token {
	return t.seek(false, scope, func(tok Token) bool {
		return tok.Kind().IsSkippable()
	})
}

// PrevNonComment returns the previous non-comment token. Unlike
// [Token.PrevCode] it does not skip newlines.
func (t Token) PrevNonComment(scope Scope) Token {
	return t.seek(false, scope, func(tok Token) bool {
		return tok.Kind() == Comment
	})
}

// NextOfKind returns the next token of the given kind at the given bracket
// level. A negative level matches any level.
func (t Token) NextOfKind(kind Kind, level int, scope Scope) Token {
	return t.seek(true, scope, func(tok Token) bool {
		return tok.Kind() != kind || (level >= 0 && tok.Level() != level)
	})
}

// MatchingClose returns the close token matching this open-bracket token.
//
// Returns [Nil] if this token is not an open bracket, or if the stream ends
// or drops below this token's level before the matching close is found
// (i.e. the input is unbalanced).
func (t Token) MatchingClose() Token {
	kind := t.Kind()
	if !kind.IsOpen() {
		return Nil
	}
	want := kind.Matching()
	level := t.Level()
	for cur := t.Next(); !cur.Nil(); cur = cur.Next() {
		if cur.Kind() == want && cur.Level() == level {
			return cur
		}
		if cur.Level() < level {
			return Nil
		}
	}
	return Nil
}

// seek walks the stream in one direction, skipping tokens for which skip
// returns true, honoring scope. The starting token itself is never returned.
func (t Token) seek(forward bool, scope Scope, skip func(Token) bool) Token {
	if t.Nil() {
		return Nil
	}
	inPP := t.InPreproc()

	step := Token.Prev
	if forward {
		step = Token.Next
	}

	for cur := step(t); !cur.Nil(); cur = step(cur) {
		if scope == ScopePreproc {
			if inPP && !cur.InPreproc() {
				return Nil
			}
			if !inPP && cur.InPreproc() {
				continue
			}
		}
		if !skip(cur) {
			return cur
		}
	}
	return Nil
}
