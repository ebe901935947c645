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

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/codetidy/codetidy/internal/arena"
)

type (
	index    = arena.Index
	recArena = arena.Arena[rec]
)

// Nil is the nil [Token], i.e., the zero value.
//
// Every traversal and search operation returns Nil instead of failing, and
// every operation on Nil returns Nil (or a zero value), so chains of lookups
// degrade safely. Terminal consumers must still check [Token.Nil] before
// acting on a result.
var Nil Token

// Token is a single element of a [Stream].
//
// A Token is a cheap value: a stream pointer plus a stable arena index.
// Copying it is free and does not pin any memory.
type Token struct {
	stream *Stream
	id     index
}

// Nil returns whether this is the nil token.
func (t Token) Nil() bool {
	return t.stream == nil || t.id.Nil()
}

// Stream returns the stream this token belongs to, or nil for the nil token.
func (t Token) Stream() *Stream {
	return t.stream
}

// ID returns this token's stream-local ID.
func (t Token) ID() ID {
	return t.id
}

// Kind returns what kind of token this is.
//
// Returns [Unrecognized] for the nil token.
func (t Token) Kind() Kind {
	if t.Nil() {
		return Unrecognized
	}
	return t.rec().kind
}

// Role returns the syntactic role assigned to this token upstream.
func (t Token) Role() Role {
	if t.Nil() {
		return RoleNone
	}
	return t.rec().role
}

// Flags returns this token's flag bits.
func (t Token) Flags() Flags {
	if t.Nil() {
		return 0
	}
	return t.rec().flags
}

// Text returns the exact source lexeme. Empty for the nil token.
func (t Token) Text() string {
	if t.Nil() {
		return ""
	}
	return t.rec().text
}

// Line returns the 1-based origin line.
func (t Token) Line() int {
	if t.Nil() {
		return 0
	}
	return t.rec().line
}

// Col returns the 1-based origin column of the first character.
func (t Token) Col() int {
	if t.Nil() {
		return 0
	}
	return t.rec().col
}

// ColEnd returns the 1-based origin column one past the last character.
func (t Token) ColEnd() int {
	if t.Nil() {
		return 0
	}
	return t.rec().colEnd
}

// RenderCol returns the current output column.
func (t Token) RenderCol() int {
	if t.Nil() {
		return 0
	}
	return t.rec().renderCol
}

// Level returns the bracket depth of any kind at this token.
func (t Token) Level() int {
	if t.Nil() {
		return 0
	}
	return t.rec().level
}

// BraceLevel returns the brace-only depth at this token.
func (t Token) BraceLevel() int {
	if t.Nil() {
		return 0
	}
	return t.rec().braceLevel
}

// PreprocLevel returns the preprocessor conditional depth at this token.
func (t Token) PreprocLevel() int {
	if t.Nil() {
		return 0
	}
	return t.rec().ppLevel
}

// NewlineCount returns the number of line breaks this token stands for.
// Zero for anything but a [Newline] token.
func (t Token) NewlineCount() int {
	if t.Nil() || t.rec().kind != Newline {
		return 0
	}
	return t.rec().newlines
}

// IsNewline returns whether this is a [Newline] token.
func (t Token) IsNewline() bool {
	return t.Kind() == Newline
}

// InPreproc returns whether this token lives inside a preprocessor
// directive.
func (t Token) InPreproc() bool {
	return t.Flags().Has(FlagInPreproc)
}

// Width returns the display width of this token's text in terminal columns.
func (t Token) Width() int {
	if t.Nil() {
		return 0
	}
	return uniseg.StringWidth(t.rec().text)
}

// SetRenderCol sets the current output column. No-op on the nil token.
func (t Token) SetRenderCol(col int) {
	if t.Nil() {
		return
	}
	t.rec().renderCol = col
}

// SetCol sets the origin column. No-op on the nil token.
func (t Token) SetCol(col int) {
	if t.Nil() {
		return
	}
	t.rec().col = col
}

// SetColEnd sets the origin end column. No-op on the nil token.
func (t Token) SetColEnd(col int) {
	if t.Nil() {
		return
	}
	t.rec().colEnd = col
}

// SetKind rewrites this token's kind. No-op on the nil token.
//
// Kind rewrites are for upstream producers (retagging an identifier as a
// call once the following paren is seen); the rule engines never change a
// kind.
func (t Token) SetKind(kind Kind) {
	if t.Nil() {
		return
	}
	t.rec().kind = kind
}

// SetLevel sets the bracket depth. No-op on the nil token.
func (t Token) SetLevel(level int) {
	if t.Nil() {
		return
	}
	t.rec().level = level
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.Nil() {
		return "{nil}"
	}
	return fmt.Sprintf("{%d %v %q}", t.id, t.Kind(), t.Text())
}

func (t Token) rec() *rec {
	return t.stream.arena.Deref(t.id)
}

func (t Token) wrap(id index) Token {
	if id.Nil() {
		return Nil
	}
	return Token{t.stream, id}
}
