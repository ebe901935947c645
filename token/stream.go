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

import "iter"

// ID is a stream-local handle for a token. The zero ID is the nil token.
//
// IDs are stable: insertions and removals elsewhere in the stream never
// invalidate an ID that is still live, which is what lets the rule engines
// splice tokens in while holding cursors into the surrounding stream.
type ID = index

// rec is the arena record backing one token. It is doubly linked by index so
// that splices are local pointer swaps.
type rec struct {
	next, prev index

	kind  Kind
	role  Role
	flags Flags

	text string

	line      int // 1-based origin line.
	col       int // 1-based origin column of the first character.
	colEnd    int // 1-based origin column one past the last character.
	renderCol int // Current output column.

	level      int // Bracket depth of any kind.
	braceLevel int // Brace-only depth.
	ppLevel    int // Preprocessor conditional depth.

	newlines int // For Newline tokens, the number of line breaks.
}

// Proto is the material for a new token, passed to [Stream.Append] and the
// insertion operations.
type Proto struct {
	Kind  Kind
	Role  Role
	Flags Flags
	Text  string

	Line      int
	Col       int
	ColEnd    int
	RenderCol int

	Level      int
	BraceLevel int
	PreprocLevel int

	// Newlines is the line-break count for Newline tokens. Appending a
	// Newline Proto with Newlines == 0 stores 1.
	Newlines int
}

// Stream is an ordered, mutable token list.
//
// Tokens are stored in an arena and linked by stable indices; a [Token] is a
// cheap (stream, id) pair. The zero Stream is empty and ready to use. A
// Stream must not be accessed concurrently.
type Stream struct {
	arena      streamArena
	head, tail index
}

// streamArena is a thin rename so the rec arena does not leak into the API.
type streamArena = recArena

// Head returns the first token of the stream, or [Nil] if it is empty.
func (s *Stream) Head() Token {
	if s == nil {
		return Nil
	}
	return Token{s, s.head}
}

// Tail returns the last token of the stream, or [Nil] if it is empty.
func (s *Stream) Tail() Token {
	if s == nil {
		return Nil
	}
	return Token{s, s.tail}
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return s.arena.Len()
}

// Append adds a token at the end of the stream and returns it.
func (s *Stream) Append(p Proto) Token {
	if p.Kind == Newline && p.Newlines == 0 {
		p.Newlines = 1
	}
	id := s.arena.New(protoRec(p))
	r := s.arena.Deref(id)
	r.prev = s.tail
	if s.tail.Nil() {
		s.head = id
	} else {
		s.arena.Deref(s.tail).next = id
	}
	s.tail = id
	return Token{s, id}
}

// InsertBefore splices a new token immediately before next.
//
// If next is nil, nothing is inserted and [Nil] is returned; the splice
// degrades the same way chained lookups do.
func (s *Stream) InsertBefore(next Token, p Proto) Token {
	if next.Nil() || next.stream != s {
		return Nil
	}
	id := s.arena.New(protoRec(p))
	r := s.arena.Deref(id)
	nr := s.arena.Deref(next.id)

	r.prev = nr.prev
	r.next = next.id
	if nr.prev.Nil() {
		s.head = id
	} else {
		s.arena.Deref(nr.prev).next = id
	}
	nr.prev = id
	return Token{s, id}
}

// InsertAfter splices a new token immediately after prev.
//
// If prev is nil, nothing is inserted and [Nil] is returned.
func (s *Stream) InsertAfter(prev Token, p Proto) Token {
	if prev.Nil() || prev.stream != s {
		return Nil
	}
	id := s.arena.New(protoRec(p))
	r := s.arena.Deref(id)
	pr := s.arena.Deref(prev.id)

	r.next = pr.next
	r.prev = prev.id
	if pr.next.Nil() {
		s.tail = id
	} else {
		s.arena.Deref(pr.next).prev = id
	}
	pr.next = id
	return Token{s, id}
}

// Remove unlinks tok from the stream and returns its slot to the arena.
//
// Removing the nil token is a no-op. The removed Token (and any copies of
// it) must not be used afterwards.
func (s *Stream) Remove(tok Token) {
	if tok.Nil() || tok.stream != s {
		return
	}
	r := s.arena.Deref(tok.id)
	if r.prev.Nil() {
		s.head = r.next
	} else {
		s.arena.Deref(r.prev).next = r.next
	}
	if r.next.Nil() {
		s.tail = r.prev
	} else {
		s.arena.Deref(r.next).prev = r.prev
	}
	s.arena.Free(tok.id)
}

// All returns an iterator over the tokens of the stream in order.
//
// Tokens inserted after the current position during iteration are yielded;
// the iterator follows live links rather than a snapshot.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for tok := s.Head(); !tok.Nil(); tok = tok.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

func protoRec(p Proto) rec {
	return rec{
		kind:       p.Kind,
		role:       p.Role,
		flags:      p.Flags,
		text:       p.Text,
		line:       p.Line,
		col:        p.Col,
		colEnd:     p.ColEnd,
		renderCol:  p.RenderCol,
		level:      p.Level,
		braceLevel: p.BraceLevel,
		ppLevel:    p.PreprocLevel,
		newlines:   p.Newlines,
	}
}
