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

// Package srclex is a deliberately small lexer for a C-like language.
//
// It exists to build [token.Stream] fixtures for tests and examples. It is
// NOT the tokenizer the rule engines are designed against (that one is an
// external collaborator which delivers streams through the tokenio codec),
// but it assigns the same metadata (kinds, nesting levels, brace levels,
// preprocessor levels, syntactic roles, flags) so that fixtures can be
// written as source text instead of token tables.
package srclex

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/codetidy/codetidy/token"
)

// Lex tokenizes src into a fresh stream.
//
// Unrecognized characters become [token.Unrecognized] tokens rather than
// errors; the rule engines are expected to step over garbage, so the lexer
// produces it faithfully.
func Lex(src string) *token.Stream {
	lx := &lexer{
		src:       src,
		line:      1,
		col:       1,
		stmtStart: true,
		stream:    &token.Stream{},
	}
	lx.run()
	return lx.stream
}

type openBracket struct {
	kind token.Kind
	role token.Role
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int

	level      int
	braceLevel int
	ppLevel    int

	// opens is the open-bracket stack; it decides the flavor and role of
	// each close token.
	opens []openBracket

	// pendingRole is the role for the next ( after a control keyword.
	pendingRole token.Role
	// sawElse is set between an else and a possible trailing if.
	sawElse bool
	// stmtStart marks that the next code token begins a statement.
	stmtStart bool
	// inDirective is set while lexing the remainder of a # line.
	inDirective bool

	stream *token.Stream
	last   token.Token // last emitted non-skippable token
}

func (lx *lexer) run() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\n':
			lx.newline()
		case c == ' ' || c == '\t' || c == '\r':
			lx.advance(1)
		case c == '#' && lx.atLineStart():
			lx.directive()
		case c == '/' && lx.peek(1) == '/':
			lx.lineComment()
		case c == '/' && lx.peek(1) == '*':
			lx.blockComment()
		case c == '"' || c == '\'':
			lx.stringLit(c)
		case c >= '0' && c <= '9':
			lx.number()
		case isIdentStart(rune(c)):
			lx.ident()
		default:
			lx.operator()
		}
	}
}

func (lx *lexer) newline() {
	count := 0
	for lx.pos < len(lx.src) && (lx.src[lx.pos] == '\n' || lx.src[lx.pos] == '\r') {
		if lx.src[lx.pos] == '\n' {
			count++
			lx.line++
			lx.col = 1
		}
		lx.pos++
	}
	lx.flushNewline(count)
}

func (lx *lexer) flushNewline(count int) {
	if count == 0 {
		return
	}
	lx.inDirective = false
	lx.stream.Append(token.Proto{
		Kind:         token.Newline,
		Text:         "",
		Line:         lx.line - count,
		Col:          lx.col,
		ColEnd:       lx.col,
		RenderCol:    lx.col,
		Level:        lx.level,
		BraceLevel:   lx.braceLevel,
		PreprocLevel: lx.ppLevel,
		Newlines:     count,
	})
}

func (lx *lexer) directive() {
	lx.inDirective = true

	start := lx.pos
	end := start + 1
	for end < len(lx.src) && (isIdentPart(rune(lx.src[end])) || lx.src[end] == '#') {
		end++
	}
	word := lx.src[start:end]

	switch word {
	case "#if", "#ifdef", "#ifndef":
		lx.ppLevel++
	}
	lx.emit(token.Preproc, word, token.RoleNone)
	if word == "#endif" {
		lx.ppLevel--
		if lx.ppLevel < 0 {
			lx.ppLevel = 0
		}
	}
}

func (lx *lexer) lineComment() {
	end := strings.IndexByte(lx.src[lx.pos:], '\n')
	if end < 0 {
		end = len(lx.src) - lx.pos
	}
	lx.emit(token.Comment, lx.src[lx.pos:lx.pos+end], token.RoleNone)
}

func (lx *lexer) blockComment() {
	rest := lx.src[lx.pos+2:]
	end := strings.Index(rest, "*/")
	if end < 0 {
		lx.emit(token.Comment, lx.src[lx.pos:], token.RoleNone)
		return
	}
	lx.emit(token.Comment, lx.src[lx.pos:lx.pos+end+4], token.RoleNone)
}

func (lx *lexer) stringLit(quote byte) {
	i := lx.pos + 1
	for i < len(lx.src) {
		if lx.src[i] == '\\' {
			i += 2
			continue
		}
		if lx.src[i] == quote {
			i++
			break
		}
		if lx.src[i] == '\n' {
			break // Unterminated; stop at end of line.
		}
		i++
	}
	lx.emit(token.String, lx.src[lx.pos:i], token.RoleNone)
}

func (lx *lexer) number() {
	i := lx.pos
	for i < len(lx.src) && (isIdentPart(rune(lx.src[i])) || lx.src[i] == '.') {
		i++
	}
	lx.emit(token.Number, lx.src[lx.pos:i], token.RoleNone)
}

func (lx *lexer) ident() {
	i := lx.pos
	for i < len(lx.src) && isIdentPart(rune(lx.src[i])) {
		i++
	}
	word := lx.src[lx.pos:i]

	sawElse := lx.sawElse
	lx.sawElse = false

	switch word {
	case "if":
		if sawElse {
			lx.pendingRole = token.RoleElseIf
		} else {
			lx.pendingRole = token.RoleIf
		}
		lx.emit(token.Keyword, word, lx.pendingRole)
		return
	case "else":
		lx.sawElse = true
		lx.emit(token.Keyword, word, token.RoleNone)
		return
	case "while":
		lx.pendingRole = token.RoleWhile
		lx.emit(token.Keyword, word, token.RoleWhile)
		return
	case "switch":
		lx.pendingRole = token.RoleSwitch
		lx.emit(token.Keyword, word, token.RoleSwitch)
		return
	case "for":
		lx.pendingRole = token.RoleFor
		lx.emit(token.Keyword, word, token.RoleFor)
		return
	case "do":
		lx.emit(token.Keyword, word, token.RoleDo)
		return
	case "return":
		lx.emit(token.Return, word, token.RoleNone)
		return
	}

	// Plain identifier; may be retagged as FuncCall or TypeName once the
	// following operator is seen.
	lx.emit(token.Ident, word, token.RoleNone)
}

func (lx *lexer) operator() {
	two := ""
	if lx.pos+2 <= len(lx.src) {
		two = lx.src[lx.pos : lx.pos+2]
	}
	three := ""
	if lx.pos+3 <= len(lx.src) {
		three = lx.src[lx.pos : lx.pos+3]
	}

	switch three {
	case "<<=", ">>=":
		lx.emit(token.Assign, three, token.RoleNone)
		return
	}

	switch two {
	case "==", "!=", "<=", ">=":
		lx.emit(token.Compare, two, token.RoleNone)
		return
	case "&&", "||":
		lx.emit(token.BoolOp, two, token.RoleNone)
		return
	case "+=", "-=", "*=", "/=", "%=", "|=", "&=", "^=":
		lx.emit(token.Assign, two, token.RoleNone)
		return
	case "::":
		lx.retagLast(token.Ident, token.TypeName)
		lx.emit(token.MemberRef, two, token.RoleNone)
		return
	case "->":
		lx.emit(token.Member, two, token.RoleNone)
		return
	}

	c := lx.src[lx.pos]
	switch c {
	case '=':
		lx.emit(token.Assign, "=", token.RoleNone)
	case '<', '>':
		lx.emit(token.Compare, string(c), token.RoleNone)
	case '!':
		lx.emit(token.Not, "!", token.RoleNone)
	case '?':
		lx.emit(token.Question, "?", token.RoleNone)
	case ':':
		lx.emit(token.CondColon, ":", token.RoleNone)
	case ',':
		lx.emit(token.Comma, ",", token.RoleNone)
	case ';':
		lx.emit(token.Semicolon, ";", token.RoleNone)
	case '.':
		lx.emit(token.Member, ".", token.RoleNone)
	case '+', '-':
		if lx.unaryPosition() {
			kind := token.Plus
			if c == '-' {
				kind = token.Minus
			}
			lx.emit(kind, string(c), token.RoleNone)
		} else {
			lx.emit(token.Punct, string(c), token.RoleNone)
		}
	case '(':
		lx.openParen()
	case ')', '}', ']':
		lx.closeBracket(c)
	case '{':
		lx.open(token.BraceOpen, "{", token.RoleNone)
		lx.braceLevel++
	case '[':
		lx.open(token.SquareOpen, "[", token.RoleNone)
	default:
		lx.emit(token.Punct, string(c), token.RoleNone)
	}
}

func (lx *lexer) openParen() {
	switch {
	case lx.pendingRole != token.RoleNone:
		role := lx.pendingRole
		lx.pendingRole = token.RoleNone
		lx.open(token.SParenOpen, "(", role)
	case lx.last.Kind() == token.Ident || lx.last.Kind() == token.FuncCall:
		lx.retagLast(token.Ident, token.FuncCall)
		lx.open(token.FParenOpen, "(", token.RoleNone)
	default:
		lx.open(token.ParenOpen, "(", token.RoleNone)
	}
}

func (lx *lexer) open(kind token.Kind, text string, role token.Role) {
	lx.emit(kind, text, role)
	lx.opens = append(lx.opens, openBracket{kind, role})
	lx.level++
}

func (lx *lexer) closeBracket(c byte) {
	var top openBracket
	if n := len(lx.opens); n > 0 {
		top = lx.opens[n-1]
		lx.opens = lx.opens[:n-1]
		lx.level--
	}
	if c == '}' && lx.braceLevel > 0 {
		lx.braceLevel--
	}

	kind := top.kind.Matching()
	if kind == token.Unrecognized {
		// Unbalanced close; keep the flavor implied by the character.
		switch c {
		case ')':
			kind = token.ParenClose
		case '}':
			kind = token.BraceClose
		case ']':
			kind = token.SquareClose
		}
	}
	lx.emit(kind, string(c), top.role)
	if c == '}' || kind == token.SParenClose {
		// The next token begins a new statement (a block close or a
		// control-statement body).
		lx.stmtStart = true
	}
}

// unaryPosition reports whether a +/- at the current position is a sign
// rather than a binary operator.
func (lx *lexer) unaryPosition() bool {
	switch lx.last.Kind() {
	case token.Ident, token.FuncCall, token.TypeName, token.Number,
		token.String, token.ParenClose, token.SParenClose,
		token.FParenClose, token.SquareClose:
		return false
	default:
		return true
	}
}

func (lx *lexer) emit(kind token.Kind, text string, role token.Role) {
	width := uniseg.StringWidth(text)
	if kind == token.Comment {
		// Multi-line block comments keep their raw text; width is as lexed.
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			width = uniseg.StringWidth(text[:i])
		}
	}

	var flags token.Flags
	if lx.stmtStart {
		flags |= token.FlagStatementStart
	}
	if lx.inDirective {
		flags |= token.FlagInPreproc
		if kind != token.Preproc {
			kind = token.Preproc
		}
	}

	level := lx.level
	braceLevel := lx.braceLevel

	tok := lx.stream.Append(token.Proto{
		Kind:         kind,
		Role:         role,
		Flags:        flags,
		Text:         text,
		Line:         lx.line,
		Col:          lx.col,
		ColEnd:       lx.col + width,
		RenderCol:    lx.col,
		Level:        level,
		BraceLevel:   braceLevel,
		PreprocLevel: lx.ppLevel,
	})

	if !kind.IsSkippable() {
		lx.stmtStart = false
		lx.last = tok
	}
	if kind == token.Semicolon || kind == token.BraceOpen {
		lx.stmtStart = true
	}

	lx.advanceText(text)
}

// retagLast rewrites the kind of the last emitted token if it currently has
// the given kind. Used for ident -> FuncCall / TypeName promotion.
func (lx *lexer) retagLast(from, to token.Kind) {
	if lx.last.Kind() == from {
		lx.last.SetKind(to)
	}
}

func (lx *lexer) advance(n int) {
	lx.pos += n
	lx.col += n
}

func (lx *lexer) advanceText(text string) {
	lx.pos += len(text)
	for _, c := range text {
		if c == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
	}
}

func (lx *lexer) atLineStart() bool {
	for i := lx.pos - 1; i >= 0; i-- {
		switch lx.src[i] {
		case ' ', '\t', '\r':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func (lx *lexer) peek(n int) byte {
	if lx.pos+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+n]
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
