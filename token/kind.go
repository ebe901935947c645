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

import "fmt"

// Kind identifies what kind of token a particular [Token] is.
//
// Kinds are assigned upstream, by whatever produced the stream; the rule
// engines only ever inspect them.
type Kind byte

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input.

	Newline   // One or more consecutive line breaks; see [Token.NewlineCount].
	Comment   // A single comment.
	Preproc   // A token belonging to a preprocessor directive.
	Ident     // An identifier.
	TypeName  // An identifier known to name a type.
	FuncCall  // An identifier in call position.
	Keyword   // A language keyword (if, while, return, ...).
	Return    // The return keyword specifically.
	Number    // A numeric literal.
	String    // A string literal.
	Assign    // An assignment operator (=, +=, ...).
	Compare   // A relational or equality operator (==, !=, <, <=, >, >=).
	BoolOp    // A boolean connective (&&, ||).
	Not       // Logical negation (!).
	Plus      // A unary plus sign preceding a literal.
	Minus     // A unary minus sign preceding a literal.
	Question  // The ternary ?.
	CondColon // The ternary :.
	Comma     // A comma.
	Semicolon // A statement terminator.
	Member    // A member access connector (.).
	MemberRef // A scope resolution connector (::).
	Punct     // Any other punctuation.

	ParenOpen   // A plain (.
	ParenClose  // A plain ).
	SParenOpen  // The ( attached to a control-statement condition.
	SParenClose // The matching ) of an sparen pair.
	FParenOpen  // The ( opening a function-call argument list.
	FParenClose // The matching ) of an fparen pair.
	BraceOpen   // {
	BraceClose  // }
	SquareOpen  // [
	SquareClose // ]
	AngleOpen   // < in delimiter position (templates/generics).
	AngleClose  // > in delimiter position.
)

var kindNames = map[Kind]string{
	Unrecognized: "Unrecognized",
	Newline:      "Newline",
	Comment:      "Comment",
	Preproc:      "Preproc",
	Ident:        "Ident",
	TypeName:     "TypeName",
	FuncCall:     "FuncCall",
	Keyword:      "Keyword",
	Return:       "Return",
	Number:       "Number",
	String:       "String",
	Assign:       "Assign",
	Compare:      "Compare",
	BoolOp:       "BoolOp",
	Not:          "Not",
	Plus:         "Plus",
	Minus:        "Minus",
	Question:     "Question",
	CondColon:    "CondColon",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Member:       "Member",
	MemberRef:    "MemberRef",
	Punct:        "Punct",
	ParenOpen:    "ParenOpen",
	ParenClose:   "ParenClose",
	SParenOpen:   "SParenOpen",
	SParenClose:  "SParenClose",
	FParenOpen:   "FParenOpen",
	FParenClose:  "FParenClose",
	BraceOpen:    "BraceOpen",
	BraceClose:   "BraceClose",
	SquareOpen:   "SquareOpen",
	SquareClose:  "SquareClose",
	AngleOpen:    "AngleOpen",
	AngleClose:   "AngleClose",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindByName returns the kind with the given [Kind.String] name.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsSkippable returns whether this kind carries no syntactic weight and
// should be stepped over by [Token.NextCode] and friends.
func (k Kind) IsSkippable() bool {
	return k == Comment || k == Newline || k == Unrecognized
}

// IsOpen returns whether this kind opens a bracket pair of any flavor.
func (k Kind) IsOpen() bool {
	switch k {
	case ParenOpen, SParenOpen, FParenOpen, BraceOpen, SquareOpen, AngleOpen:
		return true
	default:
		return false
	}
}

// IsClose returns whether this kind closes a bracket pair of any flavor.
func (k Kind) IsClose() bool {
	switch k {
	case ParenClose, SParenClose, FParenClose, BraceClose, SquareClose, AngleClose:
		return true
	default:
		return false
	}
}

// IsParenOpen returns whether this kind is any of the three open-paren
// flavors.
func (k Kind) IsParenOpen() bool {
	return k == ParenOpen || k == SParenOpen || k == FParenOpen
}

// Matching returns the close kind for an open kind and vice versa.
//
// Returns [Unrecognized] for kinds that are not part of a bracket pair.
func (k Kind) Matching() Kind {
	switch k {
	case ParenOpen:
		return ParenClose
	case ParenClose:
		return ParenOpen
	case SParenOpen:
		return SParenClose
	case SParenClose:
		return SParenOpen
	case FParenOpen:
		return FParenClose
	case FParenClose:
		return FParenOpen
	case BraceOpen:
		return BraceClose
	case BraceClose:
		return BraceOpen
	case SquareOpen:
		return SquareClose
	case SquareClose:
		return SquareOpen
	case AngleOpen:
		return AngleClose
	case AngleClose:
		return AngleOpen
	default:
		return Unrecognized
	}
}
