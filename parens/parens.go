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

// Package parens rewrites boolean expressions so that bare comparison
// sub-expressions carry explicit parentheses.
//
// The rewrite only ever handles very simple shapes:
//
//	(!a && b)         => (!a && b)          -- no change
//	(a && b == 1)     => (a && (b == 1))
//	(a == 1 || b > 2) => ((a == 1) || (b > 2))
//
// Evaluation order never changes; the inserted pairs only make precedence
// visible.
package parens

import (
	"go.uber.org/zap"

	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/rule"
	"github.com/codetidy/codetidy/token"
)

// Flag bits inherited by a synthesized paren from the token it is placed
// next to.
const copyFlags = token.FlagInPreproc

// FullParens returns the rule that inserts explicit parentheses around
// bare comparisons inside if/else-if/switch conditions, boolean
// assignments, and return expressions, as enabled by configuration.
func FullParens() rule.Rule {
	return fullParens{}
}

type fullParens struct{}

func (fullParens) Name() string { return "full-paren-bool" }

func (fullParens) Apply(rc *rule.Context, stream *token.Stream, cfg *config.Config) {
	if cfg.Parens.FullParenIfBool {
		conditionals(rc, stream, cfg)
	}
	if cfg.Parens.FullParenAssignBool {
		statements(rc, stream, cfg, token.Assign)
	}
	if cfg.Parens.FullParenReturnBool {
		statements(rc, stream, cfg, token.Return)
	}
}

// conditionals processes every sparen region belonging to an if, else-if,
// or switch.
func conditionals(rc *rule.Context, stream *token.Stream, cfg *config.Config) {
	pc := stream.Head()
	for pc = pc.NextCode(token.ScopeAll); !pc.Nil(); pc = pc.NextCode(token.ScopeAll) {
		if pc.Kind() != token.SParenOpen {
			continue
		}
		switch pc.Role() {
		case token.RoleIf, token.RoleElseIf, token.RoleSwitch:
		default:
			continue
		}

		pclose := pc.NextOfKind(token.SParenClose, pc.Level(), token.ScopePreproc)
		if !pclose.Nil() {
			processRegion(rc, cfg, pc, pclose, 0)
			pc = pclose
		}
	}
}

// statements processes the span from each trigger token (an assignment
// operator or a return) to its statement terminator, unless the trigger
// turns out to live inside a while condition.
func statements(rc *rule.Context, stream *token.Stream, cfg *config.Config, trigger token.Kind) {
	pc := stream.Head()
	for pc = pc.NextCode(token.ScopeAll); !pc.Nil(); pc = pc.NextCode(token.ScopeAll) {
		if pc.Kind() != trigger {
			continue
		}
		if insideWhileCond(pc) {
			rc.Log.Debug("trigger inside while condition, skipped",
				zap.String("rule", "full-paren-bool"),
				zap.Int("line", pc.Line()))
			continue
		}

		terminator := pc.NextOfKind(token.Semicolon, pc.Level(), token.ScopePreproc)
		if !terminator.Nil() {
			processRegion(rc, cfg, pc, terminator, 0)
			pc = terminator
		}
	}
}

// insideWhileCond scans backward from pc for evidence that it sits in a
// while condition. The scan stops at a statement-start token, at an
// sparen-open, or when the tracked paren level underflows past where the
// scan began; the trigger is inside a while condition exactly when the
// stopping token's role is while.
func insideWhileCond(pc token.Token) bool {
	checkLevel := pc.Level()
	p := pc.PrevNonComment(token.ScopePreproc)
	for !p.Nil() {
		if p.Flags().Has(token.FlagStatementStart) {
			break
		}
		if p.Kind() == token.ParenOpen {
			checkLevel--
		}
		if p.Kind() == token.SParenOpen {
			break
		}
		p = p.PrevNonComment(token.ScopePreproc)
		if checkLevel <= 0 || p.Level() < checkLevel-1 {
			break
		}
	}
	return p.Role() == token.RoleWhile
}

// processRegion walks the tokens strictly between open and close, wrapping
// any bare comparison whose boundaries it can see at this level. It
// recurses into nested paren regions and steps over square/brace/angle
// groups without looking inside them.
//
// A token flagged as living inside a preprocessor directive abandons the
// whole region: a parenthesis pair cannot safely straddle a
// conditional-compilation boundary.
func processRegion(rc *rule.Context, cfg *config.Config, open, close token.Token, depth int) {
	ref := open
	pendingComparison := false

	pc := open
	for {
		pc = pc.NextCode(token.ScopeAll)
		if pc.Nil() || pc == close {
			break
		}
		if pc.InPreproc() {
			rc.Log.Debug("region crosses preprocessor boundary, abandoned",
				zap.String("rule", "full-paren-bool"),
				zap.Int("line", pc.Line()),
				zap.Int("depth", depth))
			return
		}

		switch {
		case pc.Kind() == token.BoolOp ||
			pc.Kind() == token.Question ||
			pc.Kind() == token.CondColon ||
			pc.Kind() == token.Comma:
			if pendingComparison {
				pendingComparison = false
				if cfg.Language != config.LangCS {
					insertParens(rc, ref, pc)
				}
			}
			ref = pc

		case pc.Kind() == token.Compare:
			pendingComparison = true

		case pc.Kind().IsParenOpen():
			next := pc.MatchingClose()
			if !next.Nil() {
				processRegion(rc, cfg, pc, next, depth+1)
				pc = next
			}

		case pc.Kind() == token.Semicolon:
			// An embedded statement form; comparisons cannot span it.
			ref = pc

		case pc.Kind() == token.BraceOpen ||
			pc.Kind() == token.SquareOpen ||
			pc.Kind() == token.AngleOpen:
			// Opaque to comparison detection; jump to the matching close.
			pc = pc.MatchingClose()
		}
	}

	if pendingComparison && ref != open && cfg.Language != config.LangCS {
		insertParens(rc, ref, close)
	}
}

// insertParens adds an open paren just after first and a close paren just
// before last, wrapping everything strictly between them. The two tokens
// being adjacent is a no-op. The mutation is atomic: both parens, the
// nesting-level bump for the wrapped tokens, and the same-line column
// shifts all commit together.
func insertParens(rc *rule.Context, first, last token.Token) {
	firstN := first.NextCode(token.ScopeAll)
	if firstN == last {
		// Bad sequence, e.g. "&& )". Nothing to wrap.
		return
	}

	stream := first.Stream()
	rc.Stats.ParensInserted++
	rc.Log.Debug("inserting paren pair",
		zap.String("rule", "full-paren-bool"),
		zap.Int("line", firstN.Line()),
		zap.String("after", first.Text()),
		zap.String("before", last.Text()))

	stream.InsertBefore(firstN, token.Proto{
		Kind:         token.ParenOpen,
		Text:         "(",
		Flags:        firstN.Flags() & copyFlags,
		Line:         firstN.Line(),
		Col:          firstN.Col(),
		ColEnd:       firstN.ColEnd(),
		RenderCol:    firstN.RenderCol(),
		Level:        firstN.Level(),
		BraceLevel:   firstN.BraceLevel(),
		PreprocLevel: firstN.PreprocLevel(),
	})
	shiftLine(rc, firstN)

	lastPrev := last.PrevCode(token.ScopePreproc)
	stream.InsertAfter(lastPrev, token.Proto{
		Kind:         token.ParenClose,
		Text:         ")",
		Flags:        lastPrev.Flags() & copyFlags,
		Line:         lastPrev.Line(),
		Col:          lastPrev.Col() + 1,
		ColEnd:       lastPrev.ColEnd() + 1,
		RenderCol:    lastPrev.RenderCol() + lastPrev.Width(),
		Level:        lastPrev.Level(),
		BraceLevel:   lastPrev.BraceLevel(),
		PreprocLevel: lastPrev.PreprocLevel(),
	})
	shiftLine(rc, last)

	// Everything strictly inside the new pair is one level deeper now.
	for t := firstN; !t.Nil() && t != lastPrev; t = t.NextCode(token.ScopeAll) {
		t.SetLevel(t.Level() + 1)
	}
	lastPrev.SetLevel(lastPrev.Level() + 1)
}

// shiftLine moves from through the rest of its source line one column to
// the right, keeping same-line layout consistent for any later pass.
func shiftLine(rc *rule.Context, from token.Token) {
	for t := from; !t.Nil(); t = t.Next() {
		t.SetRenderCol(t.RenderCol() + 1)
		t.SetCol(t.Col() + 1)
		t.SetColEnd(t.ColEnd() + 1)
		rc.Stats.TokensMoved++
		if t.IsNewline() {
			break
		}
	}
}
