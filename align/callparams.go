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

package align

import (
	"strings"

	"go.uber.org/zap"

	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/rule"
	"github.com/codetidy/codetidy/token"
)

// SameCallParams returns the rule that aligns the positional arguments of
// consecutive identical function calls into columns.
//
// Two call sites belong to the same group when their reconstructed
// qualified names match exactly and they sit at the same brace and nesting
// level, with no more than the configured span of line breaks between
// them. Each argument index gets its own [Stack]; a group with a single
// member is rendered unchanged.
func SameCallParams() rule.Rule {
	return sameCallParams{}
}

type sameCallParams struct{}

func (sameCallParams) Name() string { return "align-same-call-params" }

func (sameCallParams) Apply(rc *rule.Context, stream *token.Stream, cfg *config.Config) {
	if !cfg.Align.SameCallParams {
		return
	}

	span := 3
	if cfg.Align.SameCallParamsSpan > 0 {
		span = cfg.Align.SameCallParamsSpan
	}
	thresh := cfg.Align.SameCallParamsThresh

	var nameStack Stack
	nameStack.Start(span, thresh)

	var (
		root      token.Token // First token of the open group's qualified name.
		rootName  string
		groupSize int
		argStacks []*Stack
	)

	flushAll := func(reason string) {
		rc.Log.Debug("call group ended",
			zap.String("rule", "align-same-call-params"),
			zap.String("reason", reason),
			zap.String("name", rootName),
			zap.Int("members", groupSize))
		moved := nameStack.Flush()
		for _, as := range argStacks {
			moved += as.Flush()
		}
		if moved > 0 {
			rc.Stats.GroupsAligned++
			rc.Stats.TokensMoved += moved
		}
		root = token.Nil
	}

	for pc := stream.Head(); !pc.Nil(); pc = pc.Next() {
		if pc.Kind() != token.FuncCall {
			if pc.IsNewline() {
				for _, as := range argStacks {
					rc.Stats.TokensMoved += as.AdvanceBlankLines(pc.NewlineCount())
				}
				rc.Stats.TokensMoved += nameStack.AdvanceBlankLines(pc.NewlineCount())
			} else if !root.Nil() && root.BraceLevel() > pc.BraceLevel() {
				// Dropped below the brace level the group started at.
				flushAll("brace level drop")
			}
			continue
		}

		// Only calls that start their line are eligible. Walk backward over
		// member-access connectors to find where the qualified name begins:
		// a connector whose predecessor is not a type name ends the walk.
		prev := pc.Prev()
		for prev.Kind() == token.Member || prev.Kind() == token.MemberRef {
			tprev := prev.Prev()
			if tprev.Kind() != token.TypeName {
				prev = tprev
				break
			}
			prev = tprev.Prev()
		}
		if !prev.IsNewline() {
			continue
		}
		nameStart := prev.Next()

		var sb strings.Builder
		for t := nameStart; !t.Nil() && t != pc; t = t.Next() {
			sb.WriteString(t.Text())
		}
		sb.WriteString(pc.Text())
		name := sb.String()

		added := false
		if !root.Nil() {
			// A group only continues at the same brace level, the same
			// nesting level, and under the same name.
			if root.BraceLevel() == pc.BraceLevel() &&
				root.Level() == pc.Level() &&
				name == rootName {
				nameStack.Add(pc)
				groupSize++
				added = true
			} else {
				flushAll("different call")
			}
		}
		if root.Nil() {
			rc.Log.Debug("call group opened",
				zap.String("rule", "align-same-call-params"),
				zap.String("name", name),
				zap.Int("line", pc.Line()))
			nameStack.Add(pc)
			root = nameStart
			rootName = name
			groupSize = 1
			added = true
		}

		if added {
			for idx, head := range argumentHeads(pc) {
				if idx >= len(argStacks) {
					as := &Stack{
						OnTabstop: cfg.Align.OnTabstop,
						TabWidth:  cfg.Align.TabWidth,
					}
					as.Start(span, thresh)
					if !cfg.Align.NumberRight && isNumeric(head.Kind()) {
						as.RightAlign = !cfg.Align.OnTabstop
					}
					argStacks = append(argStacks, as)
				} else {
					argStacks[idx].RightAlign = false
				}
				argStacks[idx].Add(head)
			}
		}
	}

	if groupSize > 1 {
		moved := nameStack.End()
		for _, as := range argStacks {
			moved += as.End()
		}
		if moved > 0 {
			rc.Stats.GroupsAligned++
			rc.Stats.TokensMoved += moved
		}
	}
}

// argumentHeads collects the first token of each top-level comma-delimited
// argument of the call at start. Extraction ends at a newline, a statement
// terminator, or the call's matching close paren; a newline mid-list
// silently ends extraction for this call.
func argumentHeads(start token.Token) []token.Token {
	var heads []token.Token
	hitComma := true

	pc := start.NextOfKind(token.FParenOpen, start.Level(), token.ScopeAll)
	for pc = pc.Next(); !pc.Nil(); pc = pc.Next() {
		if pc.IsNewline() ||
			pc.Kind() == token.Semicolon ||
			(pc.Kind() == token.FParenClose && pc.Level() == start.Level()) {
			break
		}
		if pc.Level() != start.Level()+1 {
			continue
		}
		if hitComma {
			heads = append(heads, pc)
			hitComma = false
		} else if pc.Kind() == token.Comma {
			hitComma = true
		}
	}
	return heads
}

func isNumeric(kind token.Kind) bool {
	return kind == token.Number || kind == token.Plus || kind == token.Minus
}
