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

package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codetidy/codetidy/align"
	"github.com/codetidy/codetidy/token"
)

// line appends one member token at col followed by a trailing semicolon and
// a newline, and returns the member.
func line(s *token.Stream, text string, col int) token.Token {
	tok := s.Append(token.Proto{Kind: token.Ident, Text: text, RenderCol: col})
	s.Append(token.Proto{Kind: token.Semicolon, Text: ";", RenderCol: col + len(text)})
	s.Append(token.Proto{Kind: token.Newline})
	return tok
}

func TestStackFlushLeftAlign(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "a", 5)
	b := line(s, "b", 3)
	c := line(s, "c", 9)

	var st align.Stack
	st.Start(3, 0)
	st.Add(a)
	st.Add(b)
	st.Add(c)
	moved := st.Flush()

	// Everyone lands on the widest natural column.
	assert.Equal(t, 9, a.RenderCol())
	assert.Equal(t, 9, b.RenderCol())
	assert.Equal(t, 9, c.RenderCol())
	// a, b, and their trailing semicolons moved; c was already there.
	assert.Equal(t, 4, moved)
	assert.Equal(t, 0, st.Pending())
}

func TestStackFlushSingletonIsNoop(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "a", 5)

	var st align.Stack
	st.Start(3, 0)
	st.Add(a)
	assert.Equal(t, 0, st.Flush())
	assert.Equal(t, 5, a.RenderCol())
}

func TestStackRightAlign(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "1234", 5) // last char at col 8
	b := line(s, "7", 5)    // last char at col 5

	st := align.Stack{RightAlign: true}
	st.Start(3, 0)
	st.Add(a)
	st.Add(b)
	st.Flush()

	assert.Equal(t, 5, a.RenderCol())
	assert.Equal(t, 8, b.RenderCol())
}

func TestStackOnTabstop(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "a", 5)
	b := line(s, "b", 6)

	st := align.Stack{OnTabstop: true, TabWidth: 8}
	st.Start(3, 0)
	st.Add(a)
	st.Add(b)
	st.Flush()

	// Max natural column 6 rounds up to the next tab stop.
	assert.Equal(t, 9, a.RenderCol())
	assert.Equal(t, 9, b.RenderCol())
}

func TestStackThresholdSplitsGroups(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "a", 5)
	b := line(s, "b", 6)
	c := line(s, "c", 30)
	d := line(s, "d", 31)

	var st align.Stack
	st.Start(3, 3)
	st.Add(a)
	st.Add(b)
	st.Add(c)
	st.Add(d)
	st.Flush()

	// The far-away pair splits off into its own group.
	assert.Equal(t, 6, a.RenderCol())
	assert.Equal(t, 6, b.RenderCol())
	assert.Equal(t, 31, c.RenderCol())
	assert.Equal(t, 31, d.RenderCol())
}

func TestStackBlankLinesFlush(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	a := line(s, "a", 5)
	b := line(s, "b", 3)
	c := line(s, "c", 9)

	var st align.Stack
	st.Start(2, 0)
	st.Add(a)
	st.Add(b)

	// One blank line is within the span; the counter resets on Add.
	assert.Equal(t, 0, st.AdvanceBlankLines(1))
	st.Add(c)
	assert.Equal(t, 0, st.AdvanceBlankLines(2))

	// One more break pushes past the span: the stack flushes itself.
	moved := st.AdvanceBlankLines(1)
	assert.Positive(t, moved)
	assert.Equal(t, 0, st.Pending())
	assert.Equal(t, 9, a.RenderCol())
	assert.Equal(t, 9, b.RenderCol())
	assert.Equal(t, 9, c.RenderCol())
}
