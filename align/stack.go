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

import "github.com/codetidy/codetidy/token"

// Stack accumulates tokens that are candidates for a common column and
// decides when to force them there.
//
// A Stack is fed tokens as a scan discovers them and flushed when the group
// ends, either explicitly or implicitly when more blank lines pass than the
// span tolerates. Flushing a stack holding fewer than two tokens changes
// nothing.
type Stack struct {
	// RightAlign aligns members on their last character instead of their
	// first. Numeric columns default to this.
	RightAlign bool
	// OnTabstop rounds the target column up to the next tab stop.
	OnTabstop bool
	// TabWidth is the tab stop width used by OnTabstop; zero means 8.
	TabWidth int

	span    int
	thresh  int
	nlCount int
	buf     []token.Token
}

// Start readies the stack with the given span and threshold. Any buffered
// state from a prior use is discarded without flushing.
func (st *Stack) Start(span, thresh int) {
	st.span = span
	st.thresh = thresh
	st.nlCount = 0
	st.buf = st.buf[:0]
}

// Add buffers a token as a candidate member of the current group and
// resets the blank-line counter.
func (st *Stack) Add(tok token.Token) {
	if tok.Nil() {
		return
	}
	st.nlCount = 0
	st.buf = append(st.buf, tok)
}

// AdvanceBlankLines records that n line breaks passed since the last Add.
// Once the running count exceeds the span the stack flushes itself: the
// group ended by distance. Returns the number of tokens moved by such an
// implicit flush.
func (st *Stack) AdvanceBlankLines(n int) int {
	if len(st.buf) == 0 {
		return 0
	}
	st.nlCount += n
	if st.nlCount > st.span {
		return st.Flush()
	}
	return 0
}

// Flush forces the buffered tokens to a common column and clears the
// buffer. Returns the number of tokens whose render column changed.
//
// The target column is the running maximum natural column of the group's
// members. A member whose natural column deviates from the running maximum
// by more than the threshold (when a threshold is set) is excluded: it
// closes the group so far and starts a new one, which is aligned (or not,
// if it stays a singleton) by the same rules.
func (st *Stack) Flush() int {
	buf := st.buf
	st.buf = st.buf[:0]
	st.nlCount = 0
	if len(buf) < 2 {
		return 0
	}

	moved := 0
	start := 0
	maxCol := st.natural(buf[0])
	for i := 1; i < len(buf); i++ {
		col := st.natural(buf[i])
		if st.thresh > 0 && abs(col-maxCol) > st.thresh {
			moved += st.apply(buf[start:i], maxCol)
			start = i
			maxCol = col
			continue
		}
		if col > maxCol {
			maxCol = col
		}
	}
	return moved + st.apply(buf[start:], maxCol)
}

// End is the terminal flush, invoked once scanning completes.
func (st *Stack) End() int {
	return st.Flush()
}

// Pending returns the number of buffered tokens.
func (st *Stack) Pending() int {
	return len(st.buf)
}

// apply commits one threshold-consistent group to its target column.
func (st *Stack) apply(group []token.Token, target int) int {
	if len(group) < 2 {
		return 0
	}
	if st.OnTabstop {
		target = st.nextTabstop(target)
	}

	moved := 0
	for _, tok := range group {
		col := target
		if st.RightAlign {
			col = target - tok.Width() + 1
		}
		delta := col - tok.RenderCol()
		if delta == 0 {
			continue
		}
		tok.SetRenderCol(col)
		moved++
		// Everything after the member on its line rides along.
		for next := tok.Next(); !next.Nil() && !next.IsNewline(); next = next.Next() {
			next.SetRenderCol(next.RenderCol() + delta)
			moved++
		}
	}
	return moved
}

// natural returns the column a member wants to align on: its render column,
// or the column of its last character in right-align mode.
func (st *Stack) natural(tok token.Token) int {
	if st.RightAlign {
		return tok.RenderCol() + tok.Width() - 1
	}
	return tok.RenderCol()
}

func (st *Stack) nextTabstop(col int) int {
	tw := st.TabWidth
	if tw <= 0 {
		tw = 8
	}
	rem := (col - 1) % tw
	if rem == 0 {
		return col
	}
	return col + tw - rem
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
