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
	"io"
	"strings"
)

// Render writes the stream back out as text.
//
// Each token is placed at its render column, padded with spaces; newline
// tokens emit their full line-break run. A render column that would overlap
// the previous token on the line is clamped rather than reordered, so a
// stream with inconsistent columns still renders its tokens in order.
func (s *Stream) Render(w io.Writer) error {
	col := 1
	for tok := s.Head(); !tok.Nil(); tok = tok.Next() {
		if tok.IsNewline() {
			n := max(1, tok.NewlineCount())
			if _, err := io.WriteString(w, strings.Repeat("\n", n)); err != nil {
				return err
			}
			col = 1
			continue
		}

		target := tok.RenderCol()
		if target < col {
			target = col
		}
		if target > col {
			if _, err := io.WriteString(w, strings.Repeat(" ", target-col)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, tok.Text()); err != nil {
			return err
		}
		col = target + tok.Width()
	}
	return nil
}

// RenderString is [Stream.Render] into a string.
func (s *Stream) RenderString() string {
	var sb strings.Builder
	_ = s.Render(&sb) // strings.Builder never fails.
	return sb.String()
}
