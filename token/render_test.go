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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codetidy/codetidy/token"
)

func TestRenderColumns(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	s.Append(token.Proto{Kind: token.Ident, Text: "x", RenderCol: 1})
	s.Append(token.Proto{Kind: token.Assign, Text: "=", RenderCol: 3})
	s.Append(token.Proto{Kind: token.Number, Text: "10", RenderCol: 5})
	s.Append(token.Proto{Kind: token.Semicolon, Text: ";", RenderCol: 7})
	s.Append(token.Proto{Kind: token.Newline})

	assert.Equal(t, "x = 10;\n", s.RenderString())
}

func TestRenderNewlineRuns(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	s.Append(token.Proto{Kind: token.Ident, Text: "a", RenderCol: 1})
	s.Append(token.Proto{Kind: token.Newline, Newlines: 3})
	s.Append(token.Proto{Kind: token.Ident, Text: "b", RenderCol: 1})
	s.Append(token.Proto{Kind: token.Newline})

	assert.Equal(t, "a\n\n\nb\n", s.RenderString())
}

func TestRenderClampsOverlap(t *testing.T) {
	t.Parallel()

	// The second token claims a column the first already covers; it renders
	// immediately after rather than overwriting or reordering.
	s := &token.Stream{}
	s.Append(token.Proto{Kind: token.Ident, Text: "abcdef", RenderCol: 1})
	s.Append(token.Proto{Kind: token.Semicolon, Text: ";", RenderCol: 3})

	assert.Equal(t, "abcdef;", s.RenderString())
}

func TestRenderEmptyStream(t *testing.T) {
	t.Parallel()

	s := &token.Stream{}
	assert.Equal(t, "", s.RenderString())
}
