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

package parens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/internal/srclex"
	"github.com/codetidy/codetidy/parens"
	"github.com/codetidy/codetidy/rule"
)

func rewrite(t *testing.T, cfg *config.Config, src string) (string, rule.Stats) {
	t.Helper()
	stream := srclex.Lex(src)
	rc := rule.NewContext(nil)
	parens.FullParens().Apply(rc, stream, cfg)
	return stream.RenderString(), rc.Stats
}

func allOn() *config.Config {
	cfg := config.Default()
	cfg.Parens.FullParenIfBool = true
	cfg.Parens.FullParenAssignBool = true
	cfg.Parens.FullParenReturnBool = true
	return cfg
}

func TestFullParensDisabled(t *testing.T) {
	t.Parallel()

	src := "if (a == 1 || b > 2) {\n}\n"
	out, stats := rewrite(t, config.Default(), src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats)
}

func TestIfCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "two comparisons",
			src:  "if (a == 1 || b > 2) {\n}\n",
			want: "if ((a == 1) || (b > 2)) {\n}\n",
		},
		{
			name: "trailing comparison only",
			src:  "if (a && b == 1) {\n}\n",
			want: "if (a && (b == 1)) {\n}\n",
		},
		{
			name: "no comparison",
			src:  "if (!a && b) {\n}\n",
			want: "if (!a && b) {\n}\n",
		},
		{
			name: "lone comparison",
			src:  "if (a == 1) {\n}\n",
			want: "if (a == 1) {\n}\n",
		},
		{
			name: "already wrapped",
			src:  "if ((a == 1) || (b > 2)) {\n}\n",
			want: "if ((a == 1) || (b > 2)) {\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _ := rewrite(t, allOn(), tt.src)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestElseIfAndSwitch(t *testing.T) {
	t.Parallel()

	out, _ := rewrite(t, allOn(),
		"if (a) {\n} else if (b == 1 || c) {\n}\n")
	assert.Equal(t,
		"if (a) {\n} else if ((b == 1) || c) {\n}\n", out)

	out, _ = rewrite(t, allOn(), "switch (x == 1 || y) {\n}\n")
	assert.Equal(t, "switch ((x == 1) || y) {\n}\n", out)
}

func TestWhileConditionUntouched(t *testing.T) {
	t.Parallel()

	// The conditional pass only handles if/else-if/switch.
	src := "while (a == 1 || b) {\n}\n"
	out, _ := rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
}

func TestAssignment(t *testing.T) {
	t.Parallel()

	out, stats := rewrite(t, allOn(), "flag = x > 0 || y > 0;\n")
	assert.Equal(t, "flag = (x > 0) || (y > 0);\n", out)
	assert.Equal(t, 2, stats.ParensInserted)

	// A lone comparison never wraps: the ref cursor has to move off the
	// trigger before the final pair is considered, and only a boundary
	// token moves it.
	src := "y = a == 1;\n"
	out, _ = rewrite(t, allOn(), src)
	assert.Equal(t, src, out)

	// A plain assignment has no comparison to wrap.
	src = "y = a + 1;\n"
	out, _ = rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
}

func TestAssignmentInsideWhileSkipped(t *testing.T) {
	t.Parallel()

	src := "do {\n} while (x = next(x));\n"
	out, stats := rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats.ParensInserted)
}

func TestReturnExpression(t *testing.T) {
	t.Parallel()

	out, _ := rewrite(t, allOn(), "return a == 1 && b;\n")
	assert.Equal(t, "return (a == 1) && b;\n", out)

	src := "return a;\n"
	out, _ = rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"if (a == 1 || b > 2) {\n}\n",
		"flag = x > 0 || y > 0;\n",
		"return a == 1 && b;\n",
	}
	for _, src := range srcs {
		once, _ := rewrite(t, allOn(), src)
		twice, stats := rewrite(t, allOn(), once)
		assert.Equal(t, once, twice, "source: %q", src)
		assert.Zero(t, stats.ParensInserted, "source: %q", src)
	}
}

func TestCSharpSuppressesInsertion(t *testing.T) {
	t.Parallel()

	cfg := allOn()
	cfg.Language = config.LangCS

	src := "if (a == 1 || b > 2) {\n}\n"
	out, stats := rewrite(t, cfg, src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats.ParensInserted)
}

func TestPreprocRegionAbandoned(t *testing.T) {
	t.Parallel()

	// A directive inside the condition makes the whole region untouchable:
	// an inserted pair could straddle the conditional-compilation boundary.
	src := "if (a == 1\n#ifdef X\n|| b == 2\n#endif\n) {\n}\n"
	out, stats := rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats.ParensInserted)
}

func TestAdjacentBoundariesNoop(t *testing.T) {
	t.Parallel()

	// The comparison is cut off by the stray semicolon, leaving the ref
	// cursor directly against the boolean op: nothing to wrap.
	src := "if (a == ;&& b) {\n}\n"
	out, stats := rewrite(t, allOn(), src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats.ParensInserted)
}

func TestNestedParensRecurse(t *testing.T) {
	t.Parallel()

	out, _ := rewrite(t, allOn(), "if ((a == 1 || b) && c) {\n}\n")
	assert.Equal(t, "if (((a == 1) || b) && c) {\n}\n", out)
}

func TestCallArgumentsWrapped(t *testing.T) {
	t.Parallel()

	// Comparisons between commas inside a call in the condition get their
	// own parens.
	out, _ := rewrite(t, allOn(), "if (check(a == 1, b)) {\n}\n")
	assert.Equal(t, "if (check((a == 1), b)) {\n}\n", out)
}

func TestTernaryBoundaries(t *testing.T) {
	t.Parallel()

	out, _ := rewrite(t, allOn(), "x = a == 1 ? b : c;\n")
	assert.Equal(t, "x = (a == 1) ? b : c;\n", out)
}
