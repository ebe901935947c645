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

// Package codetidy applies source-rewrite rules to token streams.
//
// The heavy lifting lives in the rule packages ([align], [parens]); this
// package provides the [Runner], which resolves per-path configuration and
// fans a rule set out over many streams concurrently. A single stream is
// only ever touched by one goroutine.
package codetidy

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"sync"

	"github.com/tidwall/btree"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/codetidy/codetidy/align"
	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/parens"
	"github.com/codetidy/codetidy/rule"
	"github.com/codetidy/codetidy/token"
)

// Input is one file's token stream, as delivered by the external
// tokenizer.
type Input struct {
	// Path is the file path the stream came from. It selects configuration
	// overrides and keys the corresponding [Result].
	Path string
	// Stream is rewritten in place by the run.
	Stream *token.Stream
}

// Result reports what a run did to one input.
type Result struct {
	Path  string
	Stats rule.Stats
}

// Results holds per-input results, iterable in path order.
type Results struct {
	byPath btree.Map[string, *Result]
}

// Get returns the result for path, or nil.
func (rs *Results) Get(path string) *Result {
	r, _ := rs.byPath.Get(path)
	return r
}

// Len returns the number of results.
func (rs *Results) Len() int {
	return rs.byPath.Len()
}

// All iterates the results in ascending path order.
func (rs *Results) All() iter.Seq[*Result] {
	return func(yield func(*Result) bool) {
		rs.byPath.Scan(func(_ string, r *Result) bool {
			return yield(r)
		})
	}
}

// RunnerOption configures a [Runner].
type RunnerOption func(*Runner)

// WithLogger directs rule traces to log.
func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithParallelism caps the number of streams processed concurrently.
// Values below 1 mean GOMAXPROCS.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) { r.parallelism = n }
}

// WithRules replaces the default rule set.
func WithRules(rules ...rule.Rule) RunnerOption {
	return func(r *Runner) { r.rules = rules }
}

// Runner applies a rule set to token streams under one configuration.
type Runner struct {
	cfg         *config.Config
	log         *zap.Logger
	parallelism int
	rules       []rule.Rule
}

// NewRunner returns a runner with the default rule set: call-parameter
// alignment and boolean parenthesization, each gated by its own
// configuration toggles.
func NewRunner(cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg: cfg,
		log: zap.NewNop(),
		rules: []rule.Rule{
			align.SameCallParams(),
			parens.FullParens(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism < 1 {
		r.parallelism = runtime.GOMAXPROCS(0)
	}
	return r
}

// Run applies the rule set to every input, mutating the streams in place.
//
// Inputs are processed concurrently up to the configured parallelism; each
// input resolves its own effective configuration from its path. Rules
// themselves cannot fail, so the only error is context cancellation, in
// which case some streams may not have been processed (processed streams
// are always fully processed; a rule run is never interrupted midway).
func (r *Runner) Run(ctx context.Context, inputs []*Input) (*Results, error) {
	results := new(Results)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for _, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("codetidy: %s: %w", in.Path, err)
			}

			eff := r.cfg.For(in.Path)
			rc := rule.NewContext(r.log.With(zap.String("path", in.Path)))
			for _, rl := range r.rules {
				rc.Log.Debug("applying rule", zap.String("rule", rl.Name()))
				rl.Apply(rc, in.Stream, &eff)
			}

			mu.Lock()
			results.byPath.Set(in.Path, &Result{Path: in.Path, Stats: rc.Stats})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
