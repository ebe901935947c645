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

// Package rule defines the interface every rewrite rule implements and the
// per-run context rules report into.
package rule

import (
	"go.uber.org/zap"

	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/token"
)

// Stats counts the mutations a run committed. One Stats value belongs to
// one [Context]; rules increment it directly.
type Stats struct {
	// ParensInserted is the number of parenthesis pairs added.
	ParensInserted int
	// GroupsAligned is the number of alignment groups (size > 1) that
	// were flushed with visible effect.
	GroupsAligned int
	// TokensMoved is the number of tokens whose render column changed.
	TokensMoved int
}

// Context is the per-run processing state threaded through every rule
// entry point. It is not safe for concurrent use; a run over one stream
// owns its Context exclusively.
type Context struct {
	// Log receives rule traces. Never nil on a Context built with
	// [NewContext].
	Log *zap.Logger

	// Stats accumulates across all rules applied in this run.
	Stats Stats
}

// NewContext returns a run context logging to log. A nil log means no
// logging.
func NewContext(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{Log: log}
}

// Rule is a single rewrite rule over a token stream.
//
// Apply mutates the stream in place and always runs to completion; rules
// have no error path. Malformed structure (unbalanced brackets, regions
// straddling preprocessor boundaries) makes a rule silently skip the
// affected region, never fail.
type Rule interface {
	// Name returns a stable, human-readable rule name for logs.
	Name() string

	// Apply runs the rule over stream with the given configuration,
	// reporting into rc.
	Apply(rc *Context, stream *token.Stream, cfg *config.Config)
}
