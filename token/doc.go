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

// Package token provides the mutable token-list substrate shared by all of
// codetidy's rewrite rules.
//
// # Streams and IDs
//
// A [Stream] owns its tokens in an arena and links them by stable indices
// rather than raw pointers. Insertions and removals are local splices: an ID
// held by a rule engine (for example, a recursion frame's region boundary)
// stays valid no matter how much of the surrounding stream is rewritten.
//
// # The nil token
//
// The zero [Token] is the nil token, the universal "not found" result.
// Traversal and search operations on the nil token return the nil token, so
// lookups chain safely without a check at every step:
//
//	close := open.NextCode(token.ScopeAll).MatchingClose()
//	if close.Nil() { ... }
//
// Only the terminal consumer of a chain needs to check.
//
// # What this package does not do
//
// Streams arrive pre-tokenized: kinds, nesting levels, brace levels,
// preprocessor levels, syntactic roles, and flags are all assigned by the
// upstream tokenizer. This package stores and traverses that metadata; it
// never derives it.
package token
