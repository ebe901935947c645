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

// Package tokenio reads and writes token-stream dumps.
//
// Dumps are the interchange format between the external tokenizer and
// codetidy's rule engines: every piece of metadata the engines consume
// (kinds, levels, roles, flags, positions) travels through them. Two
// encodings are supported, YAML for inspectability and msgpack for bulk.
package tokenio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/codetidy/codetidy/token"
)

// Format is a dump encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

// DetectFormat picks a format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("tokenio: unrecognized dump extension %q", ext)
	}
}

// Dump is one file's serialized token stream.
type Dump struct {
	// Path is the source path the stream was tokenized from.
	Path   string  `yaml:"path" msgpack:"path"`
	Tokens []Entry `yaml:"tokens" msgpack:"tokens"`
}

// Entry is one serialized token.
//
// Numeric fields are fixed-width on the wire; kinds and roles travel as
// their string names so dumps stay inspectable and stable across kind
// renumbering.
type Entry struct {
	Kind string `yaml:"kind" msgpack:"kind"`
	Text string `yaml:"text,omitempty" msgpack:"text"`
	Role string `yaml:"role,omitempty" msgpack:"role"`

	StatementStart bool `yaml:"stmt_start,omitempty" msgpack:"stmt_start"`
	InPreproc      bool `yaml:"in_preproc,omitempty" msgpack:"in_preproc"`

	Line      int32 `yaml:"line" msgpack:"line"`
	Col       int32 `yaml:"col" msgpack:"col"`
	ColEnd    int32 `yaml:"col_end" msgpack:"col_end"`
	RenderCol int32 `yaml:"render_col" msgpack:"render_col"`

	Level        int32 `yaml:"level" msgpack:"level"`
	BraceLevel   int32 `yaml:"brace_level" msgpack:"brace_level"`
	PreprocLevel int32 `yaml:"pp_level" msgpack:"pp_level"`

	Newlines int32 `yaml:"newlines,omitempty" msgpack:"newlines"`
}

// FromStream serializes a stream.
//
// Fails only if a position or level does not fit the wire width, which
// indicates a corrupted stream rather than a large file.
func FromStream(path string, s *token.Stream) (*Dump, error) {
	d := &Dump{Path: path, Tokens: make([]Entry, 0, s.Len())}
	for tok := range s.All() {
		e := Entry{
			Kind:           tok.Kind().String(),
			Text:           tok.Text(),
			StatementStart: tok.Flags().Has(token.FlagStatementStart),
			InPreproc:      tok.Flags().Has(token.FlagInPreproc),
		}
		if tok.Role() != token.RoleNone {
			e.Role = tok.Role().String()
		}

		var err error
		put := func(dst *int32, v int, what string) {
			if err != nil {
				return
			}
			*dst, err = safecast.Conv[int32](v)
			if err != nil {
				err = fmt.Errorf("tokenio: %s %d on line %d: %w", what, v, tok.Line(), err)
			}
		}
		put(&e.Line, tok.Line(), "line")
		put(&e.Col, tok.Col(), "column")
		put(&e.ColEnd, tok.ColEnd(), "end column")
		put(&e.RenderCol, tok.RenderCol(), "render column")
		put(&e.Level, tok.Level(), "level")
		put(&e.BraceLevel, tok.BraceLevel(), "brace level")
		put(&e.PreprocLevel, tok.PreprocLevel(), "preprocessor level")
		put(&e.Newlines, tok.NewlineCount(), "newline count")
		if err != nil {
			return nil, err
		}

		d.Tokens = append(d.Tokens, e)
	}
	return d, nil
}

// Stream rebuilds a token stream from the dump.
func (d *Dump) Stream() (*token.Stream, error) {
	s := &token.Stream{}
	for i, e := range d.Tokens {
		kind, ok := token.KindByName(e.Kind)
		if !ok {
			return nil, fmt.Errorf("tokenio: token %d: unknown kind %q", i, e.Kind)
		}
		role := token.RoleNone
		if e.Role != "" {
			role, ok = token.RoleByName(e.Role)
			if !ok {
				return nil, fmt.Errorf("tokenio: token %d: unknown role %q", i, e.Role)
			}
		}
		var flags token.Flags
		if e.StatementStart {
			flags |= token.FlagStatementStart
		}
		if e.InPreproc {
			flags |= token.FlagInPreproc
		}
		s.Append(token.Proto{
			Kind:         kind,
			Role:         role,
			Flags:        flags,
			Text:         e.Text,
			Line:         int(e.Line),
			Col:          int(e.Col),
			ColEnd:       int(e.ColEnd),
			RenderCol:    int(e.RenderCol),
			Level:        int(e.Level),
			BraceLevel:   int(e.BraceLevel),
			PreprocLevel: int(e.PreprocLevel),
			Newlines:     int(e.Newlines),
		})
	}
	return s, nil
}

// Decode reads one dump from r.
func Decode(r io.Reader, f Format) (*Dump, error) {
	d := new(Dump)
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("tokenio: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(d); err != nil {
			return nil, fmt.Errorf("tokenio: %w", err)
		}
	default:
		return nil, fmt.Errorf("tokenio: unknown format %d", int(f))
	}
	return d, nil
}

// Encode writes one dump to w.
func Encode(w io.Writer, d *Dump, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("tokenio: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("tokenio: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("tokenio: unknown format %d", int(f))
	}
}

// ReadFile loads a dump, detecting the format from the file extension.
func ReadFile(path string) (*Dump, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokenio: %w", err)
	}
	defer file.Close()
	return Decode(file, f)
}

// WriteFile stores a dump, detecting the format from the file extension.
func WriteFile(path string, d *Dump) (err error) {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tokenio: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("tokenio: %w", cerr)
		}
	}()
	return Encode(file, d, f)
}
