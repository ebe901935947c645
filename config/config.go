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

// Package config carries the explicit configuration values for codetidy's
// rule engines.
//
// No engine reads ambient global state: a [Config] value is passed into
// every engine entry point. Configs are plain data and may be shared
// read-only between goroutines.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Language selects the active language mode. A handful of rewrites are
// invalid in specific modes; engines consult the mode before committing
// them.
type Language int

const (
	LangC Language = iota
	LangCPP
	LangCS
	LangJava
	LangObjC
)

var languageNames = map[Language]string{
	LangC:    "c",
	LangCPP:  "cpp",
	LangCS:   "cs",
	LangJava: "java",
	LangObjC: "objc",
}

// String implements [fmt.Stringer].
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("config.Language(%d)", int(l))
}

// UnmarshalYAML implements [yaml.Unmarshaler], accepting the lower-case
// names that String produces.
func (l *Language) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	for lang, n := range languageNames {
		if n == name {
			*l = lang
			return nil
		}
	}
	return fmt.Errorf("config: unknown language %q", name)
}

// MarshalYAML implements [yaml.Marshaler].
func (l Language) MarshalYAML() (any, error) {
	name, ok := languageNames[l]
	if !ok {
		return nil, fmt.Errorf("config: unknown language %d", int(l))
	}
	return name, nil
}

// Align configures the alignment rules.
type Align struct {
	// SameCallParams enables aligning the arguments of consecutive
	// identical function calls.
	SameCallParams bool `yaml:"same_call_params"`
	// SameCallParamsSpan is the number of intervening newlines tolerated
	// between group members before the group closes. Zero means the
	// default of 3.
	SameCallParamsSpan int `yaml:"same_call_params_span"`
	// SameCallParamsThresh is the maximum column deviation tolerated
	// before a member is excluded from its group. Zero disables the
	// threshold.
	SameCallParamsThresh int `yaml:"same_call_params_thresh"`
	// NumberRight requests explicit right-justification for all numeric
	// members. When off, columns whose first member is numeric are still
	// right-justified by default unless OnTabstop is set.
	NumberRight bool `yaml:"number_right"`
	// OnTabstop aligns to tab stops instead of right-justifying numerics.
	OnTabstop bool `yaml:"on_tabstop"`
	// TabWidth is the tab stop width; zero means 8.
	TabWidth int `yaml:"tab_width"`
}

// Parens configures boolean-expression parenthesization.
type Parens struct {
	// FullParenIfBool wraps bare comparisons inside if/else-if/switch
	// conditions.
	FullParenIfBool bool `yaml:"full_paren_if_bool"`
	// FullParenAssignBool wraps bare comparisons in boolean assignments.
	FullParenAssignBool bool `yaml:"full_paren_assign_bool"`
	// FullParenReturnBool wraps bare comparisons in return expressions.
	FullParenReturnBool bool `yaml:"full_paren_return_bool"`
}

// Override is a partial configuration applied to paths matching a glob
// pattern (doublestar syntax). Later overrides win.
type Override struct {
	Pattern  string    `yaml:"pattern"`
	Language *Language `yaml:"language,omitempty"`
	Align    *Align    `yaml:"align,omitempty"`
	Parens   *Parens   `yaml:"parens,omitempty"`
}

// Config is the full configuration for a rule run.
type Config struct {
	Language  Language   `yaml:"language"`
	Align     Align      `yaml:"align"`
	Parens    Parens     `yaml:"parens"`
	Overrides []Override `yaml:"overrides,omitempty"`
}

// Default returns the default configuration: all rules off, C mode,
// span 3, tab width 8.
func Default() *Config {
	return &Config{
		Language: LangC,
		Align: Align{
			SameCallParamsSpan: 3,
			TabWidth:           8,
		},
	}
}

// Load reads a YAML configuration file on top of [Default]. Unknown keys
// are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration bytes on top of [Default]. Unknown keys
// are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for _, ov := range cfg.Overrides {
		if !doublestar.ValidatePattern(ov.Pattern) {
			return nil, fmt.Errorf("invalid override pattern %q", ov.Pattern)
		}
	}
	return cfg, nil
}

// For resolves the effective configuration for a file path, applying any
// matching overrides in order. The receiver is not modified.
func (c *Config) For(path string) Config {
	eff := *c
	eff.Overrides = nil
	for _, ov := range c.Overrides {
		ok, err := doublestar.Match(ov.Pattern, path)
		if err != nil || !ok {
			continue
		}
		if ov.Language != nil {
			eff.Language = *ov.Language
		}
		if ov.Align != nil {
			eff.Align = *ov.Align
		}
		if ov.Parens != nil {
			eff.Parens = *ov.Parens
		}
	}
	return eff
}
