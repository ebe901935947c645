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

// Command codetidy applies rewrite rules to token-stream dumps produced by
// an external tokenizer, and renders the result back to source text.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "codetidy",
	Short:         "Token-stream formatter rule engine",
	Long:          "codetidy rewrites tokenized source in place: aligning repeated call parameters and parenthesizing bare boolean comparisons.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(renderCmd)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log rule traces to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
