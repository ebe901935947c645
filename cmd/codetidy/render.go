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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/tokenio"
)

var renderCmd = &cobra.Command{
	Use:   "render [dump...]",
	Short: "Render token dumps back to source text",
	Long: `Render reconstructs source text from each token dump without applying
any rules. Useful for checking that a dump round-trips cleanly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		for _, path := range args {
			dump, err := tokenio.ReadFile(path)
			if err != nil {
				return err
			}
			stream, err := dump.Stream()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := stream.Render(os.Stdout); err != nil {
				return err
			}
		}
		return nil
	},
}
