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
	"go.uber.org/zap"

	"github.com/codetidy/codetidy"
	"github.com/codetidy/codetidy/config"
	"github.com/codetidy/codetidy/tokenio"
)

var (
	applyConfig string
	applyWrite  bool
	applyJobs   int
)

var applyCmd = &cobra.Command{
	Use:   "apply [dump...]",
	Short: "Apply the configured rules to token dumps",
	Long: `Apply loads each token dump (YAML or msgpack, by extension), runs the
configured rewrite rules over it, and either renders the result to stdout
or, with --write, stores the rewritten dump back in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if applyConfig != "" {
			var err error
			cfg, err = config.Load(applyConfig)
			if err != nil {
				return err
			}
		}

		log := zap.NewNop()
		if verbose {
			var err error
			log, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("codetidy: %w", err)
			}
			defer log.Sync() //nolint:errcheck // Best effort on exit.
		}

		inputs := make([]*codetidy.Input, 0, len(args))
		dumpPaths := make(map[string]string, len(args)) // source path -> dump file
		for _, path := range args {
			dump, err := tokenio.ReadFile(path)
			if err != nil {
				return err
			}
			stream, err := dump.Stream()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			srcPath := dump.Path
			if srcPath == "" {
				srcPath = path
			}
			inputs = append(inputs, &codetidy.Input{Path: srcPath, Stream: stream})
			dumpPaths[srcPath] = path
		}

		runner := codetidy.NewRunner(cfg,
			codetidy.WithLogger(log),
			codetidy.WithParallelism(applyJobs),
		)
		results, err := runner.Run(cmd.Context(), inputs)
		if err != nil {
			return err
		}

		for _, in := range inputs {
			if applyWrite {
				dump, err := tokenio.FromStream(in.Path, in.Stream)
				if err != nil {
					return err
				}
				if err := tokenio.WriteFile(dumpPaths[in.Path], dump); err != nil {
					return err
				}
				continue
			}
			if err := in.Stream.Render(os.Stdout); err != nil {
				return err
			}
		}

		for res := range results.All() {
			log.Info("processed",
				zap.String("path", res.Path),
				zap.Int("parens_inserted", res.Stats.ParensInserted),
				zap.Int("groups_aligned", res.Stats.GroupsAligned),
				zap.Int("tokens_moved", res.Stats.TokensMoved))
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyConfig, "config", "c", "", "configuration file (YAML)")
	applyCmd.Flags().BoolVarP(&applyWrite, "write", "w", false, "rewrite dump files in place instead of rendering")
	applyCmd.Flags().IntVarP(&applyJobs, "jobs", "j", 0, "max dumps processed concurrently (0 = GOMAXPROCS)")
}
