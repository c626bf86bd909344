// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/wasmbind/generator"
)

var (
	generateInput  inputFlags
	generateOutput string
	generateDryRun bool
)

func init() {
	generateInput.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (default: <module>-bindings)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print the files to stdout without writing them")
}

var generateCmd = &cobra.Command{
	Use:   "generate <source> <target> <input> <module>",
	Short: "Generate bindings, a build descriptor and a demo",
	Example: `  # C++ bindings for a wasm_bindgen crate
  wasmbind generate rust cpp src/lib.rs math

  # Rust bindings for an Emscripten library, into ./out
  wasmbind generate cpp rust math.cpp math -o out

  # Read the source from stdin
  cat lib.rs | wasmbind generate rust cpp - math`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		j, err := prepare(ctx, cmd, &generateInput, args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		out, err := j.run(ctx)
		if err != nil {
			return err
		}
		printWarnings(cmd, out)

		if generateDryRun {
			for _, f := range out.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n%s\n", f.Path, f.Content)
			}
			return nil
		}

		dir := generateOutput
		if dir == "" {
			dir = j.project.Output
		}
		if dir == "" {
			dir = generator.DefaultOutputDir(j.cfg.Module)
		}
		if err := out.WriteDir(dir); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d functions, %d files in %s\n",
				color.GreenString("generated"), len(out.Plans), len(out.Files), dir)
		}
		return nil
	},
}
