// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/plan"
)

var (
	planInput  inputFlags
	planFormat string
	planModule string
)

func init() {
	planInput.register(planCmd)
	planCmd.Flags().StringVar(&planFormat, "format", "text", "output format (text|json|msgpack)")
	planCmd.Flags().StringVar(&planModule, "module", "", "module name (default: input file name)")
}

var planCmd = &cobra.Command{
	Use:   "plan <source> <target> <input>",
	Short: "Print the binding plans without writing files",
	Long: `plan runs extraction, type resolution and slot planning and prints the
result. The json and msgpack formats print the template context, the exact
data the templates receive.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch planFormat {
		case "text", "json", "msgpack":
		default:
			return fmt.Errorf("invalid --format %q (want text, json or msgpack)", planFormat)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		module := planModule
		if module == "" {
			module = moduleFromPath(args[2])
		}
		j, err := prepare(ctx, cmd, &planInput, args[0], args[1], args[2], module)
		if err != nil {
			return err
		}
		out, err := j.run(ctx)
		if err != nil {
			return err
		}
		printWarnings(cmd, out)
		return writePlan(cmd.OutOrStdout(), planFormat, out.Plans, out.Context)
	},
}

func writePlan(w io.Writer, format string, plans []plan.Plan, ctx emit.Context) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ctx)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(ctx)
	default:
		_, err := io.WriteString(w, plan.Format(plans))
		return err
	}
}
