// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/wasmbind/generator"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported conversion pairs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SOURCE\tTARGET\tNAME\tFILES\tDESCRIPTION")
		for _, g := range generator.All() {
			m := g.Metadata()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.Source, m.Target, m.Name, strings.Join(m.FileExtensions, " "), m.Description)
		}
		return tw.Flush()
	},
}
