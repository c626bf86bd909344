// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command wasmbind generates cross-language call bindings for functions
// exported from Rust or C++ source.
//
// Usage:
//
//	wasmbind generate <source> <target> <input> <module> [flags]
//	wasmbind plan <source> <target> <input> [flags]
//	wasmbind list
//	wasmbind version
//
// Global flags:
//
//	--verbose        Log pipeline stages to stderr
//	--color string   Colorize output (auto|on|off)
//	--quiet          Suppress the summary line
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wasmbind",
	Short: "Cross-language binding generator",
	Long: `wasmbind reads a source file, finds the functions marked for export and
writes bindings callable from another language, a build descriptor and a
runnable demo.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setColor(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("verbose", false, "log pipeline stages to stderr")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setColor(cmd *cobra.Command) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto, on or off)", mode)
	}
	return nil
}

// newLogger returns a development logger with --verbose and a no-op
// logger otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
