// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/wasmbind/generator"
	"github.com/albertocavalcante/wasmbind/internal/config"
	"github.com/albertocavalcante/wasmbind/internal/fetch"
)

// inputFlags are shared by generate and plan.
type inputFlags struct {
	configPath string
	templates  string
	markers    []string
	timeout    time.Duration
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to "+config.FileName+" (default: search upwards)")
	cmd.Flags().StringVar(&f.templates, "templates", "", "directory of *.tmpl files overriding the built-in templates")
	cmd.Flags().StringArrayVar(&f.markers, "marker", nil, "export marker (repeatable, replaces the default)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", fetch.DefaultTimeout, "timeout for remote input")
}

// job is a resolved invocation: the generator, the loaded input and the
// generator config after merging flags over the project config.
type job struct {
	gen     generator.Generator
	project *config.Config
	cfg     generator.Config
	text    []byte
}

// prepare looks up the conversion pair, loads the project config and
// reads the input, in that order. An unsupported pair fails before any
// input is read.
func prepare(ctx context.Context, cmd *cobra.Command, f *inputFlags, source, target, input, module string) (*job, error) {
	source, target = strings.ToLower(source), strings.ToLower(target)
	gen, err := generator.Lookup(source, target)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(generator.List(), ", "))
	}

	project, err := loadProject(f.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	res, err := fetch.Load(ctx, fetch.Options{
		Path:    input,
		Timeout: f.timeout,
		Stdin:   cmd.InOrStdin(),
	})
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}

	cfg := generator.Config{
		Module:      module,
		Source:      res.Source,
		Markers:     project.MarkersFor(source),
		Aliases:     project.AliasesFor(source),
		TemplateDir: project.Templates,
		Logger:      logger,
	}
	if len(f.markers) > 0 {
		cfg.Markers = f.markers
	}
	if f.templates != "" {
		cfg.TemplateDir = f.templates
	}
	return &job{gen: gen, project: project, cfg: cfg, text: res.Text}, nil
}

// moduleFromPath derives a module name from an input path: the file name
// without extension, or "stdin".
func moduleFromPath(p string) string {
	if p == fetch.Stdin {
		return "stdin"
	}
	base := path.Base(strings.TrimSuffix(filepath.ToSlash(p), "/"))
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == "/" {
		return "module"
	}
	return base
}

func loadProject(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Discover(wd)
}

// run executes the generator of j.
func (j *job) run(ctx context.Context) (*generator.Output, error) {
	defer func() { _ = j.cfg.Logger.Sync() }()
	out, err := j.gen.Generate(ctx, j.text, j.cfg)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", j.gen.Metadata().Name, err)
	}
	return out, nil
}

var warnColor = color.New(color.FgYellow)

// printWarnings writes warnings to the command's error stream.
func printWarnings(cmd *cobra.Command, out *generator.Output) {
	w := cmd.ErrOrStderr()
	for _, warn := range out.Warnings {
		warnColor.Fprintf(w, "warning: %s\n", warn)
	}
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Flags().GetBool("quiet")
	return q
}
