// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render implements the template renderer used by the emit
// package on top of text/template.
//
// Templates are loaded from a file system (usually embedded in the target
// package) and may be replaced one by one from an override directory: a
// file in the override directory wins over the embedded file of the same
// name.
package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/albertocavalcante/wasmbind/internal/emit"
)

// Pattern selects template files.
const Pattern = "*.tmpl"

// Templates is a parsed template set. It implements [emit.Renderer].
type Templates struct {
	set *template.Template
}

// Options configures [New].
type Options struct {
	// Funcs are added to [BaseFuncs] before parsing.
	Funcs template.FuncMap

	// OverrideDir, if set, is a directory whose *.tmpl files replace
	// the embedded templates of the same name.
	OverrideDir string
}

// BaseFuncs are available to every template.
func BaseFuncs() template.FuncMap {
	return template.FuncMap{
		"camel":     strcase.ToLowerCamel,
		"pascal":    strcase.ToCamel,
		"snake":     strcase.ToSnake,
		"screaming": strcase.ToScreamingSnake,
		"kebab":     strcase.ToKebab,
		"join":      strings.Join,
		"add":       func(a, b int) int { return a + b },
		"sub":       func(a, b int) int { return a - b },
		"last":      func(i, n int) bool { return i == n-1 },
	}
}

// New parses every template in fsys, then the overrides.
func New(fsys fs.FS, opts Options) (*Templates, error) {
	funcs := BaseFuncs()
	for k, v := range opts.Funcs {
		funcs[k] = v
	}

	set := template.New("").Funcs(funcs).Option("missingkey=error")
	if err := parseAll(set, fsys); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if opts.OverrideDir != "" {
		info, err := os.Stat(opts.OverrideDir)
		if err != nil {
			return nil, fmt.Errorf("template override dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template override dir: %s is not a directory", opts.OverrideDir)
		}
		if err := parseAll(set, os.DirFS(opts.OverrideDir)); err != nil {
			return nil, fmt.Errorf("parse override templates: %w", err)
		}
	}
	return &Templates{set: set}, nil
}

// parseAll adds every matching file of fsys to set, in name order.
// A template parsed later replaces an earlier one of the same name.
func parseAll(set *template.Template, fsys fs.FS) error {
	names, err := fs.Glob(fsys, Pattern)
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		if _, err := set.New(path.Base(name)).Parse(string(data)); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the names of the loaded templates, sorted.
func (t *Templates) Names() []string {
	var names []string
	for _, tmpl := range t.set.Templates() {
		if tmpl.Name() != "" && strings.HasSuffix(tmpl.Name(), ".tmpl") {
			names = append(names, tmpl.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Render implements [emit.Renderer].
func (t *Templates) Render(templateID string, data any) (string, error) {
	tmpl := t.set.Lookup(templateID)
	if tmpl == nil || tmpl.Tree == nil {
		return "", fmt.Errorf("%w: %q", emit.ErrMissingTemplate, templateID)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", templateID, err)
	}
	return buf.String(), nil
}
