// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/model"
	"github.com/albertocavalcante/wasmbind/internal/plan"
)

// File is one generated file.
type File struct {
	// Path is relative to the output directory, slash separated.
	Path    string
	Content []byte
}

// Output contains generated files, in generation order.
type Output struct {
	Files []File

	// Warnings are recoverable problems found while generating.
	Warnings []model.Warning

	// Plans are the binding plans the files were rendered from.
	Plans []plan.Plan

	// Context is the data the templates were rendered with.
	Context emit.Context
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{}
}

// Add appends a file to the output.
func (o *Output) Add(path string, content []byte) {
	o.Files = append(o.Files, File{Path: path, Content: content})
}

// Paths returns the file paths in order.
func (o *Output) Paths() []string {
	paths := make([]string, len(o.Files))
	for i, f := range o.Files {
		paths[i] = f.Path
	}
	return paths
}

// WriteDir writes every file under dir.
//
// Files are first written to a staging directory next to dir and only
// moved into place once all of them were written, so a failed write
// leaves dir untouched.
func (o *Output) WriteDir(dir string) error {
	for _, f := range o.Files {
		if !filepath.IsLocal(filepath.FromSlash(f.Path)) {
			return fmt.Errorf("output path %q escapes the output directory", f.Path)
		}
	}

	dir = filepath.Clean(dir)
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	stage, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+"-staging-*")
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	for _, f := range o.Files {
		p := filepath.Join(stage, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("stage %s: %w", f.Path, err)
		}
		if err := os.WriteFile(p, f.Content, 0o644); err != nil {
			return fmt.Errorf("stage %s: %w", f.Path, err)
		}
	}

	for _, f := range o.Files {
		rel := filepath.FromSlash(f.Path)
		dst := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", f.Path, err)
		}
		if err := os.Rename(filepath.Join(stage, rel), dst); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}
