// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"
	"io/fs"
	"text/template"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/extract"
	"github.com/albertocavalcante/wasmbind/internal/pipeline"
	"github.com/albertocavalcante/wasmbind/internal/render"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// Target is what a target package supplies to generate bindings for
// one conversion pair.
type Target struct {
	// Extractor creates the source-language extractor. An empty marker
	// list selects the extractor's defaults.
	Extractor func(markers []string) extract.Extractor

	// Table maps source type tokens to the target language.
	Table *typemap.Table

	// Templates holds the embedded *.tmpl files.
	Templates fs.FS

	// Funcs are extra template functions.
	Funcs template.FuncMap

	Artifacts  []emit.Artifact
	Demo       emit.Style
	HeaderName func(module string) string
}

// Stages builds the pipeline stages for cfg.
func (t *Target) Stages(cfg Config) (pipeline.Stages, error) {
	tmpls, err := render.New(t.Templates, render.Options{
		Funcs:       t.Funcs,
		OverrideDir: cfg.TemplateDir,
	})
	if err != nil {
		return pipeline.Stages{}, err
	}
	return pipeline.Stages{
		Extractor: t.Extractor(cfg.Markers),
		Resolver:  typemap.NewResolver(t.Table, cfg.Aliases),
		Engine: &emit.Engine{
			Renderer:   tmpls,
			Artifacts:  t.Artifacts,
			Demo:       t.Demo,
			HeaderName: t.HeaderName,
		},
		Logger: cfg.Logger,
	}, nil
}

// Generate runs the pipeline over src and collects the rendered files.
func (t *Target) Generate(ctx context.Context, src []byte, cfg Config) (*Output, error) {
	if cfg.Module == "" {
		return nil, fmt.Errorf("module name is required")
	}
	stages, err := t.Stages(cfg)
	if err != nil {
		return nil, err
	}
	res, err := pipeline.Run(ctx, stages, pipeline.Input{
		Module: cfg.Module,
		Source: cfg.Source,
		Text:   src,
	})
	if err != nil {
		return nil, err
	}

	out := NewOutput()
	for _, f := range res.Files {
		out.Add(f.Path, []byte(f.Content))
	}
	out.Warnings = res.Warnings
	out.Plans = res.Plans
	out.Context = res.Context
	return out, nil
}
