// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline runs extraction, planning and emission for one input.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/extract"
	"github.com/albertocavalcante/wasmbind/internal/model"
	"github.com/albertocavalcante/wasmbind/internal/plan"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// Stages are the collaborators of a run.
type Stages struct {
	Extractor extract.Extractor
	Resolver  *typemap.Resolver

	// Engine renders the artifacts. If nil, the run stops after planning
	// and Result.Files is empty.
	Engine *emit.Engine

	Logger *zap.Logger
}

// Input is one source file to process.
type Input struct {
	// Module names the generated bindings.
	Module string

	// Source describes where Text came from, e.g. a file path.
	Source string

	Text []byte
}

// Result is the outcome of a successful run.
type Result struct {
	Signatures []model.Signature
	Plans      []plan.Plan
	Files      []emit.File
	Context    emit.Context

	// Warnings lists extraction warnings first, then planning warnings
	// in function order.
	Warnings []model.Warning
}

// Run processes in through every stage. Warnings never fail a run; any
// error means no output should be written.
func Run(ctx context.Context, st Stages, in Input) (*Result, error) {
	if st.Extractor == nil || st.Resolver == nil {
		return nil, errors.New("pipeline: extractor and resolver are required")
	}
	log := st.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("module", in.Module), zap.String("source", in.Source))

	extracted, err := st.Extractor.Extract(ctx, in.Text)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", in.Source, err)
	}
	log.Debug("extracted signatures",
		zap.String("language", st.Extractor.Language()),
		zap.Int("functions", len(extracted.Signatures)),
		zap.Int("warnings", len(extracted.Warnings)),
	)

	res := &Result{
		Signatures: extracted.Signatures,
		Warnings:   append([]model.Warning(nil), extracted.Warnings...),
	}

	plans, planWarnings := plan.BuildAll(extracted.Signatures, st.Resolver)
	res.Plans = plans
	res.Warnings = append(res.Warnings, planWarnings...)
	log.Debug("planned bindings",
		zap.String("table", st.Resolver.Name()),
		zap.Int("plans", len(plans)),
		zap.Int("warnings", len(planWarnings)),
	)

	if st.Engine == nil {
		res.Context = emit.NewContext(in.Module, "", in.Source, plans)
		return res, nil
	}

	files, ectx, err := st.Engine.Emit(in.Module, in.Source, plans)
	if err != nil {
		return nil, err
	}
	res.Files = files
	res.Context = ectx
	for _, f := range files {
		log.Debug("rendered artifact",
			zap.String("path", f.Path),
			zap.Stringer("kind", f.Kind),
			zap.Int("bytes", len(f.Content)),
		)
	}
	return res, nil
}
