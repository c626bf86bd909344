// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package extract finds exported functions in source text.
//
// Two strategies share one output shape: [Rust] walks a tree-sitter syntax
// tree, [Cpp] matches a fixed declaration shape with a regular expression.
// Both report signatures in declaration order and turn per-function
// problems into warnings instead of errors, so one malformed declaration
// never hides the rest of the file.
package extract

import (
	"context"
	"fmt"

	"github.com/albertocavalcante/wasmbind/internal/model"
)

// Extractor finds exported function signatures in source text.
type Extractor interface {
	// Language returns the source language tag handled by the extractor.
	Language() string

	// Extract returns the exported signatures of src in declaration order.
	// Only failures that make the whole input unusable are returned as
	// errors; everything else is a warning on the result.
	Extract(ctx context.Context, src []byte) (*Result, error)
}

// Result is the output of an extraction.
type Result struct {
	Signatures []model.Signature
	Warnings   []model.Warning
}

// collector accumulates signatures while enforcing unique names.
type collector struct {
	result Result
	seen   map[string]int
}

func newCollector() *collector {
	return &collector{seen: make(map[string]int)}
}

func (c *collector) add(sig model.Signature) {
	if first, ok := c.seen[sig.Name]; ok {
		c.result.Warnings = append(c.result.Warnings, model.Warning{
			Kind:     model.DuplicateFunction,
			Function: sig.Name,
			Line:     sig.Line,
			Message:  fmt.Sprintf("already exported at line %d, keeping the first declaration", first),
		})
		return
	}
	c.seen[sig.Name] = sig.Line
	c.result.Signatures = append(c.result.Signatures, sig)
}

func (c *collector) warn(kind model.WarningKind, fn string, line int, format string, args ...any) {
	c.result.Warnings = append(c.result.Warnings, model.Warning{
		Kind:     kind,
		Function: fn,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *collector) done() *Result {
	r := c.result
	if r.Signatures == nil {
		r.Signatures = []model.Signature{}
	}
	return &r
}
