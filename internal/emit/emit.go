// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit turns binding plans into artifact text.
//
// The engine builds a [Context], asks a [Renderer] to fill one template per
// artifact and returns the results in memory. Writing them anywhere is the
// caller's job, so a failed render never leaves partial output behind.
package emit

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/wasmbind/internal/plan"
)

// ErrMissingTemplate is returned by a [Renderer] asked for a template it
// does not have.
var ErrMissingTemplate = errors.New("template not found")

// Renderer fills a named template with data.
type Renderer interface {
	Render(templateID string, data any) (string, error)
}

// Kind identifies the role of an artifact.
type Kind uint8

const (
	Declaration Kind = iota
	Implementation
	BuildDescriptor
	Example
)

func (k Kind) String() string {
	switch k {
	case Declaration:
		return "declaration"
	case Implementation:
		return "implementation"
	case BuildDescriptor:
		return "build descriptor"
	case Example:
		return "example"
	}
	return "unknown"
}

// Artifact describes one generated file.
type Artifact struct {
	Kind     Kind
	Template string

	// Path returns the file path, relative to the output directory,
	// for the given module name.
	Path func(module string) string
}

// File is a rendered artifact.
type File struct {
	Path    string
	Kind    Kind
	Content string
}

// Engine renders a fixed list of artifacts.
type Engine struct {
	Renderer  Renderer
	Artifacts []Artifact
	Demo      Style

	// HeaderName returns the header_name context value for a module.
	// If nil, the header name is empty.
	HeaderName func(module string) string
}

// Context builds the full template context, demo calls included.
func (e *Engine) Context(module, source string, plans []plan.Plan) Context {
	header := ""
	if e.HeaderName != nil {
		header = e.HeaderName(module)
	}
	ctx := NewContext(module, header, source, plans)
	if e.Demo != nil {
		ctx.Demo = DemoCalls(module, plans, e.Demo)
	}
	return ctx
}

// Emit renders every artifact in order. Any render failure aborts the
// whole emission.
func (e *Engine) Emit(module, source string, plans []plan.Plan) ([]File, Context, error) {
	ctx := e.Context(module, source, plans)
	if e.Renderer == nil {
		return nil, ctx, errors.New("emit: no renderer configured")
	}

	files := make([]File, 0, len(e.Artifacts))
	for _, a := range e.Artifacts {
		out, err := e.Renderer.Render(a.Template, ctx)
		if err != nil {
			return nil, ctx, fmt.Errorf("render %s %s: %w", a.Kind, a.Template, err)
		}
		files = append(files, File{
			Path:    a.Path(module),
			Kind:    a.Kind,
			Content: out,
		})
	}
	return files, ctx, nil
}
