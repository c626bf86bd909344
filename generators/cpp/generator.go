// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cpp generates C++ bindings for functions exported by a Rust
// module compiled to WebAssembly. The bindings call the module through the
// wasmer C API.
package cpp

import (
	"context"
	"embed"
	"io/fs"

	"github.com/albertocavalcante/wasmbind/generator"
	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/extract"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Templates returns the embedded templates of the C++ target.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

func headerName(module string) string { return module + ".hpp" }

var target = &generator.Target{
	Extractor: func(markers []string) extract.Extractor {
		return extract.NewRust(markers...)
	},
	Table:     RustToCpp,
	Templates: Templates(),
	Funcs:     funcs,
	Artifacts: []emit.Artifact{
		{Kind: emit.Declaration, Template: "header.hpp.tmpl", Path: headerName},
		{Kind: emit.Implementation, Template: "source.cpp.tmpl", Path: func(m string) string { return m + ".cpp" }},
		{Kind: emit.BuildDescriptor, Template: "Makefile.tmpl", Path: func(string) string { return "Makefile" }},
		{Kind: emit.Example, Template: "demo.cpp.tmpl", Path: func(string) string { return "demo.cpp" }},
	},
	Demo:       demoStyle{},
	HeaderName: headerName,
}

// CppGenerator implements [generator.Generator] for the rust -> cpp pair.
type CppGenerator struct{}

// NewGenerator creates a new C++ generator.
func NewGenerator() *CppGenerator {
	return &CppGenerator{}
}

// Metadata returns information about this generator.
func (g *CppGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "rust-cpp",
		Source:         "rust",
		Target:         "cpp",
		Version:        "1.0.0",
		Description:    "Generate C++ wasmer bindings for Rust wasm exports",
		FileExtensions: []string{".hpp", ".cpp"},
		URL:            "https://github.com/albertocavalcante/wasmbind",
	}
}

// Generate produces the header, implementation, Makefile and demo.
func (g *CppGenerator) Generate(ctx context.Context, src []byte, cfg generator.Config) (*generator.Output, error) {
	return target.Generate(ctx, src, cfg)
}
