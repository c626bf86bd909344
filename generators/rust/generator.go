// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rust generates a Rust crate wrapping the functions exported by
// a C++ library: raw extern "C" declarations plus safe wrappers.
package rust

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

// Templates returns the embedded templates of the Rust target.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

func sysFile(module string) string { return module + "_sys.rs" }

var target = &generator.Target{
	Extractor: func(markers []string) extract.Extractor {
		return extract.NewCpp(markers...)
	},
	Table:     CppToRust,
	Templates: Templates(),
	Funcs:     funcs,
	Artifacts: []emit.Artifact{
		{Kind: emit.Declaration, Template: "sys.rs.tmpl", Path: func(m string) string { return "src/" + sysFile(m) }},
		{Kind: emit.Implementation, Template: "lib.rs.tmpl", Path: func(string) string { return "src/lib.rs" }},
		{Kind: emit.BuildDescriptor, Template: "Cargo.toml.tmpl", Path: func(string) string { return "Cargo.toml" }},
		{Kind: emit.Example, Template: "demo.rs.tmpl", Path: func(string) string { return "examples/demo.rs" }},
	},
	Demo:       demoStyle{},
	HeaderName: sysFile,
}

// RustGenerator implements [generator.Generator] for the cpp -> rust pair.
type RustGenerator struct{}

// NewGenerator creates a new Rust generator.
func NewGenerator() *RustGenerator {
	return &RustGenerator{}
}

// Metadata returns information about this generator.
func (g *RustGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "cpp-rust",
		Source:         "cpp",
		Target:         "rust",
		Version:        "1.0.0",
		Description:    "Generate a Rust FFI crate for C++ exports",
		FileExtensions: []string{".rs", ".toml"},
		URL:            "https://github.com/albertocavalcante/wasmbind",
	}
}

// Generate produces the FFI declarations, safe wrappers, Cargo.toml and demo.
func (g *RustGenerator) Generate(ctx context.Context, src []byte, cfg generator.Config) (*generator.Output, error) {
	return target.Generate(ctx, src, cfg)
}
