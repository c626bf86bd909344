// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for binding generators.
//
// A generator handles one (source language, target language) pair: it
// reads exported functions from source text and produces the target-side
// bindings, a build descriptor and a runnable example.
package generator

import "context"

// Generator is the interface that all binding generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files from source text. It never writes
	// to disk; see [Output.WriteDir].
	Generate(ctx context.Context, src []byte, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "rust-cpp").
	Name string

	// Source is the source language tag (e.g., "rust").
	Source string

	// Target is the target language tag (e.g., "cpp").
	Target string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".hpp", ".cpp"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// Pair returns the registry key of the generator.
func (m Metadata) Pair() string {
	return PairKey(m.Source, m.Target)
}

// PairKey returns the registry key for a conversion pair, "source:target".
func PairKey(source, target string) string {
	return source + ":" + target
}
