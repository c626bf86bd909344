// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "go.uber.org/zap"

// Config contains generator configuration.
type Config struct {
	// Module names the generated bindings and their files.
	Module string

	// Source describes where the input came from (for headers).
	Source string

	// Markers overrides the export markers of the source language.
	// Empty means the extractor defaults.
	Markers []string

	// Aliases rewrite source type tokens before resolution.
	Aliases map[string]string

	// TemplateDir holds *.tmpl files replacing embedded templates of the
	// same name (optional).
	TemplateDir string

	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOutputDir returns the output directory used when none is given.
func DefaultOutputDir(module string) string {
	return module + "-bindings"
}
