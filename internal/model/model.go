// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the language-neutral description of exported
// functions found in a source file, and the warnings collected while
// turning them into bindings.
//
// A Signature is produced once per exported function by an extractor and
// is never modified afterwards. Type tokens are kept as normalized source
// text; classifying them is the job of the typemap package.
package model

import "fmt"

// Param is a single named function parameter.
type Param struct {
	// Name is the parameter identifier as written in the source.
	Name string `json:"name"`

	// Type is the normalized source type token (e.g. "i32", "&str", "const char*").
	Type string `json:"type"`
}

// Signature describes one exported function.
type Signature struct {
	// Name is the function name. Unique within a run.
	Name string `json:"name"`

	// Params are the parameters in declaration order.
	Params []Param `json:"params"`

	// Return is the normalized return type token.
	// Empty means the function returns nothing.
	Return string `json:"return,omitempty"`

	// Line is the 1-based source line of the declaration (0 if unknown).
	Line int `json:"line,omitempty"`
}

// HasReturn reports whether the signature declares a return type.
func (s Signature) HasReturn() bool {
	return s.Return != ""
}

// WarningKind classifies a recoverable problem.
type WarningKind uint8

const (
	// MalformedParameter: a parameter could not be decomposed into a single
	// (name, type) pair. The whole function is skipped.
	MalformedParameter WarningKind = iota

	// UnsupportedType: a type token fell back to the opaque mapping.
	UnsupportedType

	// DuplicateFunction: an exported name was seen more than once.
	// Only the first declaration is kept.
	DuplicateFunction

	// SyntaxError: the parser recovered from a syntax error. Functions
	// inside the damaged region may be missing.
	SyntaxError
)

func (k WarningKind) String() string {
	switch k {
	case MalformedParameter:
		return "malformed-parameter"
	case UnsupportedType:
		return "unsupported-type"
	case DuplicateFunction:
		return "duplicate-function"
	case SyntaxError:
		return "syntax-error"
	}
	return "unknown"
}

// Warning is a recoverable issue reported alongside a successful result.
type Warning struct {
	Kind WarningKind `json:"kind"`

	// Function is the affected function name, if known.
	Function string `json:"function,omitempty"`

	// Line is the 1-based source line (0 if unknown).
	Line int `json:"line,omitempty"`

	Message string `json:"message"`
}

// String formats the warning as "line N: fn: message (kind)".
func (w Warning) String() string {
	s := w.Message
	if w.Function != "" {
		s = w.Function + ": " + s
	}
	if w.Line > 0 {
		s = fmt.Sprintf("line %d: %s", w.Line, s)
	}
	return fmt.Sprintf("%s (%s)", s, w.Kind)
}
