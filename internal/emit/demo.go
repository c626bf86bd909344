// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"github.com/albertocavalcante/wasmbind/internal/plan"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// Sample is the class of literal used for a demo argument.
type Sample uint8

const (
	// SampleOpaque has no literal; styles render a placeholder comment.
	SampleOpaque Sample = iota
	SampleInt
	SampleFloat
	SampleBool
	SampleText
)

// Canonical sample values.
const (
	IntLiteral   = "42"
	FloatLiteral = "3.5"
	BoolLiteral  = "true"
	TextLiteral  = "wasmbind"
)

// SampleFor picks the sample class for a resolved mapping.
func SampleFor(m typemap.Mapping) Sample {
	switch c := m.Canonical; {
	case c.IsInteger():
		return SampleInt
	case c.IsFloat():
		return SampleFloat
	case c == typemap.Bool:
		return SampleBool
	case c == typemap.Str:
		return SampleText
	default:
		return SampleOpaque
	}
}

// Literal returns the plain literal for s: 42, 3.5, true or "wasmbind".
// It is empty for [SampleOpaque].
func (s Sample) Literal() string {
	switch s {
	case SampleInt:
		return IntLiteral
	case SampleFloat:
		return FloatLiteral
	case SampleBool:
		return BoolLiteral
	case SampleText:
		return `"` + TextLiteral + `"`
	}
	return ""
}

// Style renders demo invocations in a target language.
type Style interface {
	// Argument renders the value passed for arg.
	Argument(arg plan.Arg, sample Sample) string

	// Call renders one statement calling p with the rendered arguments.
	// Functions with a return value capture and print the result.
	Call(module string, p plan.Plan, args []string) string
}

// DemoCalls returns exactly one invocation per plan, in plan order.
func DemoCalls(module string, plans []plan.Plan, style Style) []string {
	calls := make([]string, 0, len(plans))
	for _, p := range plans {
		args := make([]string, len(p.Args))
		for i, a := range p.Args {
			args[i] = style.Argument(a, SampleFor(a.Mapping))
		}
		calls = append(calls, style.Call(module, p, args))
	}
	return calls
}
