// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package plan computes the flattened argument layout of each exported
// function.
//
// Under the dynamic calling convention every argument occupies one or more
// consecutive slots; strings take two (pointer and length). The slot index
// of argument i is the sum of the widths of arguments 0..i-1, and emitted
// code addresses arguments by slot, never by position.
package plan

import (
	"fmt"

	"github.com/albertocavalcante/wasmbind/internal/model"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// Arg is one planned argument.
type Arg struct {
	Name    string
	Mapping typemap.Mapping
	Slot    int
}

// Plan is the render-ready description of one function binding.
type Plan struct {
	Name       string
	Args       []Arg
	TotalSlots int

	// Return is the resolved return mapping, or the resolver's void
	// placeholder when the signature has no return type.
	Return typemap.Mapping
}

// HasReturn reports whether the function returns a value.
func (p Plan) HasReturn() bool {
	return p.Return.Canonical != typemap.Void
}

// Build plans a single signature. The result depends only on the
// signature and the resolver's table, so equal inputs give equal plans.
//
// Arguments and return types that fell back to the opaque mapping are
// reported as warnings; the plan is still complete.
func Build(sig model.Signature, r *typemap.Resolver) (Plan, []model.Warning) {
	var warnings []model.Warning

	p := Plan{
		Name: sig.Name,
		Args: make([]Arg, 0, len(sig.Params)),
	}

	slot := 0
	for _, param := range sig.Params {
		m := r.Resolve(param.Type)
		if m.Fallback {
			warnings = append(warnings, model.Warning{
				Kind:     model.UnsupportedType,
				Function: sig.Name,
				Line:     sig.Line,
				Message:  fmt.Sprintf("parameter %q has unsupported type %q, using %s", param.Name, param.Type, m.Surface),
			})
		}
		p.Args = append(p.Args, Arg{Name: param.Name, Mapping: m, Slot: slot})
		slot += m.Width()
	}
	p.TotalSlots = slot

	if sig.HasReturn() {
		p.Return = r.Resolve(sig.Return)
		if p.Return.Fallback {
			warnings = append(warnings, model.Warning{
				Kind:     model.UnsupportedType,
				Function: sig.Name,
				Line:     sig.Line,
				Message:  fmt.Sprintf("return type %q is unsupported, using %s", sig.Return, p.Return.Surface),
			})
		}
	} else {
		p.Return = r.Void()
	}

	return p, warnings
}

// BuildAll plans every signature, preserving order.
func BuildAll(sigs []model.Signature, r *typemap.Resolver) ([]Plan, []model.Warning) {
	var warnings []model.Warning
	plans := make([]Plan, 0, len(sigs))
	for _, sig := range sigs {
		p, w := Build(sig, r)
		plans = append(plans, p)
		warnings = append(warnings, w...)
	}
	return plans, warnings
}
