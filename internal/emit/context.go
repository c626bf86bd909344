// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"github.com/albertocavalcante/wasmbind/internal/plan"
)

// Context is the data handed to every template.
//
// Field names in the json and msgpack encodings are part of the template
// contract; templates never recompute slot indices or reorder functions.
type Context struct {
	ModuleName string     `json:"module_name" msgpack:"module_name"`
	HeaderName string     `json:"header_name" msgpack:"header_name"`
	Source     string     `json:"source,omitempty" msgpack:"source,omitempty"`
	Functions  []Function `json:"functions" msgpack:"functions"`

	// Demo holds one rendered invocation per function, in function order.
	Demo []string `json:"demo" msgpack:"demo"`
}

// Function is the template view of one binding plan.
type Function struct {
	Name string `json:"name" msgpack:"name"`
	Args []Arg  `json:"args" msgpack:"args"`

	// ArgCount is the number of flattened slots, not the number of args.
	ArgCount int `json:"arg_count" msgpack:"arg_count"`

	ReturnType string `json:"return_type" msgpack:"return_type"`
	WasmUnwrap string `json:"wasm_unwrap" msgpack:"wasm_unwrap"`
	ReturnKind string `json:"return_kind" msgpack:"return_kind"`
	HasReturn  bool   `json:"has_return" msgpack:"has_return"`

	// ReturnOptional is set when the return type is a nullable wrapper.
	ReturnOptional bool `json:"return_optional,omitempty" msgpack:"return_optional,omitempty"`
}

// Arg is the template view of one planned argument.
type Arg struct {
	Name     string `json:"name" msgpack:"name"`
	Type     string `json:"type" msgpack:"type"`
	WasmType string `json:"wasm_type" msgpack:"wasm_type"`
	Idx      int    `json:"idx" msgpack:"idx"`
	Kind     string `json:"kind" msgpack:"kind"`
	Width    int    `json:"width" msgpack:"width"`
	Optional bool   `json:"optional,omitempty" msgpack:"optional,omitempty"`
}

// NewContext builds the template context for plans. Demo is left empty;
// [Engine.Context] fills it.
func NewContext(module, header, source string, plans []plan.Plan) Context {
	ctx := Context{
		ModuleName: module,
		HeaderName: header,
		Source:     source,
		Functions:  make([]Function, 0, len(plans)),
		Demo:       []string{},
	}
	for _, p := range plans {
		fn := Function{
			Name:       p.Name,
			Args:       make([]Arg, 0, len(p.Args)),
			ArgCount:   p.TotalSlots,
			ReturnType: p.Return.Surface,
			WasmUnwrap: p.Return.Tag().String(),
			ReturnKind: p.Return.Canonical.String(),
			HasReturn:  p.HasReturn(),

			ReturnOptional: p.Return.Optional,
		}
		for _, a := range p.Args {
			fn.Args = append(fn.Args, Arg{
				Name:     a.Name,
				Type:     a.Mapping.Surface,
				WasmType: a.Mapping.Tag().String(),
				Idx:      a.Slot,
				Kind:     a.Mapping.Canonical.String(),
				Width:    a.Mapping.Width(),
				Optional: a.Mapping.Optional,
			})
		}
		ctx.Functions = append(ctx.Functions, fn)
	}
	return ctx
}
