// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/naming"
	"github.com/albertocavalcante/wasmbind/internal/plan"
)

// demoStyle writes the statements of examples/demo.rs.
type demoStyle struct{}

func (demoStyle) Argument(arg plan.Arg, s emit.Sample) string {
	if s == emit.SampleOpaque {
		return fmt.Sprintf("/* %s: supply a %s */ std::ptr::null_mut()", arg.Name, arg.Mapping.Surface)
	}
	return s.Literal()
}

func (demoStyle) Call(module string, p plan.Plan, args []string) string {
	call := fmt.Sprintf("%s::%s(%s)", naming.Crate(module), naming.Rust(p.Name), strings.Join(args, ", "))
	if !p.HasReturn() {
		return call + ";"
	}
	return fmt.Sprintf(`println!("%s: {:?}", %s);`, p.Name, call)
}
