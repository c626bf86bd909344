// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/naming"
	"github.com/albertocavalcante/wasmbind/internal/plan"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// demoStyle writes the calls of demo.cpp.
type demoStyle struct{}

func (demoStyle) Argument(arg plan.Arg, s emit.Sample) string {
	if s == emit.SampleOpaque {
		// A comment alone would not compile; {} is the neutral filler.
		return fmt.Sprintf("/* %s: supply a %s */ {}", arg.Name, arg.Mapping.Surface)
	}
	return s.Literal()
}

func (demoStyle) Call(module string, p plan.Plan, args []string) string {
	call := fmt.Sprintf("%s::%s(%s)", naming.Namespace(module), naming.Cpp(p.Name), strings.Join(args, ", "))
	ret := p.Return
	switch {
	case !p.HasReturn():
		return call + ";"
	case ret.Optional:
		return fmt.Sprintf(`if (auto r = %s) { std::cout << "%s: " << *r << '\n'; } else { std::cout << "%s: (none)\n"; }`,
			call, p.Name, p.Name)
	case ret.Canonical == typemap.Opaque:
		return fmt.Sprintf(`std::cout << "%s: " << static_cast<const void*>(%s) << '\n';`, p.Name, call)
	case ret.Canonical.IsInteger():
		// Unary plus prints 8-bit integers as numbers.
		return fmt.Sprintf(`std::cout << "%s: " << +%s << '\n';`, p.Name, call)
	default:
		return fmt.Sprintf(`std::cout << "%s: " << %s << '\n';`, p.Name, call)
	}
}
