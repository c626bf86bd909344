// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package plan

import (
	"fmt"
	"strings"
)

// Format renders plans as one line per function:
//
//	add(a int32_t@0:i32, b int32_t@1:i32) slots=2 -> int32_t:i32
//
// Each argument shows its surface type, slot index and wasm tag. Opaque
// fallbacks are marked with a trailing "!".
func Format(plans []Plan) string {
	var b strings.Builder
	for _, p := range plans {
		b.WriteString(formatOne(p))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatOne(p Plan) string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = fmt.Sprintf("%s %s@%d:%s%s", a.Name, a.Mapping.Surface, a.Slot, a.Mapping.Tag(), fallbackMark(a.Mapping.Fallback))
	}
	return fmt.Sprintf("%s(%s) slots=%d -> %s:%s%s",
		p.Name,
		strings.Join(args, ", "),
		p.TotalSlots,
		p.Return.Surface,
		p.Return.Tag(),
		fallbackMark(p.Return.Fallback),
	)
}

func fallbackMark(fallback bool) string {
	if fallback {
		return "!"
	}
	return ""
}
