// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/naming"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

var kindStr = typemap.Str.String()

var funcs = template.FuncMap{
	"crate":      naming.Crate,
	"package":    naming.Package,
	"ident":      naming.Rust,
	"params":     params,
	"sysParams":  sysParams,
	"retType":    returnType,
	"sysRetType": sysReturnType,
	"body":       body,
}

// sysType is the FFI type of a value. Strings cross as NUL-terminated
// C strings.
func sysType(kind, surface string) string {
	if kind == kindStr {
		return "*const c_char"
	}
	return surface
}

func params(f emit.Function) string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = naming.Rust(a.Name) + ": " + a.Type
	}
	return strings.Join(parts, ", ")
}

func sysParams(f emit.Function) string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = naming.Rust(a.Name) + ": " + sysType(a.Kind, a.Type)
	}
	return strings.Join(parts, ", ")
}

// returnType is the safe return type. Returned C strings are copied into
// an owned String.
func returnType(f emit.Function) string {
	if f.ReturnKind == kindStr {
		return "String"
	}
	return f.ReturnType
}

func sysReturnType(f emit.Function) string {
	return sysType(f.ReturnKind, f.ReturnType)
}

// body returns the statements of a safe wrapper, indented by four spaces.
func body(f emit.Function) string {
	var lines, args []string
	for _, a := range f.Args {
		name := naming.Rust(a.Name)
		if a.Kind == kindStr {
			lines = append(lines, fmt.Sprintf("let %s = CString::new(%s).expect(%q);", name, name, a.Name+" contains a NUL byte"))
			args = append(args, name+".as_ptr()")
			continue
		}
		args = append(args, name)
	}

	call := fmt.Sprintf("sys::%s(%s)", naming.Rust(f.Name), strings.Join(args, ", "))
	if f.HasReturn && f.ReturnKind == kindStr {
		lines = append(lines,
			"let raw = unsafe { "+call+" };",
			"unsafe { CStr::from_ptr(raw) }.to_string_lossy().into_owned()")
	} else {
		lines = append(lines, "unsafe { "+call+" }")
	}

	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
