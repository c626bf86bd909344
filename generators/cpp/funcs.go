// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/albertocavalcante/wasmbind/internal/emit"
	"github.com/albertocavalcante/wasmbind/internal/naming"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

var (
	kindStr    = typemap.Str.String()
	kindOpaque = typemap.Opaque.String()
)

// funcs are the template helpers of the C++ target. They keep slot and
// conversion logic out of the templates.
var funcs = template.FuncMap{
	"ns":      naming.Namespace,
	"cppName": naming.Cpp,
	"params":  params,
	"retType": returnType,
	"setArgs": setArgs,
	"retExpr": returnExpr,
}

func params(f emit.Function) string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Type + " " + naming.Cpp(a.Name)
	}
	return strings.Join(parts, ", ")
}

// returnType is the declared C++ return type. Borrowed string returns are
// returned by value since the guest memory they point to is copied.
func returnType(f emit.Function) string {
	if f.ReturnKind == kindStr && !f.ReturnOptional {
		return "std::string"
	}
	return f.ReturnType
}

// value returns the expression reading an argument, unwrapping optionals
// to their zero value.
func value(a emit.Arg) string {
	name := naming.Cpp(a.Name)
	if !a.Optional {
		return name
	}
	if a.Kind == kindStr {
		return name + ".value_or(std::string())"
	}
	return name + ".value_or(0)"
}

// setArgs fills the args_val slots of one call. Strings occupy two slots:
// the guest address of a copy, then the byte length.
func setArgs(f emit.Function) string {
	var b strings.Builder
	for _, a := range f.Args {
		v := value(a)
		switch {
		case a.Kind == kindStr:
			if a.Optional {
				fmt.Fprintf(&b, "    const std::string %s_value = %s;\n", a.Name, v)
				v = a.Name + "_value"
			}
			fmt.Fprintf(&b, "    args_val[%d] = WASM_I32_VAL(copy_in(%s));\n", a.Idx, v)
			fmt.Fprintf(&b, "    args_val[%d] = WASM_I32_VAL(static_cast<int32_t>(%s.size()));\n", a.Idx+1, v)
		case a.Kind == kindOpaque:
			fmt.Fprintf(&b, "    args_val[%d] = WASM_I32_VAL(static_cast<int32_t>(reinterpret_cast<uintptr_t>(%s)));\n", a.Idx, v)
		case a.WasmType == "f32":
			fmt.Fprintf(&b, "    args_val[%d] = WASM_F32_VAL(static_cast<float>(%s));\n", a.Idx, v)
		case a.WasmType == "f64":
			fmt.Fprintf(&b, "    args_val[%d] = WASM_F64_VAL(static_cast<double>(%s));\n", a.Idx, v)
		default:
			fmt.Fprintf(&b, "    args_val[%d] = WASM_I32_VAL(static_cast<int32_t>(%s));\n", a.Idx, v)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// returnExpr converts results_val[0] to the declared return type.
func returnExpr(f emit.Function) string {
	raw := "results_val[0].of." + f.WasmUnwrap
	switch f.ReturnKind {
	case kindStr:
		return "copy_out(" + raw + ")"
	case kindOpaque:
		return fmt.Sprintf("reinterpret_cast<%s>(static_cast<uintptr_t>(static_cast<uint32_t>(%s)))", f.ReturnType, raw)
	}
	return fmt.Sprintf("static_cast<%s>(%s)", f.ReturnType, raw)
}
