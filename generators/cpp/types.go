// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import "github.com/albertocavalcante/wasmbind/internal/typemap"

// RustToCpp maps Rust parameter and return types to C++.
//
// Strings borrowed by the callee (&str, &String) become const references;
// owned strings become std::string. Raw pointers are passed through as
// opaque addresses into guest memory.
var RustToCpp = &typemap.Table{
	Name: "rust->cpp",
	Scalars: map[string]typemap.Entry{
		"i8":    {Canonical: typemap.Int8, Surface: "int8_t"},
		"i16":   {Canonical: typemap.Int16, Surface: "int16_t"},
		"i32":   {Canonical: typemap.Int32, Surface: "int32_t"},
		"i64":   {Canonical: typemap.Int64, Surface: "int64_t"},
		"isize": {Canonical: typemap.Int32, Surface: "int32_t"},
		"u8":    {Canonical: typemap.UInt8, Surface: "uint8_t"},
		"u16":   {Canonical: typemap.UInt16, Surface: "uint16_t"},
		"u32":   {Canonical: typemap.UInt32, Surface: "uint32_t"},
		"u64":   {Canonical: typemap.UInt64, Surface: "uint64_t"},
		"usize": {Canonical: typemap.UInt32, Surface: "uint32_t"},
		"char":  {Canonical: typemap.UInt32, Surface: "char32_t"},
		"f32":   {Canonical: typemap.Float32, Surface: "float"},
		"f64":   {Canonical: typemap.Float64, Surface: "double"},
		"bool":  {Canonical: typemap.Bool, Surface: "bool"},

		"&str":    {Canonical: typemap.Str, Surface: "const std::string&"},
		"&String": {Canonical: typemap.Str, Surface: "const std::string&"},
		"String":  {Canonical: typemap.Str, Surface: "std::string"},

		"*const u8":     {Canonical: typemap.Opaque, Surface: "const uint8_t*"},
		"*mut u8":       {Canonical: typemap.Opaque, Surface: "uint8_t*"},
		"*const c_void": {Canonical: typemap.Opaque, Surface: "const void*"},
		"*mut c_void":   {Canonical: typemap.Opaque, Surface: "void*"},
	},
	Wrappers: []typemap.Wrapper{
		{
			Open:  "Option<",
			Close: ">",
			Wrap: func(inner typemap.Mapping) string {
				if inner.Canonical == typemap.Str {
					return "std::optional<std::string>"
				}
				return "std::optional<" + inner.Surface + ">"
			},
		},
	},
	Opaque: "void*",
	Void:   "void",
}
