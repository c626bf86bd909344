// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import "github.com/albertocavalcante/wasmbind/internal/typemap"

// CppToRust maps C and C++ parameter and return types to Rust.
//
// Integer widths follow the wasm32 data model: int, long and size_t are
// 32 bits wide. Only types with a C ABI are classified. C strings become
// &str on the safe side and a NUL-terminated *const c_char on the FFI
// side. Library types such as std::string or std::optional<T> have no C
// layout and fall back to the opaque pointer.
var CppToRust = &typemap.Table{
	Name: "cpp->rust",
	Scalars: map[string]typemap.Entry{
		"char":               {Canonical: typemap.Int8, Surface: "i8"},
		"signed char":        {Canonical: typemap.Int8, Surface: "i8"},
		"unsigned char":      {Canonical: typemap.UInt8, Surface: "u8"},
		"short":              {Canonical: typemap.Int16, Surface: "i16"},
		"short int":          {Canonical: typemap.Int16, Surface: "i16"},
		"unsigned short":     {Canonical: typemap.UInt16, Surface: "u16"},
		"int":                {Canonical: typemap.Int32, Surface: "i32"},
		"signed":             {Canonical: typemap.Int32, Surface: "i32"},
		"signed int":         {Canonical: typemap.Int32, Surface: "i32"},
		"unsigned":           {Canonical: typemap.UInt32, Surface: "u32"},
		"unsigned int":       {Canonical: typemap.UInt32, Surface: "u32"},
		"long":               {Canonical: typemap.Int32, Surface: "i32"},
		"unsigned long":      {Canonical: typemap.UInt32, Surface: "u32"},
		"long long":          {Canonical: typemap.Int64, Surface: "i64"},
		"unsigned long long": {Canonical: typemap.UInt64, Surface: "u64"},
		"size_t":             {Canonical: typemap.UInt32, Surface: "usize"},
		"std::size_t":        {Canonical: typemap.UInt32, Surface: "usize"},

		"int8_t":   {Canonical: typemap.Int8, Surface: "i8"},
		"int16_t":  {Canonical: typemap.Int16, Surface: "i16"},
		"int32_t":  {Canonical: typemap.Int32, Surface: "i32"},
		"int64_t":  {Canonical: typemap.Int64, Surface: "i64"},
		"uint8_t":  {Canonical: typemap.UInt8, Surface: "u8"},
		"uint16_t": {Canonical: typemap.UInt16, Surface: "u16"},
		"uint32_t": {Canonical: typemap.UInt32, Surface: "u32"},
		"uint64_t": {Canonical: typemap.UInt64, Surface: "u64"},

		"std::int8_t":   {Canonical: typemap.Int8, Surface: "i8"},
		"std::int16_t":  {Canonical: typemap.Int16, Surface: "i16"},
		"std::int32_t":  {Canonical: typemap.Int32, Surface: "i32"},
		"std::int64_t":  {Canonical: typemap.Int64, Surface: "i64"},
		"std::uint8_t":  {Canonical: typemap.UInt8, Surface: "u8"},
		"std::uint16_t": {Canonical: typemap.UInt16, Surface: "u16"},
		"std::uint32_t": {Canonical: typemap.UInt32, Surface: "u32"},
		"std::uint64_t": {Canonical: typemap.UInt64, Surface: "u64"},

		"float":  {Canonical: typemap.Float32, Surface: "f32"},
		"double": {Canonical: typemap.Float64, Surface: "f64"},
		"bool":   {Canonical: typemap.Bool, Surface: "bool"},

		"const char*": {Canonical: typemap.Str, Surface: "&str"},
		"char*":       {Canonical: typemap.Str, Surface: "&str"},

		"const unsigned char*": {Canonical: typemap.Opaque, Surface: "*const u8"},
		"unsigned char*":       {Canonical: typemap.Opaque, Surface: "*mut u8"},
		"const uint8_t*":       {Canonical: typemap.Opaque, Surface: "*const u8"},
		"uint8_t*":             {Canonical: typemap.Opaque, Surface: "*mut u8"},
		"const void*":          {Canonical: typemap.Opaque, Surface: "*const c_void"},
		"void*":                {Canonical: typemap.Opaque, Surface: "*mut c_void"},
	},
	Opaque: "*mut c_void",
	Void:   "()",
}
