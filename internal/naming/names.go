// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming turns source-language names into identifiers that are
// valid in a target language.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
)

var cppKeywords = set(
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires",
	"return", "short", "signed", "sizeof", "static", "static_assert",
	"static_cast", "struct", "switch", "template", "this", "thread_local",
	"throw", "true", "try", "typedef", "typeid", "typename", "union",
	"unsigned", "using", "virtual", "void", "volatile", "wchar_t", "while",
	"xor", "xor_eq",
)

var rustKeywords = set(
	"abstract", "as", "async", "await", "become", "box", "break", "const",
	"continue", "do", "dyn", "else", "enum", "extern", "false", "final", "fn",
	"for", "gen", "if", "impl", "in", "let", "loop", "macro", "match", "mod",
	"move", "mut", "override", "priv", "pub", "ref", "return", "static",
	"struct", "trait", "true", "try", "type", "typeof", "unsafe", "unsized",
	"use", "virtual", "where", "while", "yield",
)

// Rust keywords that cannot be written as raw identifiers.
var rustNoRaw = set("crate", "self", "Self", "super", "_")

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Cpp returns name, with a trailing underscore if it is a C++ keyword.
func Cpp(name string) string {
	if cppKeywords[name] {
		return name + "_"
	}
	return name
}

// Rust returns name as a raw identifier if it is a Rust keyword.
func Rust(name string) string {
	switch {
	case rustNoRaw[name]:
		return name + "_"
	case rustKeywords[name]:
		return "r#" + name
	}
	return name
}

// Identifier replaces every byte that cannot appear in a C-like
// identifier with an underscore. A leading digit gets an underscore
// prefix.
func Identifier(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	if s[0] >= '0' && s[0] <= '9' {
		b.WriteByte('_')
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Namespace returns the C++ namespace for a module name.
func Namespace(module string) string {
	return Cpp(Identifier(strcase.ToSnake(module)))
}

// Crate returns the Rust library crate name for a module name.
func Crate(module string) string {
	return Identifier(strcase.ToSnake(module))
}

// Package returns the Cargo package name for a module name.
func Package(module string) string {
	return strcase.ToKebab(module)
}
