// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typemap classifies source-language type tokens into a closed set
// of canonical types and attaches the target-language metadata needed to
// emit a binding: the surface type name, the wasm value type used for
// dynamic calls, and the number of argument slots the value occupies.
//
// Resolution is total. A token that no table entry recognizes maps to
// [Opaque] instead of failing, so a single unsupported parameter never
// drops its function from the output.
package typemap

import "github.com/tetratelabs/wazero/api"

// Canonical is the language-neutral classification of a source type.
//
// The zero value is [Opaque].
type Canonical uint8

const (
	Opaque Canonical = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	Bool
	Str

	// Void is the placeholder return mapping for functions without a
	// return type. It is never produced for arguments.
	Void
)

var canonicalNames = [...]string{
	Opaque:  "opaque",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	UInt8:   "uint8",
	UInt16:  "uint16",
	UInt32:  "uint32",
	UInt64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Bool:    "bool",
	Str:     "str",
	Void:    "void",
}

func (c Canonical) String() string {
	if int(c) < len(canonicalNames) {
		return canonicalNames[c]
	}
	return "unknown"
}

// IsInteger reports whether c is one of the signed or unsigned integer kinds.
func (c Canonical) IsInteger() bool {
	return c >= Int8 && c <= UInt64
}

// IsFloat reports whether c is a floating-point kind.
func (c Canonical) IsFloat() bool {
	return c == Float32 || c == Float64
}

// Tag returns the dynamic-call class used to pass a value of kind c.
func (c Canonical) Tag() Tag {
	switch c {
	case Float32:
		return F32
	case Float64:
		return F64
	default:
		return I32
	}
}

// SlotWidth returns how many flattened argument slots a value of kind c
// occupies. Strings travel as pointer plus length.
func (c Canonical) SlotWidth() int {
	switch c {
	case Str:
		return 2
	case Void:
		return 0
	default:
		return 1
	}
}

// Tag is the low-level value class of a dynamic call argument or result.
type Tag uint8

const (
	I32 Tag = iota
	F32
	F64
)

// ValueType returns the wasm value type carrying values of this class.
func (t Tag) ValueType() api.ValueType {
	switch t {
	case F32:
		return api.ValueTypeF32
	case F64:
		return api.ValueTypeF64
	default:
		return api.ValueTypeI32
	}
}

// String returns the wasm name of the value type ("i32", "f32", "f64").
func (t Tag) String() string {
	return api.ValueTypeName(t.ValueType())
}

// Mapping is the resolved form of one source type token.
type Mapping struct {
	// Canonical is the classification.
	Canonical Canonical

	// Surface is the type name written in the target language.
	Surface string

	// Optional is set when the token was a nullable wrapper (Option<T>,
	// std::optional<T>) around a resolvable type.
	Optional bool

	// Fallback is set when no table entry matched and the opaque mapping
	// was substituted.
	Fallback bool
}

// Tag returns the dynamic-call class of the mapping.
func (m Mapping) Tag() Tag {
	return m.Canonical.Tag()
}

// Width returns the slot width of the mapping.
func (m Mapping) Width() int {
	return m.Canonical.SlotWidth()
}
