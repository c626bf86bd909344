// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typemap

import "strings"

// Entry is a table row for a scalar source token.
type Entry struct {
	Canonical Canonical
	Surface   string
}

// Wrapper describes a generic nullable wrapper such as Option<T>.
type Wrapper struct {
	// Open and Close delimit the inner token, e.g. "Option<" and ">".
	Open, Close string

	// Wrap builds the target surface type from the resolved inner mapping.
	Wrap func(inner Mapping) string
}

func (w Wrapper) unwrap(tok string) (string, bool) {
	if len(tok) <= len(w.Open)+len(w.Close) {
		return "", false
	}
	if !strings.HasPrefix(tok, w.Open) || !strings.HasSuffix(tok, w.Close) {
		return "", false
	}
	return tok[len(w.Open) : len(tok)-len(w.Close)], true
}

// Table maps the type tokens of one source language to one target language.
type Table struct {
	// Name identifies the pair, e.g. "rust->cpp".
	Name string

	// Scalars maps normalized source tokens to their classification.
	Scalars map[string]Entry

	// Wrappers are tried in order when no scalar entry matches.
	Wrappers []Wrapper

	// Opaque is the target surface type used for unrecognized tokens.
	Opaque string

	// Void is the target surface type for "no return value".
	Void string
}

// Resolver resolves source type tokens against a [Table].
// It is safe for concurrent use once constructed.
type Resolver struct {
	table   *Table
	aliases map[string]string
}

// NewResolver creates a resolver for table. Aliases rewrite a source token
// into another source token before lookup; they are applied once and are
// not chained.
func NewResolver(table *Table, aliases map[string]string) *Resolver {
	r := &Resolver{
		table:   table,
		aliases: make(map[string]string, len(aliases)),
	}
	for from, to := range aliases {
		r.aliases[Normalize(from)] = Normalize(to)
	}
	return r
}

// Name returns the name of the underlying table.
func (r *Resolver) Name() string {
	return r.table.Name
}

// Resolve maps a source type token to its [Mapping]. It never fails:
// unknown tokens, and wrappers around unknown tokens, map to the opaque
// fallback.
func (r *Resolver) Resolve(token string) Mapping {
	tok := Normalize(token)
	if alias, ok := r.aliases[tok]; ok {
		tok = alias
	}

	if e, ok := r.table.Scalars[tok]; ok {
		return Mapping{Canonical: e.Canonical, Surface: e.Surface}
	}

	for _, w := range r.table.Wrappers {
		inner, ok := w.unwrap(tok)
		if !ok {
			continue
		}
		m := r.Resolve(inner)
		if m.Canonical == Opaque {
			return Mapping{Canonical: Opaque, Surface: r.table.Opaque, Fallback: m.Fallback}
		}
		return Mapping{Canonical: m.Canonical, Surface: w.Wrap(m), Optional: true}
	}

	return Mapping{Canonical: Opaque, Surface: r.table.Opaque, Fallback: true}
}

// Void returns the placeholder mapping used when a function has no
// return type.
func (r *Resolver) Void() Mapping {
	return Mapping{Canonical: Void, Surface: r.table.Void}
}
