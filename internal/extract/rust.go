// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/albertocavalcante/wasmbind/internal/model"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// DefaultRustMarkers are the attribute names that export a Rust function.
var DefaultRustMarkers = []string{"wasm_bindgen", "no_mangle"}

// Rust extracts functions carrying an export attribute from Rust source.
//
// An attribute matches when its path, with any qualifying prefix removed,
// equals one of the markers: #[wasm_bindgen], #[wasm_bindgen::prelude::wasm_bindgen]
// and #[unsafe(no_mangle)] all match their last segment.
type Rust struct {
	lang    *sitter.Language
	markers map[string]bool
}

// NewRust creates a Rust extractor. With no markers, [DefaultRustMarkers]
// are used.
func NewRust(markers ...string) *Rust {
	if len(markers) == 0 {
		markers = DefaultRustMarkers
	}
	set := make(map[string]bool, len(markers))
	for _, m := range markers {
		set[m] = true
	}
	return &Rust{lang: rust.GetLanguage(), markers: set}
}

// Language implements [Extractor].
func (e *Rust) Language() string { return "rust" }

// Extract implements [Extractor].
//
// A parser is created per call, so a single Rust value may be shared.
func (e *Rust) Extract(ctx context.Context, src []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src = unwrapUnsafeAttributes(src)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(e.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse rust source: %w", err)
	}
	defer tree.Close()

	c := newCollector()
	root := tree.RootNode()
	if root.HasError() {
		c.warn(model.SyntaxError, "", firstErrorLine(root),
			"source has syntax errors, declarations in the damaged region may be missing")
	}

	e.walkItems(root, src, c, nil)
	return c.done(), nil
}

// walkItems visits the items of a source file or module body in order.
// Attributes are collected until the item they decorate is reached.
func (e *Rust) walkItems(node *sitter.Node, src []byte, c *collector, pending []string) []string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "attribute_item":
			pending = append(pending, child.Content(src))

		case "line_comment", "block_comment":
			// Comments between an attribute and its item are allowed.

		case "function_item":
			if e.exported(pending) {
				e.extractFunction(child, src, c)
			}
			pending = nil

		case "mod_item":
			if body := child.ChildByFieldName("body"); body != nil {
				e.walkItems(body, src, c, nil)
			}
			pending = nil

		case "ERROR":
			// Attribute syntax unknown to the grammar ends up here.
			text := child.Content(src)
			if attrs := leadingAttributes(text); len(attrs) > 0 {
				pending = append(pending, attrs...)
			}
			pending = e.walkItems(child, src, c, pending)

		default:
			pending = nil
		}
	}
	return pending
}

func (e *Rust) exported(attrs []string) bool {
	for _, a := range attrs {
		if e.markers[attributeName(a)] {
			return true
		}
	}
	return false
}

func (e *Rust) extractFunction(fn *sitter.Node, src []byte, c *collector) {
	nameNode := fn.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	sig := model.Signature{
		Name:   nameNode.Content(src),
		Params: []model.Param{},
		Line:   int(fn.StartPoint().Row) + 1,
	}

	if params := fn.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			switch p.Type() {
			case "attribute_item", "line_comment", "block_comment":
				continue
			case "parameter":
				pat := p.ChildByFieldName("pattern")
				typ := p.ChildByFieldName("type")
				if pat != nil && typ != nil && pat.Type() == "identifier" {
					sig.Params = append(sig.Params, model.Param{
						Name: pat.Content(src),
						Type: typemap.Normalize(typ.Content(src)),
					})
					continue
				}
			}
			c.warn(model.MalformedParameter, sig.Name, int(p.StartPoint().Row)+1,
				"parameter %q is not a plain identifier binding, skipping function", p.Content(src))
			return
		}
	}

	if ret := fn.ChildByFieldName("return_type"); ret != nil {
		if t := typemap.Normalize(ret.Content(src)); t != "()" {
			sig.Return = t
		}
	}

	c.add(sig)
}

var unsafeAttribute = regexp.MustCompile(`#\s*\[\s*unsafe\s*\(`)

// unwrapUnsafeAttributes blanks the unsafe(...) wrapper of attributes such
// as #[unsafe(no_mangle)], which the grammar does not know. Byte offsets
// and line numbers are unchanged. src itself is never modified.
func unwrapUnsafeAttributes(src []byte) []byte {
	locs := unsafeAttribute.FindAllIndex(src, -1)
	if len(locs) == 0 {
		return src
	}
	out := bytes.Clone(src)
	for _, loc := range locs {
		start := loc[0] + bytes.Index(out[loc[0]:loc[1]], []byte("unsafe"))
		open := loc[1] - 1
		end := -1
		depth := 0
		for i := open; i < len(out) && out[i] != '\n'; i++ {
			switch out[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			continue
		}
		for i := start; i <= open; i++ {
			out[i] = ' '
		}
		out[end] = ' '
	}
	return out
}

// attributeName returns the name an attribute resolves to:
// the last path segment, looking through unsafe(...).
//
//	#[wasm_bindgen]                      -> wasm_bindgen
//	#[wasm_bindgen::prelude::wasm_bindgen(js_name = x)] -> wasm_bindgen
//	#[unsafe(no_mangle)]                 -> no_mangle
func attributeName(attr string) string {
	s := strings.TrimSpace(attr)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	for {
		s = strings.TrimSpace(s)
		end := 0
		for end < len(s) && (s[end] == ':' || isIdentByte(s[end])) {
			end++
		}
		path, rest := s[:end], strings.TrimSpace(s[end:])
		if path == "unsafe" && strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
			s = rest[1 : len(rest)-1]
			continue
		}
		if i := strings.LastIndex(path, "::"); i >= 0 {
			path = path[i+2:]
		}
		return path
	}
}

// leadingAttributes returns the #[...] groups at the start of text.
func leadingAttributes(text string) []string {
	var attrs []string
	s := strings.TrimSpace(text)
	for strings.HasPrefix(s, "#[") {
		depth := 0
		end := -1
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
			}
			if depth == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			break
		}
		attrs = append(attrs, s[:end+1])
		s = strings.TrimSpace(s[end+1:])
	}
	return attrs
}

// firstErrorLine returns the 1-based line of the first error or missing
// node in document order.
func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorLine(child)
		}
	}
	return int(n.StartPoint().Row) + 1
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
