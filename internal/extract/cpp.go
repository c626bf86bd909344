// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package extract

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/albertocavalcante/wasmbind/internal/model"
	"github.com/albertocavalcante/wasmbind/internal/typemap"
)

// DefaultCppMarker is the macro that exports a C++ function.
const DefaultCppMarker = "EMSCRIPTEN_KEEPALIVE"

// returnTypePattern matches a return type followed by the separator before
// the function name: qualifiers, a possibly qualified or templated base
// name, extra integer words and trailing pointer or reference marks.
const returnTypePattern = `((?:(?:const|unsigned|signed|long|short)\s+)*` +
	`[A-Za-z_][\w:]*(?:<[^()]*?>)?` +
	`(?:\s+(?:int|long|short|char|double))*` +
	`(?:\s*[*&]+\s*|\s+))`

// Cpp extracts functions declared as
//
//	<marker> <return type> <name>(<params>)
//
// from C or C++ source with a single left-to-right scan.
type Cpp struct {
	re *regexp.Regexp
}

// NewCpp creates a C++ extractor. With no markers, [DefaultCppMarker] is used.
func NewCpp(markers ...string) *Cpp {
	if len(markers) == 0 {
		markers = []string{DefaultCppMarker}
	}
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\s+` +
		returnTypePattern + `([A-Za-z_]\w*)\s*\(`)
	return &Cpp{re: re}
}

// Language implements [Extractor].
func (e *Cpp) Language() string { return "cpp" }

// Extract implements [Extractor].
func (e *Cpp) Extract(ctx context.Context, src []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := maskNonCode(src)
	c := newCollector()
	for _, m := range e.re.FindAllSubmatchIndex(text, -1) {
		ret := string(text[m[2]:m[3]])
		name := string(text[m[4]:m[5]])
		line := bytes.Count(text[:m[4]], []byte("\n")) + 1

		params, ok := paramList(text[m[1]:])
		if !ok {
			c.warn(model.MalformedParameter, name, line,
				"parameter list is not closed, skipping function")
			continue
		}

		sig := model.Signature{Name: name, Params: []model.Param{}, Line: line}
		if r := typemap.Normalize(ret); r != "void" {
			sig.Return = r
		}

		for _, raw := range splitParams(params) {
			p, valid := parseCppParam(raw)
			if !valid {
				c.warn(model.MalformedParameter, name, line,
					"parameter %q is not a <type> <name> pair, skipping function", strings.TrimSpace(raw))
				ok = false
				break
			}
			sig.Params = append(sig.Params, p)
		}
		if ok {
			c.add(sig)
		}
	}
	return c.done(), nil
}

// paramList returns the text up to the parenthesis closing the one just
// before rest. It reports false when the list is never closed.
func paramList(rest []byte) (string, bool) {
	depth := 1
	for i, ch := range rest {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return string(rest[:i]), true
			}
		case '{', ';':
			return "", false
		}
	}
	return "", false
}

// maskNonCode blanks comments, preprocessor lines and the contents of
// string and character literals so a marker inside them never matches. Newlines are kept, as are the byte offsets of
// everything else.
func maskNonCode(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	blank := func(from, to int) {
		for k := from; k < to; k++ {
			if out[k] != '\n' {
				out[k] = ' '
			}
		}
	}

	lineStart := true
	for i := 0; i < len(out); {
		ch := out[i]
		switch {
		case ch == '\n':
			lineStart = true
			i++
			continue
		case ch == ' ' || ch == '\t' || ch == '\r':
			i++
			continue
		case lineStart && ch == '#':
			// Directive, including backslash continuations.
			j := i
			for j < len(out) && !(out[j] == '\n' && (j == 0 || out[j-1] != '\\')) {
				j++
			}
			blank(i, j)
			i = j
			continue
		case ch == '/' && i+1 < len(out) && out[i+1] == '/':
			j := i
			for j < len(out) && out[j] != '\n' {
				j++
			}
			blank(i, j)
			i = j
			continue
		case ch == '/' && i+1 < len(out) && out[i+1] == '*':
			j := bytes.Index(out[i+2:], []byte("*/"))
			end := len(out)
			if j >= 0 {
				end = i + 2 + j + 2
			}
			blank(i, end)
			i = end
		case ch == '"' || ch == '\'':
			j := i + 1
			for j < len(out) && out[j] != ch && out[j] != '\n' {
				if out[j] == '\\' {
					j++
				}
				j++
			}
			blank(i+1, min(j, len(out)))
			i = min(j+1, len(out))
		default:
			i++
		}
		lineStart = false
	}
	return out
}

// splitParams splits a parameter list on commas outside angle brackets
// and parentheses.
// An empty list and "void" yield no parameters.
func splitParams(list string) []string {
	list = strings.TrimSpace(list)
	if list == "" || list == "void" {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, list[start:])
}

var paramPattern = regexp.MustCompile(`^(.*?)([A-Za-z_]\w*)$`)

// cppTypeWords cannot be parameter names; a parameter ending in one of
// them has no name.
var cppTypeWords = map[string]bool{
	"int": true, "char": true, "short": true, "long": true, "unsigned": true,
	"signed": true, "float": true, "double": true, "bool": true, "void": true,
	"const": true, "auto": true, "size_t": true,
}

// parseCppParam splits "const char *name" into type "const char*" and
// name "name". Pointer and reference marks glued to the name belong to
// the type. Function pointers, defaults and arrays are rejected.
func parseCppParam(raw string) (model.Param, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "=[]()") {
		return model.Param{}, false
	}
	m := paramPattern.FindStringSubmatch(s)
	if m == nil {
		return model.Param{}, false
	}
	typ, name := strings.TrimSpace(m[1]), m[2]
	if typ == "" || cppTypeWords[name] || strings.HasSuffix(typ, ":") {
		return model.Param{}, false
	}
	return model.Param{Name: name, Type: typemap.Normalize(typ)}, true
}
