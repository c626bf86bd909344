// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typemap

import "strings"

// Normalize returns the canonical spelling of a type token.
//
// Whitespace is kept only between two word tokens ("unsigned int",
// "*const u8") and dropped everywhere else ("& str" -> "&str",
// "Option < i32 >" -> "Option<i32>", "const char *" -> "const char*").
// Rust lifetimes are removed ("&'a str" -> "&str").
func Normalize(token string) string {
	var parts []string
	for i := 0; i < len(token); {
		c := token[i]
		switch {
		case isSpace(c):
			i++
		case c == '\'':
			// lifetime
			i++
			for i < len(token) && isWord(token[i]) {
				i++
			}
		case isWord(c):
			j := i
			for j < len(token) && isWord(token[j]) {
				j++
			}
			parts = append(parts, token[i:j])
			i = j
		default:
			parts = append(parts, token[i:i+1])
			i++
		}
	}

	var b strings.Builder
	for k, p := range parts {
		if k > 0 && isIdent(parts[k-1][len(parts[k-1])-1]) && isIdent(p[0]) {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isWord(c byte) bool {
	return c == ':' || isIdent(c)
}

func isIdent(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
