/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssvalue provides parsing helpers for CSS declaration values:
// whitespace normalization, top-level splitting, dimensions, custom
// property references and color canonicalization.
package cssvalue

import "strings"

// NormalizeWhitespace collapses runs of whitespace into single spaces
// and trims the ends. CSS treats consecutive whitespace inside a value
// as one separator, so the result is equivalent to the input.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitTop splits s on every occurrence of sep that sits outside
// brackets, parentheses and quoted strings.
func SplitTop(s string, sep byte) []string {
	var parts []string
	start := 0
	walkTop(s, func(i int, c byte) {
		if c == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	})
	return append(parts, s[start:])
}

// LastIndexTop returns the index of the last occurrence of sep outside
// brackets, parentheses and quoted strings, or -1 when there is none.
func LastIndexTop(s string, sep byte) int {
	last := -1
	walkTop(s, func(i int, c byte) {
		if c == sep {
			last = i
		}
	})
	return last
}

// walkTop calls fn for every byte of s at nesting depth zero. Depth is
// tracked across square brackets, parentheses and quoted strings;
// backslash escapes inside quotes are honored.
func walkTop(s string, fn func(i int, c byte)) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			fn(i, c)
		}
	}
}
