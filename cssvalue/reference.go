/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvalue

import (
	"regexp"
	"strings"
)

// declPattern matches a custom property declaration at the start of the
// text or after a block or declaration boundary.
var declPattern = regexp.MustCompile(`(?m)(?:^|[{;])[ \t]*(--[a-zA-Z0-9_-]+)[ \t]*:`)

// A Ref is a custom property reference inside a value expression: a
// var() call naming the property and carrying an optional fallback.
type Ref struct {
	// Name is the referenced custom property, including the -- prefix.
	Name string

	// Fallback is the expression after the first top-level comma,
	// trimmed of surrounding whitespace. Empty when absent.
	Fallback string
}

// References returns every var() reference in s in document order.
// References nested inside fallbacks are included.
func References(s string) []Ref {
	var refs []Ref
	for i := 0; i < len(s); {
		j := indexVar(s, i)
		if j < 0 {
			break
		}
		inner, ok := untilMatchingParen(s[j+4:])
		if !ok {
			break
		}
		name, fallback := splitVarArgs(inner)
		if strings.HasPrefix(name, "--") {
			refs = append(refs, Ref{Name: name, Fallback: fallback})
		}
		// Resume inside the argument list so nested references in the
		// fallback are found in document order.
		i = j + 4
	}
	return refs
}

// Substitute replaces each var() reference in s for which resolve
// returns true with the resolved value. An unresolvable reference is
// replaced by its own substituted fallback when it has one and is kept
// verbatim otherwise. Resolved values are inserted as-is.
func Substitute(s string, resolve func(name string) (string, bool)) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		j := indexVar(s, i)
		if j < 0 {
			break
		}
		inner, ok := untilMatchingParen(s[j+4:])
		if !ok {
			break
		}
		end := j + 4 + len(inner) // index of the closing parenthesis
		b.WriteString(s[i:j])
		name, fallback := splitVarArgs(inner)
		switch {
		case strings.HasPrefix(name, "--"):
			if value, found := resolve(name); found {
				b.WriteString(value)
			} else if fallback != "" {
				b.WriteString(Substitute(fallback, resolve))
			} else {
				b.WriteString(s[j : end+1])
			}
		default:
			b.WriteString(s[j : end+1])
		}
		i = end + 1
	}
	b.WriteString(s[i:])
	return b.String()
}

// RedefinesProperty reports whether css contains a declaration for the
// custom property name, such as "--brand: #000;".
func RedefinesProperty(css, name string) bool {
	for _, m := range declPattern.FindAllStringSubmatch(css, -1) {
		if m[1] == name {
			return true
		}
	}
	return false
}

// indexVar returns the index of the next var( call at or after from,
// skipping matches embedded in longer identifiers.
func indexVar(s string, from int) int {
	for i := from; i < len(s); {
		j := strings.Index(s[i:], "var(")
		if j < 0 {
			return -1
		}
		j += i
		if j > 0 && isIdentByte(s[j-1]) {
			i = j + 4
			continue
		}
		return j
	}
	return -1
}

// untilMatchingParen returns the prefix of s up to the parenthesis
// matching an already-consumed opening one.
func untilMatchingParen(s string) (string, bool) {
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
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return s[:i], true
			}
			depth--
		}
	}
	return "", false
}

// splitVarArgs splits a var() argument list at its first top-level
// comma into the property name and the raw fallback.
func splitVarArgs(s string) (name, fallback string) {
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
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == ',' && depth == 0:
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		}
	}
	return strings.TrimSpace(s), ""
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
