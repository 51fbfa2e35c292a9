/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package candidate

import (
	"slices"
	"strings"

	"github.com/wongjn/tailsweep/cssvalue"
)

// Grammar supplies the catalog shape a parser needs: which bare names
// exist, which functional roots exist, and the required prefix.
type Grammar struct {
	// Prefix is the mandatory leading segment without its colon, or
	// empty when the catalog is unprefixed.
	Prefix string

	// IsStatic reports whether name is a bare utility.
	IsStatic func(name string) bool

	// IsRoot reports whether name is a functional utility root.
	IsRoot func(name string) bool
}

// Parse returns every reading of text under the grammar, most specific
// first. A nil result means text is not a class token of this catalog.
func (g Grammar) Parse(text string) []*Candidate {
	if text == "" {
		return nil
	}
	segments := cssvalue.SplitTop(text, ':')
	if g.Prefix != "" {
		if len(segments) < 2 || segments[0] != g.Prefix {
			return nil
		}
		segments = segments[1:]
	}
	base := segments[len(segments)-1]
	variants := segments[:len(segments)-1]
	if len(variants) == 0 {
		// Candidates carry nil, never an empty slice, for no variants.
		variants = nil
	}
	for _, v := range variants {
		if v == "" {
			return nil
		}
	}

	important := false
	switch {
	case strings.HasSuffix(base, "!"):
		base = base[:len(base)-1]
		important = true
	case strings.HasPrefix(base, "!"):
		// Accepted on input; printing always uses the trailing form.
		base = base[1:]
		important = true
	}
	if base == "" {
		return nil
	}

	var out []*Candidate
	for _, c := range g.parseBase(base) {
		c.Variants = slices.Clone(variants)
		c.Important = important
		out = append(out, c)
	}
	return out
}

// parseBase parses the base segment, after variants, prefix and the
// important marker have been stripped.
func (g Grammar) parseBase(base string) []*Candidate {
	// [property:value]
	if strings.HasPrefix(base, "[") {
		if c := parseArbitraryProperty(base); c != nil {
			return []*Candidate{c}
		}
		return nil
	}

	rest := base
	var modifier *Modifier
	if idx := cssvalue.LastIndexTop(rest, '/'); idx >= 0 {
		modifier = parseModifier(rest[idx+1:])
		if modifier == nil {
			return nil
		}
		rest = rest[:idx]
	}
	if rest == "" {
		return nil
	}

	var out []*Candidate

	if modifier == nil && g.IsStatic != nil && g.IsStatic(rest) {
		out = append(out, &Candidate{Kind: KindStatic, Root: rest})
	}

	// root-[value]
	if strings.HasSuffix(rest, "]") {
		i := strings.Index(rest, "-[")
		if i > 0 && bracketSpansToEnd(rest[i+1:]) {
			root := rest[:i]
			if g.IsRoot != nil && g.IsRoot(root) {
				dataType, value := splitDataType(rest[i+2 : len(rest)-1])
				value = DecodeValue(value)
				if value != "" {
					out = append(out, &Candidate{
						Kind:     KindFunctional,
						Root:     root,
						Value:    &Value{Kind: ValueArbitrary, Value: value, DataType: dataType},
						Modifier: modifier,
					})
				}
			}
		}
		return out
	}

	// root-value, preferring the longest root
	if !strings.ContainsAny(rest, "[]") {
		for i := len(rest) - 2; i > 0; i-- {
			if rest[i] != '-' {
				continue
			}
			root, value := rest[:i], rest[i+1:]
			if g.IsRoot != nil && g.IsRoot(root) {
				out = append(out, &Candidate{
					Kind:     KindFunctional,
					Root:     root,
					Value:    &Value{Kind: ValueNamed, Value: value},
					Modifier: modifier,
				})
			}
		}
	}
	return out
}

// parseArbitraryProperty parses a [property:value] base segment.
func parseArbitraryProperty(base string) *Candidate {
	if !strings.HasSuffix(base, "]") || !bracketSpansToEnd(base) {
		return nil
	}
	inner := base[1 : len(base)-1]
	idx := strings.IndexByte(inner, ':')
	if idx <= 0 {
		return nil
	}
	property := inner[:idx]
	if !validProperty(property) {
		return nil
	}
	value := DecodeValue(inner[idx+1:])
	if value == "" {
		return nil
	}
	return &Candidate{
		Kind:     KindArbitrary,
		Property: property,
		Value:    &Value{Kind: ValueArbitrary, Value: value},
	}
}

func parseModifier(text string) *Modifier {
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") && bracketSpansToEnd(text) {
		value := DecodeValue(text[1 : len(text)-1])
		if value == "" {
			return nil
		}
		return &Modifier{Kind: ValueArbitrary, Value: value}
	}
	if strings.ContainsAny(text, "[]") {
		return nil
	}
	return &Modifier{Kind: ValueNamed, Value: text}
}

// splitDataType splits an optional "type:" hint off an arbitrary value.
func splitDataType(inner string) (dataType, value string) {
	idx := strings.IndexByte(inner, ':')
	if idx <= 0 {
		return "", inner
	}
	hint := inner[:idx]
	for i := 0; i < len(hint); i++ {
		c := hint[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && c != '-' {
			return "", inner
		}
	}
	return hint, inner[idx+1:]
}

// bracketSpansToEnd reports whether s opens with a bracket whose match
// is the final byte of s.
func bracketSpansToEnd(s string) bool {
	if len(s) < 2 || s[0] != '[' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

func validProperty(p string) bool {
	for i := 0; i < len(p); i++ {
		c := p[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || strings.HasPrefix(p, "--")
}

// DecodeValue decodes the arbitrary-value spelling of a CSS value:
// underscores become spaces, the \_ escape yields a literal underscore
// and whitespace is normalized.
func DecodeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return cssvalue.NormalizeWhitespace(b.String())
}

// EncodeValue is the inverse of DecodeValue: spaces become underscores
// and literal underscores are escaped.
func EncodeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			b.WriteByte('_')
		case '_':
			b.WriteString(`\_`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
