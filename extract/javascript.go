/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

const jsxClassQuery = `(jsx_attribute
  (property_identifier) @name
  [
    (string (string_fragment) @value)
    (jsx_expression (string (string_fragment) @value))
    (jsx_expression (template_string) @template)
  ])`

// JavaScript extracts the string values of class and className JSX
// attributes, including the static chunks of template literals.
func JavaScript(src []byte) []Span {
	spans, ok := javascriptSpans(src)
	if !ok {
		return Fallback(src)
	}
	return finish(src, spans)
}

func javascriptSpans(src []byte) ([]Span, bool) {
	lang := sitter.NewLanguage(javascript.Language())
	return querySpans(lang, jsxClassQuery, src, func(spans []Span, m *sitter.QueryMatch) []Span {
		ok := false
		for _, c := range m.Captures {
			if c.Index != 0 {
				continue
			}
			if name := c.Node.Utf8Text(src); name == "class" || name == "className" {
				ok = true
			}
		}
		if !ok {
			return spans
		}
		for _, c := range m.Captures {
			switch c.Index {
			case 1:
				spans = tokenize(src, int(c.Node.StartByte()), int(c.Node.EndByte()), spans)
			case 2:
				spans = templateSpans(src, &c.Node, spans)
			}
		}
		return spans
	})
}

// templateSpans tokenizes the static fragments of a template literal,
// skipping every ${} substitution.
func templateSpans(src []byte, node *sitter.Node, spans []Span) []Span {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "string_fragment" {
			continue
		}
		spans = tokenize(src, int(child.StartByte()), int(child.EndByte()), spans)
	}
	return spans
}
