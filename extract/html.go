/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

const htmlClassQuery = `(attribute
  (attribute_name) @name
  [
    (attribute_value) @value
    (quoted_attribute_value (attribute_value) @value)
  ])`

// HTML extracts the tokens of class attribute values.
func HTML(src []byte) []Span {
	spans, ok := htmlSpans(src)
	if !ok {
		return Fallback(src)
	}
	return finish(src, spans)
}

func htmlSpans(src []byte) ([]Span, bool) {
	lang := sitter.NewLanguage(html.Language())
	return querySpans(lang, htmlClassQuery, src, func(spans []Span, m *sitter.QueryMatch) []Span {
		// Attribute names are case-insensitive in HTML.
		ok := false
		for _, c := range m.Captures {
			if c.Index == 0 && strings.EqualFold(c.Node.Utf8Text(src), "class") {
				ok = true
			}
		}
		if !ok {
			return spans
		}
		for _, c := range m.Captures {
			if c.Index == 1 {
				spans = tokenize(src, int(c.Node.StartByte()), int(c.Node.EndByte()), spans)
			}
		}
		return spans
	})
}
