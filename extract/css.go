/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

const cssAtKeywordQuery = `(at_keyword) @keyword`

// CSS extracts the argument tokens of @apply rules. The argument list
// is read from the raw source rather than the parse tree: utility
// syntax like brackets is not valid CSS, and the tree shape around it
// varies.
func CSS(src []byte) []Span {
	spans, ok := cssSpans(src)
	if !ok {
		return Fallback(src)
	}
	return finish(src, spans)
}

func cssSpans(src []byte) ([]Span, bool) {
	lang := sitter.NewLanguage(css.Language())
	return querySpans(lang, cssAtKeywordQuery, src, func(spans []Span, m *sitter.QueryMatch) []Span {
		for _, c := range m.Captures {
			if c.Node.Utf8Text(src) != "@apply" {
				continue
			}
			start := int(c.Node.EndByte())
			end := start
			for end < len(src) && src[end] != ';' && src[end] != '{' && src[end] != '}' {
				end++
			}
			spans = tokenize(src, start, end, spans)
		}
		return spans
	})
}
