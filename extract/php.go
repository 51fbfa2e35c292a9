/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

const phpTextQuery = `(text) @chunk`

// PHP extracts class tokens from the HTML between PHP tags. Each text
// chunk is scanned by the HTML extractor and its offsets rebased into
// the PHP file.
func PHP(src []byte) []Span {
	spans, ok := phpSpans(src)
	if !ok {
		return Fallback(src)
	}
	return finish(src, spans)
}

func phpSpans(src []byte) ([]Span, bool) {
	lang := sitter.NewLanguage(php.LanguagePHP())
	return querySpans(lang, phpTextQuery, src, func(spans []Span, m *sitter.QueryMatch) []Span {
		for _, c := range m.Captures {
			base, end := int(c.Node.StartByte()), int(c.Node.EndByte())
			chunk, ok := htmlSpans(src[base:end])
			if !ok {
				continue
			}
			for _, s := range chunk {
				s.Start += base
				s.End += base
				spans = append(spans, s)
			}
		}
		return spans
	})
}
