/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract scans source files for utility class tokens. Each
// supported language gets a tree-sitter extractor; unknown file types
// fall back to a regex scan. Extraction is best-effort: inputs a
// parser cannot handle degrade to the fallback, never to an error.
package extract

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Span is one class token occurrence in a source file. Start and End
// are byte offsets into the file, End exclusive, with
// src[Start:End] == Token. Line and Column are 1-based, the column
// counted in bytes.
type Span struct {
	Token  string
	Start  int
	End    int
	Line   int
	Column int
}

// An Extractor scans one source file for class tokens, ordered by
// offset.
type Extractor func(src []byte) []Span

// ForPath returns the extractor for a file path based on its
// extension.
func ForPath(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScript
	case ".css":
		return CSS
	case ".php":
		return PHP
	default:
		return Fallback
	}
}

// querySpans parses src with lang, runs one query and feeds every
// match to collect. It reports false when the parser rejects the
// language or the source, in which case the caller degrades to the
// fallback.
func querySpans(lang *sitter.Language, queryStr string, src []byte, collect func([]Span, *sitter.QueryMatch) []Span) ([]Span, bool) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, false
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, false
	}
	defer tree.Close()

	query, qerr := sitter.NewQuery(lang, queryStr)
	if qerr != nil {
		return nil, false
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var spans []Span
	matches := cursor.Matches(query, tree.RootNode(), src)
	for match := matches.Next(); match != nil; match = matches.Next() {
		spans = collect(spans, match)
	}
	return spans, true
}

// tokenize appends one Span per whitespace-separated token in
// src[start:end].
func tokenize(src []byte, start, end int, spans []Span) []Span {
	i := start
	for i < end {
		for i < end && isSpace(src[i]) {
			i++
		}
		j := i
		for j < end && !isSpace(src[j]) {
			j++
		}
		if j > i {
			spans = append(spans, Span{Token: string(src[i:j]), Start: i, End: j})
		}
		i = j
	}
	return spans
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// finish orders spans by offset, drops duplicates and fills in line
// and column information.
func finish(src []byte, spans []Span) []Span {
	slices.SortFunc(spans, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })
	spans = slices.CompactFunc(spans, func(a, b Span) bool {
		return a.Start == b.Start && a.End == b.End
	})

	line, col, last := 1, 1, 0
	for i := range spans {
		for _, b := range src[last:spans[i].Start] {
			if b == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		last = spans[i].Start
		spans[i].Line, spans[i].Column = line, col
	}
	return spans
}
