/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rewrite computes and applies class rewrites over source
// files for the migrate and check commands.
package rewrite

import (
	"slices"

	"github.com/wongjn/tailsweep/extract"
	"github.com/wongjn/tailsweep/migrate"
)

// Edit is a single proposed replacement of a class token in a source
// file.
type Edit struct {
	Span        extract.Span
	Replacement string
}

// File extracts the class tokens in src and returns the edits mig
// proposes, in source order. Tokens the migrator leaves alone produce
// no edit.
func File(mig *migrate.Migrator, path string, src []byte) []Edit {
	extractor := extract.ForPath(path)

	var edits []Edit
	for _, span := range extractor(src) {
		replacement := mig.Migrate(span.Token)
		if replacement == span.Token {
			continue
		}
		edits = append(edits, Edit{Span: span, Replacement: replacement})
	}
	return edits
}

// Apply returns src with every edit applied. Edits apply last to
// first so earlier spans keep their offsets.
func Apply(src []byte, edits []Edit) []byte {
	out := slices.Clone(src)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out = slices.Concat(out[:e.Span.Start], []byte(e.Replacement), out[e.Span.End:])
	}
	return out
}
