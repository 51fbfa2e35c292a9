/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import "regexp"

var fallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:className|class)\s*=\s*"([^"]*)"`),
	regexp.MustCompile(`\b(?:className|class)\s*=\s*'([^']*)'`),
	regexp.MustCompile(`@apply\s+([^;{}]+)`),
}

// Fallback scans for class attributes and @apply rules with regular
// expressions. It serves file types without a dedicated parser and
// sources a dedicated parser rejected.
func Fallback(src []byte) []Span {
	var spans []Span
	for _, p := range fallbackPatterns {
		for _, idx := range p.FindAllSubmatchIndex(src, -1) {
			spans = tokenize(src, idx[2], idx[3], spans)
		}
	}
	return finish(src, spans)
}
