/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import "github.com/wongjn/tailsweep/candidate"

// canonicalize drives print-of-parse to a fixed point so later string
// comparisons work on one spelling. The loop is bounded: a system
// whose Print and Parse never converge fails closed with a nil
// candidate, and Migrate leaves such input untouched.
func (m *Migrator) canonicalize(raw string) (string, *candidate.Candidate) {
	limit := m.opts.CanonicalizeLimit
	if limit <= 0 {
		limit = defaultCanonicalizeLimit
	}
	text := raw
	for range limit {
		parses := m.sys.Parse(text)
		if len(parses) == 0 {
			return raw, nil
		}
		printed := m.sys.Print(parses[0])
		if printed == text {
			return text, parses[0]
		}
		text = printed
	}
	return raw, nil
}
