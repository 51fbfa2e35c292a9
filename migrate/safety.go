/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import (
	"slices"

	"github.com/wongjn/tailsweep/candidate"
	"github.com/wongjn/tailsweep/cssvalue"
)

// safeReplacement enforces variable preservation. Every custom
// property the original value references must appear in the
// replacement's raw computed output with the same fallback, and the
// replacement must not redefine the property. The raw output matters
// here: substitution would erase exactly the references being checked.
func (m *Migrator) safeReplacement(base, repl *candidate.Candidate) bool {
	refs := cssvalue.References(base.ValueText())
	if len(refs) == 0 {
		return true
	}

	out, err := m.sys.ComputedDeclarations([]string{m.sys.Print(repl)})
	if err != nil {
		return false
	}
	outRefs := cssvalue.References(out)
	for _, ref := range refs {
		if !slices.Contains(outRefs, ref) {
			return false
		}
		if cssvalue.RedefinesProperty(out, ref.Name) {
			return false
		}
	}
	return true
}
