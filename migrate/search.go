/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import (
	"iter"

	"github.com/wongjn/tailsweep/candidate"
	"github.com/wongjn/tailsweep/cssvalue"
)

// candidates yields replacement candidates for a base token in search
// order. An ambiguous index bucket yields nothing: several catalog
// names sharing one signature means no single rewrite is correct. A
// single-name bucket yields that name. An empty bucket falls back to
// stripping the modifier and searching for the bare token, then to
// functional-root derivation from the raw value. Candidates are
// unvalidated; the caller compares signatures and checks safety.
func (m *Migrator) candidates(sig string, base *candidate.Candidate) iter.Seq[*candidate.Candidate] {
	return func(yield func(*candidate.Candidate) bool) {
		m.search(sig, base, yield)
	}
}

func (m *Migrator) search(sig string, base *candidate.Candidate, yield func(*candidate.Candidate) bool) bool {
	bucket := m.indexFor()[sig]
	if len(bucket) > 1 {
		return true
	}
	if len(bucket) == 1 {
		if parses := m.sys.Parse(bucket[0]); len(parses) > 0 {
			return yield(parses[0])
		}
		return true
	}

	// Empty bucket. A modifier may be hiding the match: search for
	// the stripped token and re-attach the modifier to every result.
	if base.Modifier != nil {
		stripped := base.WithModifier(nil)
		if strippedSig, ok := m.signature(m.sys.Print(stripped)); ok {
			mod := preferredModifier(base.Modifier)
			for c := range m.candidates(strippedSig, stripped) {
				if !yield(c.WithModifier(mod)) {
					return false
				}
			}
			return true
		}
	}

	return m.derive(base, yield)
}

// derive synthesizes candidates from the functional roots and the raw
// value carried by the original token. For each root in order it
// tries the value as a bare name, as its spacing multiple, then
// re-wrapped in brackets, each with and without the original
// modifier. Derivation can reproduce the input itself, which is a
// harmless self-rewrite.
func (m *Migrator) derive(base *candidate.Candidate, yield func(*candidate.Candidate) bool) bool {
	raw := base.ValueText()
	if raw == "" {
		return true
	}

	multText, multOK := "", false
	if f, ok := m.multiplier(raw); ok {
		multText, multOK = cssvalue.FormatNumber(f), true
	}

	emit := func(c *candidate.Candidate) bool {
		if !yield(c) {
			return false
		}
		if base.Modifier != nil && !yield(c.WithModifier(base.Modifier)) {
			return false
		}
		return true
	}

	for root := range m.sys.FunctionalRoots() {
		if bareSafe(raw) {
			if !emit(functional(root, candidate.ValueNamed, raw)) {
				return false
			}
		}
		if multOK {
			if !emit(functional(root, candidate.ValueNamed, multText)) {
				return false
			}
		}
		if !emit(functional(root, candidate.ValueArbitrary, raw)) {
			return false
		}
	}
	return true
}

func functional(root string, kind candidate.ValueKind, value string) *candidate.Candidate {
	return &candidate.Candidate{
		Kind:  candidate.KindFunctional,
		Root:  root,
		Value: &candidate.Value{Kind: kind, Value: value},
	}
}

// preferredModifier rewrites an arbitrary modifier to named form when
// its text survives outside brackets, so re-attachment prints /50
// rather than /[50].
func preferredModifier(mod *candidate.Modifier) *candidate.Modifier {
	if mod.Kind == candidate.ValueArbitrary && bareSafe(mod.Value) {
		return &candidate.Modifier{Kind: candidate.ValueNamed, Value: mod.Value}
	}
	return mod
}

// bareSafe reports whether s can appear as a named value or modifier
// without bracket protection.
func bareSafe(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '-' || c == '%':
		default:
			return false
		}
	}
	return true
}
