/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import (
	"math"
	"strconv"

	"github.com/wongjn/tailsweep/cssvalue"
)

// signature computes the substituted declaration output of one class
// text. Every var() reference is substituted through the theme so two
// tokens with the same rendered style compare equal even when one
// spells a value through a custom property. Results are memoized,
// including the not-computable outcome.
func (m *Migrator) signature(text string) (string, bool) {
	m.mu.RLock()
	e, hit := m.sigs[text]
	m.mu.RUnlock()
	if hit {
		return e.sig, e.ok
	}

	var entry sigEntry
	if raw, err := m.sys.ComputedDeclarations([]string{text}); err == nil {
		entry = sigEntry{sig: m.substitute(raw), ok: true}
	}

	m.mu.Lock()
	m.sigs[text] = entry
	m.mu.Unlock()
	return entry.sig, entry.ok
}

func (m *Migrator) substitute(css string) string {
	return cssvalue.Substitute(css, func(name string) (string, bool) {
		v := m.sys.ResolveThemeValue(name)
		return v, v != ""
	})
}

// indexFor returns the signature index mapping each signature to the
// catalog names that produce it, built lazily on first use. Buckets
// keep catalog order, and names whose signatures cannot be computed
// are left out.
func (m *Migrator) indexFor() map[string][]string {
	m.indexOnce.Do(func() {
		idx := make(map[string][]string)
		add := func(name string) {
			text := m.prefixed(name)
			sig, ok := m.signature(text)
			if !ok {
				return
			}
			idx[sig] = append(idx[sig], text)
		}
		for name, mods := range m.sys.Catalog() {
			add(name)
			for _, mod := range mods {
				if numericModifier(mod) {
					continue
				}
				add(name + "/" + mod)
			}
		}
		m.index = idx
	})
	return m.index
}

// prefixed prepends the system prefix to a catalog name so index
// entries are complete class texts.
func (m *Migrator) prefixed(name string) string {
	if p := m.sys.Prefix(); p != "" {
		return p + ":" + name
	}
	return name
}

// numericModifier reports whether mod is a bare nonnegative multiple
// of 0.25. Such modifiers derive arithmetically from the spacing
// scale, so enumerating them would bloat the index without adding
// reachable rewrites.
func numericModifier(mod string) bool {
	f, err := strconv.ParseFloat(mod, 64)
	return err == nil && f >= 0 && math.Mod(f*4, 1) == 0
}
