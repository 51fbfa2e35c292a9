/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme stores the ordered custom-property table backing a
// design system: keys like --spacing and --color-red-500 mapped to raw
// values, with override merging and {--key} alias resolution.
package theme

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Theme is an insertion-ordered table of CSS custom properties. The
// zero value is not usable; construct with New or Default.
type Theme struct {
	keys   []string
	values map[string]string
}

// New returns an empty theme.
func New() *Theme {
	return &Theme{values: make(map[string]string)}
}

// Set stores key with value. A first-time key appends to the
// enumeration order; re-setting keeps the original position.
func (t *Theme) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored for key.
func (t *Theme) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Delete removes key and its place in the enumeration order.
func (t *Theme) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
}

// Len reports the number of stored keys.
func (t *Theme) Len() int {
	return len(t.keys)
}

// Clone returns an independent copy of t.
func (t *Theme) Clone() *Theme {
	return &Theme{
		keys:   slices.Clone(t.keys),
		values: maps.Clone(t.values),
	}
}

// All yields every entry in enumeration order.
func (t *Theme) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Namespace yields the entries whose key starts with prefix, in
// enumeration order, keyed by the remainder after the prefix.
func (t *Theme) Namespace(prefix string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.keys {
			rest, ok := strings.CutPrefix(k, prefix)
			if !ok {
				continue
			}
			if !yield(rest, t.values[k]) {
				return
			}
		}
	}
}

// Merge applies overrides on top of t. New keys append in sorted key
// order so merging a map stays deterministic; the sentinel value
// "initial" deletes a key instead.
func (t *Theme) Merge(overrides map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		if overrides[k] == "initial" {
			t.Delete(k)
			continue
		}
		t.Set(k, overrides[k])
	}
}
