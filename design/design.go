/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package design implements the utility class system: a theme-driven
// catalog of named utilities and the compiler that turns class tokens
// into computed CSS declarations.
package design

import (
	"errors"

	"github.com/wongjn/tailsweep/candidate"
	"github.com/wongjn/tailsweep/cssvalue"
	"github.com/wongjn/tailsweep/theme"
)

var (
	// ErrUnknownClass indicates text that no reading of the catalog
	// accepts as a class token.
	ErrUnknownClass = errors.New("unknown class")

	// ErrNotComputable indicates a syntactically valid token whose
	// declarations cannot be computed, such as a value outside the
	// theme scale.
	ErrNotComputable = errors.New("class does not compute")

	// ErrUnknownVariant indicates a variant with no computable
	// wrapper.
	ErrUnknownVariant = errors.New("unknown variant")
)

// Options configures a System.
type Options struct {
	// Prefix is the mandatory leading segment of every class token,
	// without its colon. Empty means unprefixed.
	Prefix string
}

// System binds a resolved theme to the utility catalog and compiler.
// A System is immutable after construction and safe for concurrent
// use.
type System struct {
	theme     *theme.Theme
	prefix    string
	grammar   candidate.Grammar
	roots     map[string]rootSpec
	rootOrder []string
	statics   map[string][]decl
}

// New builds a system over th. The theme is copied, its aliases are
// resolved, and color values are canonicalized so equal colors compare
// byte-equal in computed output.
func New(th *theme.Theme, opts Options) (*System, error) {
	resolved := th.Clone()
	if err := resolved.Resolve(); err != nil {
		return nil, err
	}
	canonicalizeColors(resolved)

	s := &System{
		theme:  resolved,
		prefix: opts.Prefix,
	}
	s.roots, s.rootOrder = newRoots()
	s.statics = make(map[string][]decl, len(staticUtilities))
	for _, u := range staticUtilities {
		s.statics[u.name] = u.decls
	}
	s.grammar = candidate.Grammar{
		Prefix: opts.Prefix,
		IsStatic: func(name string) bool {
			_, ok := s.statics[name]
			return ok
		},
		IsRoot: func(name string) bool {
			_, ok := s.roots[name]
			return ok
		},
	}
	return s, nil
}

// Parse returns every reading of text under the system's grammar.
func (s *System) Parse(text string) []*candidate.Candidate {
	return s.grammar.Parse(text)
}

// Print renders c in canonical spelling.
func (s *System) Print(c *candidate.Candidate) string {
	return s.grammar.Print(c)
}

// Prefix returns the configured class prefix, without its colon.
func (s *System) Prefix() string {
	return s.prefix
}

// ResolveThemeValue returns the resolved theme value for key, or the
// empty string when the key is not themed.
func (s *System) ResolveThemeValue(key string) string {
	v, _ := s.theme.Get(key)
	return v
}

func canonicalizeColors(th *theme.Theme) {
	type entry struct{ key, value string }
	var canon []entry
	for name, value := range th.Namespace("--color-") {
		if hex, ok := cssvalue.CanonicalColor(value); ok && hex != value {
			canon = append(canon, entry{"--color-" + name, hex})
		}
	}
	for _, e := range canon {
		th.Set(e.key, e.value)
	}
}
