/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package migrate implements the signature-preserving rewrite engine.
// Given a class token carrying a freeform arbitrary value, it looks
// for a named catalog token whose computed style output is
// byte-identical and rewrites the token to it, preserving variants,
// modifiers, the important flag and custom property references.
package migrate

import (
	"iter"
	"sync"

	"github.com/wongjn/tailsweep/candidate"
)

// System is the design-system surface the engine rewrites against.
// Implementations must be immutable for the lifetime of the engine.
type System interface {
	// Parse returns every reading of a class text, most specific
	// first.
	Parse(text string) []*candidate.Candidate

	// Print renders a candidate in canonical spelling.
	Print(c *candidate.Candidate) string

	// ComputedDeclarations compiles class texts to raw CSS blocks
	// joined in input order.
	ComputedDeclarations(texts []string) (string, error)

	// ResolveThemeValue resolves a theme key to its value, empty when
	// the key is not themed.
	ResolveThemeValue(key string) string

	// Catalog enumerates every named utility with its modifier names.
	Catalog() iter.Seq2[string, []string]

	// FunctionalRoots enumerates the functional utility roots.
	FunctionalRoots() iter.Seq[string]

	// Prefix returns the class prefix without its colon, or empty.
	Prefix() string
}

// Options tunes engine behavior.
type Options struct {
	// CanonicalizeLimit bounds the parse/print fixed-point loop.
	// Zero means the default of 32.
	CanonicalizeLimit int
}

const defaultCanonicalizeLimit = 32

// Migrator owns the rewrite caches for one System: the signature
// index, signature memos and the base-token replacement cache. All
// methods are safe for concurrent use.
type Migrator struct {
	sys  System
	opts Options

	indexOnce   *sync.Once
	index       map[string][]string
	spacingOnce *sync.Once
	spacingBase spacingBase

	mu    sync.RWMutex
	sigs  map[string]sigEntry
	cache map[string]*candidate.Candidate
}

type sigEntry struct {
	sig string
	ok  bool
}

// New returns a Migrator over sys with empty caches.
func New(sys System, opts Options) *Migrator {
	return &Migrator{
		sys:         sys,
		opts:        opts,
		indexOnce:   new(sync.Once),
		spacingOnce: new(sync.Once),
		sigs:        make(map[string]sigEntry),
		cache:       make(map[string]*candidate.Candidate),
	}
}

// Reset drops every cache so the next call rebuilds them. It must not
// race in-flight Migrate calls.
func (m *Migrator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexOnce = new(sync.Once)
	m.spacingOnce = new(sync.Once)
	m.index = nil
	m.spacingBase = spacingBase{}
	m.sigs = make(map[string]sigEntry)
	m.cache = make(map[string]*candidate.Candidate)
}

var (
	registryMu sync.Mutex
	registry   = make(map[System]*Migrator)
)

// Migrate rewrites one raw class token against sys. Engine state is
// cached per system identity across calls, so repeated invocations
// with the same system reuse the signature index and token caches.
func Migrate(sys System, opts Options, raw string) string {
	return migratorFor(sys, opts).Migrate(raw)
}

// Reset drops the cached engine state for sys, for hosts that rebuild
// their design system mid-process.
func Reset(sys System) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, sys)
}

func migratorFor(sys System, opts Options) *Migrator {
	registryMu.Lock()
	defer registryMu.Unlock()
	if m, ok := registry[sys]; ok {
		return m
	}
	m := New(sys, opts)
	registry[sys] = m
	return m
}

// Migrate rewrites raw to its named-catalog equivalent when one with
// byte-identical computed output exists and passes the variable
// safety check. Tokens with no safe equivalent come back unchanged
// beyond canonical spelling; text that never parses comes back
// verbatim.
func (m *Migrator) Migrate(raw string) string {
	text, c := m.canonicalize(raw)
	if c == nil {
		return raw
	}
	if !eligible(c) {
		return text
	}

	base := c.Base()
	baseText := m.sys.Print(base)

	if repl := m.cachedBase(baseText); repl != nil {
		return m.sys.Print(reattach(repl, c))
	}

	sig, ok := m.signature(baseText)
	if !ok {
		return text
	}

	for cand := range m.candidates(sig, base) {
		candText := m.sys.Print(cand)
		candSig, ok := m.signature(candText)
		if !ok || candSig != sig {
			continue
		}
		if !m.safeReplacement(base, cand) {
			continue
		}
		m.storeBase(baseText, cand)
		return m.sys.Print(reattach(cand, c))
	}
	return text
}

// eligible reports whether a token is a rewrite target: an arbitrary
// property or a functional utility with an arbitrary value. Everything
// else passes through.
func eligible(c *candidate.Candidate) bool {
	switch c.Kind {
	case candidate.KindArbitrary:
		return true
	case candidate.KindFunctional:
		return c.Value != nil && c.Value.Kind == candidate.ValueArbitrary
	}
	return false
}

// reattach restores the variant chain and important flag of the
// original token onto a base replacement.
func reattach(base, orig *candidate.Candidate) *candidate.Candidate {
	return base.WithVariants(orig.Variants).WithImportant(orig.Important)
}

func (m *Migrator) cachedBase(text string) *candidate.Candidate {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache[text]
}

func (m *Migrator) storeBase(text string, c *candidate.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[text] = c
}
