/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import (
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wongjn/tailsweep/candidate"
	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/theme"
)

func newSystem(t *testing.T, overrides map[string]string, opts design.Options) *design.System {
	t.Helper()
	th := theme.Default()
	if overrides != nil {
		th.Merge(overrides)
	}
	sys, err := design.New(th, opts)
	require.NoError(t, err)
	return sys
}

func TestMigratorMigrate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		theme map[string]string
		in    string
		want  string
	}{
		{
			name: "canonicalizes spelling without a rewrite",
			in:   "[scroll-behavior:_smooth_]",
			want: "[scroll-behavior:smooth]",
		},
		{
			name: "arbitrary property folds to a static utility",
			in:   "[display:flex]",
			want: "flex",
		},
		{
			name: "arbitrary property folds across roots",
			in:   "[margin:1rem]",
			want: "m-4",
		},
		{
			name: "spacing length folds to its scale step",
			in:   "m-[1rem]",
			want: "m-4",
		},
		{
			name:  "spacing respects a resized scale",
			theme: map[string]string{"--spacing": "4px"},
			in:    "m-[16px]",
			want:  "m-4",
		},
		{
			name: "mismatched units stay put",
			in:   "m-[16px]",
			want: "m-[16px]",
		},
		{
			name: "percentages never match the spacing scale",
			in:   "m-[50%]",
			want: "m-[50%]",
		},
		{
			name: "arbitrary color folds to its palette name",
			in:   "bg-[#ef4444]",
			want: "bg-red-500",
		},
		{
			name:  "overridden palette values are honored",
			theme: map[string]string{"--color-red-500": "#ff0000"},
			in:    "bg-[#ff0000]",
			want:  "bg-red-500",
		},
		{
			name: "alpha modifier survives the rewrite",
			in:   "bg-[#ef4444]/[50]",
			want: "bg-red-500/50",
		},
		{
			name: "spacing modifier is re-attached in named form",
			in:   "p-[2rem]/[50]",
			want: "p-8/50",
		},
		{
			name: "font size with its paired line height folds to the size name",
			in:   "text-[0.875rem]/[1.25rem]",
			want: "text-sm",
		},
		{
			name: "unitless line height folds to its leading name",
			in:   "text-[0.875rem]/[1.25]",
			want: "text-sm/tight",
		},
		{
			name: "variants and important flag are preserved",
			in:   "md:hover:m-[1rem]!",
			want: "md:hover:m-4!",
		},
		{
			name: "variable references block unsafe rewrites",
			in:   "text-[color:var(--brand,_#000)]",
			want: "text-[color:var(--brand,_#000)]",
		},
		{
			name: "replacement carrying the same reference is safe",
			in:   "[color:var(--color-red-500)]",
			want: "text-red-500",
		},
		{
			name:  "fallback-only equivalence is rejected",
			theme: map[string]string{"--color-red-500": "#ff0000"},
			in:    "bg-[var(--myred,_#ff0000)]",
			want:  "bg-[var(--myred,_#ff0000)]",
		},
		{
			name:  "duplicate palette values are ambiguous",
			theme: map[string]string{"--color-brand": "#ef4444"},
			in:    "bg-[#ef4444]",
			want:  "bg-[#ef4444]",
		},
		{
			name: "uncomputable tokens keep their canonical spelling",
			in:   "m-[auto]/[50]",
			want: "m-[auto]/[50]",
		},
		{
			name: "named tokens pass through untouched",
			in:   "bg-red-500/[50]",
			want: "bg-red-500/[50]",
		},
		{
			name: "static tokens pass through untouched",
			in:   "hover:flex",
			want: "hover:flex",
		},
		{
			name: "unparseable text comes back verbatim",
			in:   "not/a/class",
			want: "not/a/class",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := New(newSystem(t, tt.theme, design.Options{}), Options{})
			assert.Equal(t, tt.want, m.Migrate(tt.in))
			assert.Equal(t, tt.want, m.Migrate(tt.want), "rewrites must be idempotent")
		})
	}
}

func TestMigratorSpacingScale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		spacing string
		in      string
		want    string
	}{
		{name: "large multiple", spacing: "0.25rem", in: "m-[4rem]", want: "m-16"},
		{name: "fractional step", spacing: "0.25rem", in: "p-[0.375rem]", want: "p-1.5"},
		{name: "pixel scale", spacing: "4px", in: "gap-[2px]", want: "gap-0.5"},
		{name: "unit mismatch", spacing: "0.25rem", in: "m-[32px]", want: "m-[32px]"},
		{name: "unparseable base", spacing: "calc(1px + 1px)", in: "m-[1rem]", want: "m-[1rem]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sys := newSystem(t, map[string]string{"--spacing": tt.spacing}, design.Options{})
			assert.Equal(t, tt.want, New(sys, Options{}).Migrate(tt.in))
		})
	}
}

func TestMigratorPrefix(t *testing.T) {
	t.Parallel()
	sys := newSystem(t, nil, design.Options{Prefix: "tw"})
	m := New(sys, Options{})

	assert.Equal(t, "tw:flex", m.Migrate("tw:[display:flex]"))
	assert.Equal(t, "tw:hover:m-4", m.Migrate("tw:hover:m-[1rem]"))
	assert.Equal(t, "[display:flex]", m.Migrate("[display:flex]"), "unprefixed text does not parse")
}

// countingSystem counts declaration computations so cache behavior is
// observable.
type countingSystem struct {
	System

	mu       sync.Mutex
	computed int
}

func (c *countingSystem) ComputedDeclarations(texts []string) (string, error) {
	c.mu.Lock()
	c.computed++
	c.mu.Unlock()
	return c.System.ComputedDeclarations(texts)
}

func (c *countingSystem) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computed
}

func TestMigratorBaseCache(t *testing.T) {
	t.Parallel()
	cs := &countingSystem{System: newSystem(t, nil, design.Options{})}
	m := New(cs, Options{})

	require.Equal(t, "m-4", m.Migrate("m-[1rem]"))
	warm := cs.calls()
	require.Positive(t, warm)

	assert.Equal(t, "lg:m-4!", m.Migrate("lg:m-[1rem]!"))
	assert.Equal(t, warm, cs.calls(), "same base token must hit the replacement cache")

	m.Reset()
	assert.Equal(t, "m-4", m.Migrate("m-[1rem]"))
	assert.Greater(t, cs.calls(), warm, "Reset must drop engine caches")
}

func TestMigrateRegistry(t *testing.T) {
	t.Parallel()
	sys := newSystem(t, nil, design.Options{})

	assert.Equal(t, "m-4", Migrate(sys, Options{}, "m-[1rem]"))
	assert.Equal(t, "flex", Migrate(sys, Options{}, "[display:flex]"))

	Reset(sys)
	assert.Equal(t, "m-4", Migrate(sys, Options{}, "m-[1rem]"))
}

// loopSystem never converges: every print grows the text by one byte.
type loopSystem struct {
	prints int
}

func (s *loopSystem) Parse(text string) []*candidate.Candidate {
	return []*candidate.Candidate{{Kind: candidate.KindStatic, Root: text}}
}

func (s *loopSystem) Print(c *candidate.Candidate) string {
	s.prints++
	return c.Root + "x"
}

func (s *loopSystem) ComputedDeclarations([]string) (string, error) { return "", nil }

func (s *loopSystem) ResolveThemeValue(string) string { return "" }

func (s *loopSystem) Catalog() iter.Seq2[string, []string] {
	return func(func(string, []string) bool) {}
}

func (s *loopSystem) FunctionalRoots() iter.Seq[string] {
	return func(func(string) bool) {}
}

func (s *loopSystem) Prefix() string { return "" }

func TestMigratorCanonicalizeBound(t *testing.T) {
	t.Parallel()

	s := &loopSystem{}
	assert.Equal(t, "m-4", New(s, Options{CanonicalizeLimit: 5}).Migrate("m-4"),
		"non-converging canonicalization fails closed")
	assert.Equal(t, 5, s.prints, "loop must stop at the configured bound")

	s = &loopSystem{}
	assert.Equal(t, "m-4", New(s, Options{}).Migrate("m-4"))
	assert.Equal(t, defaultCanonicalizeLimit, s.prints, "zero limit means the default bound")
}

func TestMigratorConcurrent(t *testing.T) {
	t.Parallel()
	m := New(newSystem(t, nil, design.Options{}), Options{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				assert.Equal(t, "m-4", m.Migrate("m-[1rem]"))
				assert.Equal(t, "bg-red-500", m.Migrate("bg-[#ef4444]"))
				assert.Equal(t, "hover:flex", m.Migrate("hover:[display:flex]"))
			}
		}()
	}
	wg.Wait()
}
