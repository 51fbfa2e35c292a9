/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package candidate models utility class tokens. It parses class text
// into structured candidates and prints candidates back to text, with
// copy-on-write helpers for deriving related tokens.
package candidate

import "slices"

// Kind classifies a parsed class token.
type Kind int

const (
	// KindStatic is a bare catalog name with no value, like "flex".
	KindStatic Kind = iota

	// KindFunctional is a root with a named or arbitrary value, like
	// "m-4" or "bg-[#fff]".
	KindFunctional

	// KindArbitrary is a freeform property-value pair in brackets,
	// like "[display:flex]".
	KindArbitrary
)

// ValueKind distinguishes named values from bracketed arbitrary ones.
type ValueKind int

const (
	// ValueNamed is a bare value resolved through the theme, like the
	// "4" in "m-4".
	ValueNamed ValueKind = iota

	// ValueArbitrary is a bracketed freeform value, like the "16px"
	// in "m-[16px]".
	ValueArbitrary
)

// Value is the value part of a candidate. For functional candidates it
// is the named or arbitrary value; for arbitrary candidates it is the
// freeform declaration value.
type Value struct {
	Kind ValueKind

	// Value is the decoded value text.
	Value string

	// DataType is the optional hint ahead of an arbitrary value, like
	// "color" in text-[color:var(--x)]. Named values never carry one.
	DataType string
}

// Modifier is the /suffix of a functional candidate.
type Modifier struct {
	Kind  ValueKind
	Value string
}

// Candidate is one reading of a class token. Candidates are treated as
// immutable once parsed; derive changed copies with the With helpers.
type Candidate struct {
	Kind Kind

	// Root is the utility root of a functional candidate and the full
	// name of a static one.
	Root string

	// Property is the declaration property of an arbitrary candidate.
	Property string

	Value    *Value
	Modifier *Modifier

	// Variants are the unparsed variant segments, outermost first.
	Variants []string

	Important bool
}

// Clone returns a deep copy of c.
func (c *Candidate) Clone() *Candidate {
	d := *c
	if c.Value != nil {
		v := *c.Value
		d.Value = &v
	}
	if c.Modifier != nil {
		m := *c.Modifier
		d.Modifier = &m
	}
	d.Variants = slices.Clone(c.Variants)
	return &d
}

// Base returns a copy of c with variants cleared and important unset.
func (c *Candidate) Base() *Candidate {
	d := c.Clone()
	d.Variants = nil
	d.Important = false
	return d
}

// WithModifier returns a copy of c carrying m, which may be nil.
func (c *Candidate) WithModifier(m *Modifier) *Candidate {
	d := c.Clone()
	if m != nil {
		mc := *m
		d.Modifier = &mc
	} else {
		d.Modifier = nil
	}
	return d
}

// WithVariants returns a copy of c carrying the given variant chain.
func (c *Candidate) WithVariants(variants []string) *Candidate {
	d := c.Clone()
	d.Variants = slices.Clone(variants)
	return d
}

// WithImportant returns a copy of c with the important flag set to v.
func (c *Candidate) WithImportant(v bool) *Candidate {
	d := c.Clone()
	d.Important = v
	return d
}

// ValueText returns the freeform value carried by c: the declaration
// value of an arbitrary candidate or the inner value of a functional
// candidate with an arbitrary value. Named values return "".
func (c *Candidate) ValueText() string {
	if c.Value == nil {
		return ""
	}
	switch {
	case c.Kind == KindArbitrary:
		return c.Value.Value
	case c.Kind == KindFunctional && c.Value.Kind == ValueArbitrary:
		return c.Value.Value
	}
	return ""
}
