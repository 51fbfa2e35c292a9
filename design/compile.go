/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package design

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wongjn/tailsweep/candidate"
	"github.com/wongjn/tailsweep/cssvalue"
)

// colorProperties are the declaration properties whose arbitrary
// values are canonicalized through the color parser.
var colorProperties = map[string]bool{
	"color":            true,
	"background-color": true,
	"border-color":     true,
	"outline-color":    true,
}

// ComputedDeclarations compiles each class text and returns the CSS
// blocks joined in input order. Declarations render as "property:
// value;" lines; variants wrap their inner block with a two-space
// indent; important appends " !important" to every declaration.
func (s *System) ComputedDeclarations(texts []string) (string, error) {
	blocks := make([]string, 0, len(texts))
	for _, text := range texts {
		block, err := s.computeOne(text)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"), nil
}

func (s *System) computeOne(text string) (string, error) {
	parses := s.grammar.Parse(text)
	if len(parses) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownClass, text)
	}
	// Ambiguous texts yield several readings; only the first is
	// computed.
	c := parses[0]
	decls, err := s.declarationsFor(c)
	if err != nil {
		return "", err
	}
	block := renderDecls(decls, c.Important)
	for i := len(c.Variants) - 1; i >= 0; i-- {
		block, err = s.wrapVariant(c.Variants[i], block)
		if err != nil {
			return "", err
		}
	}
	return block, nil
}

// declarationsFor computes the bare declarations of c, ignoring
// variants and the important flag.
func (s *System) declarationsFor(c *candidate.Candidate) ([]decl, error) {
	switch c.Kind {
	case candidate.KindStatic:
		return s.statics[c.Root], nil
	case candidate.KindArbitrary:
		return s.arbitraryDecls(c), nil
	default:
		spec := s.roots[c.Root]
		switch spec.kind {
		case rootSpacing:
			return s.spacingDecls(spec, c)
		case rootColor:
			return s.colorDecls(spec, c)
		case rootText:
			return s.textRootDecls(c)
		default:
			return s.radiusDecls(c)
		}
	}
}

func (s *System) arbitraryDecls(c *candidate.Candidate) []decl {
	value := c.Value.Value
	if colorProperties[c.Property] {
		if hex, ok := cssvalue.CanonicalColor(value); ok {
			value = hex
		}
	}
	return []decl{{c.Property, value}}
}

func (s *System) spacingDecls(spec rootSpec, c *candidate.Candidate) ([]decl, error) {
	v := c.Value
	var value string
	switch {
	case v.Kind == candidate.ValueNamed && v.Value == "auto":
		if !spec.allowAuto || spec.negate || c.Modifier != nil {
			return nil, s.notComputable(c)
		}
		value = "auto"

	case v.Kind == candidate.ValueNamed && v.Value == "px":
		scaled, ok := s.scaleDimension(cssvalue.Dimension{Value: 1, Unit: "px"}, c.Modifier, spec.negate)
		if !ok {
			return nil, s.notComputable(c)
		}
		value = scaled

	case v.Kind == candidate.ValueNamed:
		mult, ok := spacingMultiplier(v.Value)
		if !ok {
			return nil, s.notComputable(c)
		}
		base, ok := s.spacingBase()
		if !ok {
			return nil, s.notComputable(c)
		}
		base.Value *= mult
		scaled, ok := s.scaleDimension(base, c.Modifier, spec.negate)
		if !ok {
			return nil, s.notComputable(c)
		}
		value = scaled

	default: // arbitrary value
		if v.DataType != "" && v.DataType != "length" {
			return nil, s.notComputable(c)
		}
		raw := v.Value
		switch d, ok := cssvalue.ParseDimension(raw); {
		case ok:
			scaled, ok := s.scaleDimension(d, c.Modifier, spec.negate)
			if !ok {
				return nil, s.notComputable(c)
			}
			value = scaled
		case c.Modifier != nil:
			// A scale modifier needs a concrete dimension.
			return nil, s.notComputable(c)
		case spec.negate:
			value = "calc(" + raw + " * -1)"
		default:
			value = raw
		}
	}

	decls := make([]decl, 0, len(spec.properties))
	for _, p := range spec.properties {
		decls = append(decls, decl{p, value})
	}
	return decls, nil
}

func (s *System) colorDecls(spec rootSpec, c *candidate.Candidate) ([]decl, error) {
	value, ok := s.colorValue(c.Value, c.Modifier)
	if !ok {
		return nil, s.notComputable(c)
	}
	decls := make([]decl, 0, len(spec.properties))
	for _, p := range spec.properties {
		decls = append(decls, decl{p, value})
	}
	return decls, nil
}

// colorValue computes the color expression of a value plus optional
// alpha modifier. Named values become theme variable references;
// arbitrary color literals canonicalize to hex; values carrying a
// var() reference or an explicit color hint pass through raw.
func (s *System) colorValue(v *candidate.Value, m *candidate.Modifier) (string, bool) {
	var value string
	if v.Kind == candidate.ValueNamed {
		key := "--color-" + v.Value
		if _, ok := s.theme.Get(key); !ok {
			return "", false
		}
		value = "var(" + key + ")"
	} else {
		raw := v.Value
		if hex, ok := cssvalue.CanonicalColor(raw); ok {
			value = hex
		} else if v.DataType == "color" || len(cssvalue.References(raw)) > 0 {
			value = raw
		} else {
			return "", false
		}
	}
	if m != nil {
		ratio, ok := modifierRatio(m)
		if !ok {
			return "", false
		}
		value = mixTransparent(value, ratio)
	}
	return value, true
}

// mixTransparent folds an alpha ratio into a color expression.
func mixTransparent(value string, ratio float64) string {
	return fmt.Sprintf("color-mix(in oklab, %s %s%%, transparent)", value, cssvalue.FormatNumber(ratio*100))
}

func (s *System) textRootDecls(c *candidate.Candidate) ([]decl, error) {
	v := c.Value
	if v.Kind == candidate.ValueNamed {
		sizeKey := "--text-" + v.Value
		if _, ok := s.theme.Get(sizeKey); ok {
			return s.textSizeDecls("var("+sizeKey+")", sizeKey+"--line-height", c)
		}
		value, ok := s.colorValue(v, c.Modifier)
		if !ok {
			return nil, s.notComputable(c)
		}
		return []decl{{"color", value}}, nil
	}

	raw := v.Value
	switch v.DataType {
	case "color":
		value, ok := s.colorValue(v, c.Modifier)
		if !ok {
			return nil, s.notComputable(c)
		}
		return []decl{{"color", value}}, nil
	case "length":
		return s.textSizeDecls(raw, "", c)
	case "":
		// Unhinted: a color literal sets the color, a plain dimension
		// the font size. Anything else, including bare var() values,
		// cannot be attributed to either property.
		if hex, ok := cssvalue.CanonicalColor(raw); ok {
			if c.Modifier != nil {
				ratio, ok := modifierRatio(c.Modifier)
				if !ok {
					return nil, s.notComputable(c)
				}
				hex = mixTransparent(hex, ratio)
			}
			return []decl{{"color", hex}}, nil
		}
		if _, ok := cssvalue.ParseDimension(raw); ok {
			return s.textSizeDecls(raw, "", c)
		}
		return nil, s.notComputable(c)
	default:
		return nil, s.notComputable(c)
	}
}

func (s *System) textSizeDecls(size, lineHeightKey string, c *candidate.Candidate) ([]decl, error) {
	decls := []decl{{"font-size", size}}
	switch {
	case c.Modifier != nil:
		lh, ok := s.lineHeightValue(c.Modifier)
		if !ok {
			return nil, s.notComputable(c)
		}
		decls = append(decls, decl{"line-height", lh})
	case lineHeightKey != "":
		if _, ok := s.theme.Get(lineHeightKey); ok {
			decls = append(decls, decl{"line-height", "var(" + lineHeightKey + ")"})
		}
	}
	return decls, nil
}

// lineHeightValue computes the line height a text modifier selects: a
// leading name from the theme, a spacing multiple for bare numbers, or
// the raw value of an arbitrary modifier.
func (s *System) lineHeightValue(m *candidate.Modifier) (string, bool) {
	if m.Kind == candidate.ValueArbitrary {
		return m.Value, true
	}
	if _, ok := s.theme.Get("--leading-" + m.Value); ok {
		return "var(--leading-" + m.Value + ")", true
	}
	mult, ok := spacingMultiplier(m.Value)
	if !ok {
		return "", false
	}
	base, ok := s.spacingBase()
	if !ok {
		return "", false
	}
	base.Value *= mult
	return base.String(), true
}

func (s *System) radiusDecls(c *candidate.Candidate) ([]decl, error) {
	if c.Modifier != nil {
		return nil, s.notComputable(c)
	}
	v := c.Value
	var value string
	if v.Kind == candidate.ValueNamed {
		key := "--radius-" + v.Value
		if _, ok := s.theme.Get(key); !ok {
			return nil, s.notComputable(c)
		}
		value = "var(" + key + ")"
	} else {
		if v.DataType != "" && v.DataType != "length" {
			return nil, s.notComputable(c)
		}
		value = v.Value
	}
	return []decl{{"border-radius", value}}, nil
}

func (s *System) wrapVariant(name, block string) (string, error) {
	header, ok := s.variantHeader(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return header + " {\n" + indent(block) + "\n}", nil
}

// variantHeader returns the wrapper header a variant compiles to.
func (s *System) variantHeader(name string) (string, bool) {
	if pseudo, ok := pseudoVariants[name]; ok {
		return "&" + pseudo, true
	}
	if name == "dark" {
		return "@media (prefers-color-scheme: dark)", true
	}
	if bp, ok := s.theme.Get("--breakpoint-" + name); ok {
		return "@media (min-width: " + bp + ")", true
	}
	return "", false
}

var pseudoVariants = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-visible": ":focus-visible",
	"focus-within":  ":focus-within",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"enabled":       ":enabled",
	"checked":       ":checked",
	"required":      ":required",
	"first":         ":first-child",
	"last":          ":last-child",
	"only":          ":only-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
	"empty":         ":empty",
}

func renderDecls(decls []decl, important bool) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.property)
		b.WriteString(": ")
		b.WriteString(d.value)
		if important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	return b.String()
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

func (s *System) notComputable(c *candidate.Candidate) error {
	return fmt.Errorf("%w: %s", ErrNotComputable, s.grammar.Print(c))
}

func (s *System) spacingBase() (cssvalue.Dimension, bool) {
	raw, ok := s.theme.Get("--spacing")
	if !ok {
		return cssvalue.Dimension{}, false
	}
	return cssvalue.ParseDimension(raw)
}

// scaleDimension applies an optional numeric modifier ratio and
// negation to a concrete dimension.
func (s *System) scaleDimension(d cssvalue.Dimension, m *candidate.Modifier, negate bool) (string, bool) {
	if m != nil {
		ratio, ok := modifierRatio(m)
		if !ok {
			return "", false
		}
		d.Value *= ratio
	}
	if negate {
		d.Value = -d.Value
	}
	return d.String(), true
}

// spacingMultiplier validates a bare spacing step: a nonnegative
// multiple of a quarter unit.
func spacingMultiplier(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	if math.Mod(f*4, 1) != 0 {
		return 0, false
	}
	return f, true
}

// modifierRatio interprets a numeric modifier as a ratio. Values with
// a percent sign or greater than one read as percentages, so /50,
// /[50%] and /[0.5] all mean one half.
func modifierRatio(m *candidate.Modifier) (float64, bool) {
	text := m.Value
	pct := strings.HasSuffix(text, "%")
	if pct {
		text = text[:len(text)-1]
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	if pct || f > 1 {
		f /= 100
	}
	if f > 1 {
		return 0, false
	}
	return f, true
}
