/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package design

// decl is one computed CSS declaration.
type decl struct {
	property string
	value    string
}

type rootKind int

const (
	rootSpacing rootKind = iota
	rootColor
	rootText
	rootRadius
)

// rootSpec describes one functional utility root.
type rootSpec struct {
	kind       rootKind
	properties []string
	negate     bool
	allowAuto  bool
}

// spacingRoots lists the spacing utilities in catalog order. Roots
// with auto also get a negated twin unless negation is meaningless.
var spacingRoots = []struct {
	name       string
	properties []string
	allowAuto  bool
	negatable  bool
}{
	{"m", []string{"margin"}, true, true},
	{"mx", []string{"margin-left", "margin-right"}, true, true},
	{"my", []string{"margin-top", "margin-bottom"}, true, true},
	{"mt", []string{"margin-top"}, true, true},
	{"mr", []string{"margin-right"}, true, true},
	{"mb", []string{"margin-bottom"}, true, true},
	{"ml", []string{"margin-left"}, true, true},
	{"p", []string{"padding"}, false, false},
	{"px", []string{"padding-left", "padding-right"}, false, false},
	{"py", []string{"padding-top", "padding-bottom"}, false, false},
	{"pt", []string{"padding-top"}, false, false},
	{"pr", []string{"padding-right"}, false, false},
	{"pb", []string{"padding-bottom"}, false, false},
	{"pl", []string{"padding-left"}, false, false},
	{"gap", []string{"gap"}, false, false},
	{"gap-x", []string{"column-gap"}, false, false},
	{"gap-y", []string{"row-gap"}, false, false},
	{"inset", []string{"inset"}, true, true},
}

// colorRootOrder lists the roots that take color values, in catalog
// order. The text root doubles as the font-size utility.
var colorRootOrder = []string{"bg", "text", "border", "outline"}

// newRoots builds the functional root table and its enumeration order:
// spacing roots, their negated twins, color roots, the text root, then
// the radius root.
func newRoots() (map[string]rootSpec, []string) {
	roots := make(map[string]rootSpec)
	var order []string

	add := func(name string, spec rootSpec) {
		roots[name] = spec
		order = append(order, name)
	}

	for _, r := range spacingRoots {
		add(r.name, rootSpec{
			kind:       rootSpacing,
			properties: r.properties,
			allowAuto:  r.allowAuto,
		})
	}
	for _, r := range spacingRoots {
		if !r.negatable {
			continue
		}
		add("-"+r.name, rootSpec{
			kind:       rootSpacing,
			properties: r.properties,
			negate:     true,
		})
	}

	add("bg", rootSpec{kind: rootColor, properties: []string{"background-color"}})
	add("text", rootSpec{kind: rootText})
	add("border", rootSpec{kind: rootColor, properties: []string{"border-color"}})
	add("outline", rootSpec{kind: rootColor, properties: []string{"outline-color"}})

	add("rounded", rootSpec{kind: rootRadius, properties: []string{"border-radius"}})

	return roots, order
}

// staticUtilities lists the bare named utilities in catalog order.
var staticUtilities = []struct {
	name  string
	decls []decl
}{
	{"block", []decl{{"display", "block"}}},
	{"inline-block", []decl{{"display", "inline-block"}}},
	{"inline", []decl{{"display", "inline"}}},
	{"flex", []decl{{"display", "flex"}}},
	{"inline-flex", []decl{{"display", "inline-flex"}}},
	{"grid", []decl{{"display", "grid"}}},
	{"inline-grid", []decl{{"display", "inline-grid"}}},
	{"contents", []decl{{"display", "contents"}}},
	{"hidden", []decl{{"display", "none"}}},

	{"static", []decl{{"position", "static"}}},
	{"fixed", []decl{{"position", "fixed"}}},
	{"absolute", []decl{{"position", "absolute"}}},
	{"relative", []decl{{"position", "relative"}}},
	{"sticky", []decl{{"position", "sticky"}}},

	{"italic", []decl{{"font-style", "italic"}}},
	{"not-italic", []decl{{"font-style", "normal"}}},
	{"underline", []decl{{"text-decoration-line", "underline"}}},
	{"overline", []decl{{"text-decoration-line", "overline"}}},
	{"line-through", []decl{{"text-decoration-line", "line-through"}}},
	{"no-underline", []decl{{"text-decoration-line", "none"}}},
	{"uppercase", []decl{{"text-transform", "uppercase"}}},
	{"lowercase", []decl{{"text-transform", "lowercase"}}},
	{"capitalize", []decl{{"text-transform", "capitalize"}}},
	{"normal-case", []decl{{"text-transform", "none"}}},

	{"antialiased", []decl{
		{"-webkit-font-smoothing", "antialiased"},
		{"-moz-osx-font-smoothing", "grayscale"},
	}},
	{"truncate", []decl{
		{"overflow", "hidden"},
		{"text-overflow", "ellipsis"},
		{"white-space", "nowrap"},
	}},

	{"rounded-none", []decl{{"border-radius", "0"}}},
	{"rounded-full", []decl{{"border-radius", "9999px"}}},

	{"sr-only", []decl{
		{"position", "absolute"},
		{"width", "1px"},
		{"height", "1px"},
		{"padding", "0"},
		{"margin", "-1px"},
		{"overflow", "hidden"},
		{"clip", "rect(0, 0, 0, 0)"},
		{"white-space", "nowrap"},
		{"border-width", "0"},
	}},
	{"not-sr-only", []decl{
		{"position", "static"},
		{"width", "auto"},
		{"height", "auto"},
		{"padding", "0"},
		{"margin", "0"},
		{"overflow", "visible"},
		{"clip", "auto"},
		{"white-space", "normal"},
	}},
}
