/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvalue

import (
	"reflect"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normal", "1px solid red", "1px solid red"},
		{"leading and trailing", "  smooth ", "smooth"},
		{"inner runs", "var(--x,   #000)", "var(--x, #000)"},
		{"tabs and newlines", "a\t b\nc", "a b c"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitTop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   byte
		want  []string
	}{
		{"plain", "hover:focus:flex", ':', []string{"hover", "focus", "flex"}},
		{"bracketed colon", "text-[color:red]", ':', []string{"text-[color:red]"}},
		{"mixed", "md:text-[color:red]", ':', []string{"md", "text-[color:red]"}},
		{"parens", "bg-[url(a:b)]", ':', []string{"bg-[url(a:b)]"}},
		{"quoted", "[content:'a:b']", ':', []string{"[content:'a:b']"}},
		{"no separator", "flex", ':', []string{"flex"}},
		{"empty segments", "::", ':', []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitTop(tt.input, tt.sep); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTop(%q, %q) = %v, want %v", tt.input, tt.sep, got, tt.want)
			}
		})
	}
}

func TestLastIndexTop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   byte
		want  int
	}{
		{"present", "bg-red-500/50", '/', 10},
		{"bracketed", "bg-[url(/a/b)]", '/', -1},
		{"last of several", "a/b/c", '/', 3},
		{"absent", "flex", '/', -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndexTop(tt.input, tt.sep); got != tt.want {
				t.Errorf("LastIndexTop(%q, %q) = %d, want %d", tt.input, tt.sep, got, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Dimension
		ok    bool
	}{
		{"px", "16px", Dimension{16, "px"}, true},
		{"rem", "2.5rem", Dimension{2.5, "rem"}, true},
		{"percent", "50%", Dimension{50, "%"}, true},
		{"bare number", "4", Dimension{4, ""}, true},
		{"negative", "-1px", Dimension{-1, "px"}, true},
		{"explicit plus", "+2em", Dimension{2, "em"}, true},
		{"leading dot", ".5rem", Dimension{0.5, "rem"}, true},
		{"unit only", "px", Dimension{}, false},
		{"space before unit", "1 px", Dimension{}, false},
		{"function", "calc(1px)", Dimension{}, false},
		{"empty", "", Dimension{}, false},
		{"double dot", "1.2.3px", Dimension{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDimension(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDimension(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDimension(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		want string
	}{
		{"integer", Dimension{16, "px"}, "16px"},
		{"fraction", Dimension{0.25, "rem"}, "0.25rem"},
		{"trailing zeros dropped", Dimension{1.50, "rem"}, "1.5rem"},
		{"unitless", Dimension{4, ""}, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Ref
	}{
		{"none", "1px solid red", nil},
		{"simple", "var(--brand)", []Ref{{Name: "--brand"}}},
		{"fallback", "var(--brand, #000)", []Ref{{Name: "--brand", Fallback: "#000"}}},
		{
			"nested fallback",
			"var(--a, var(--b, 1px))",
			[]Ref{
				{Name: "--a", Fallback: "var(--b, 1px)"},
				{Name: "--b", Fallback: "1px"},
			},
		},
		{
			"two references",
			"calc(var(--x) + var(--y))",
			[]Ref{{Name: "--x"}, {Name: "--y"}},
		},
		{"ident boundary", "invar(--x)", nil},
		{"not a custom property", "var(x)", nil},
		{
			"comma in fallback",
			"var(--shadow, 0 0 1px rgb(0, 0, 0))",
			[]Ref{{Name: "--shadow", Fallback: "0 0 1px rgb(0, 0, 0)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := References(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("References(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	theme := map[string]string{
		"--spacing":       "0.25rem",
		"--color-red-500": "#ef4444",
	}
	resolve := func(name string) (string, bool) {
		v, ok := theme[name]
		return v, ok
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"resolvable", "var(--color-red-500)", "#ef4444"},
		{"unresolvable with fallback", "var(--brand, #000)", "#000"},
		{"unresolvable without fallback", "var(--brand)", "var(--brand)"},
		{"fallback chain", "var(--brand, var(--color-red-500))", "#ef4444"},
		{"surrounding text", "calc(var(--spacing) * 4)", "calc(0.25rem * 4)"},
		{"no references", "1px solid", "1px solid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.input, resolve); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedefinesProperty(t *testing.T) {
	tests := []struct {
		name string
		css  string
		prop string
		want bool
	}{
		{"top level", "--brand: #000;", "--brand", true},
		{"inside block", "&:hover {\n  --brand: #000;\n}", "--brand", true},
		{"different property", "--other: #000;", "--brand", false},
		{"reference only", "color: var(--brand);", "--brand", false},
		{"after declaration", "color: red;--brand: blue;", "--brand", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedefinesProperty(tt.css, tt.prop); got != tt.want {
				t.Errorf("RedefinesProperty(%q, %q) = %v, want %v", tt.css, tt.prop, got, tt.want)
			}
		})
	}
}

func TestCanonicalColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"uppercase hex", "#FF0000", "#ff0000", true},
		{"short hex", "#000", "#000000", true},
		{"named", "red", "#ff0000", true},
		{"rgb function", "rgb(255, 0, 0)", "#ff0000", true},
		{"with alpha", "rgba(255, 0, 0, 0.5)", "#ff000080", true},
		{"transparent", "transparent", "#00000000", true},
		{"dimension", "16px", "", false},
		{"gibberish", "not-a-color", "", false},
		{"reference", "var(--brand)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("CanonicalColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("CanonicalColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
