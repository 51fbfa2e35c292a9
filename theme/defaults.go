/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

// Default returns a fresh copy of the stock theme: the spacing unit,
// breakpoints, the color palette, text sizes with their line heights,
// radii and leading names.
func Default() *Theme {
	t := New()
	t.Set("--spacing", "0.25rem")

	for _, e := range defaultBreakpoints {
		t.Set("--breakpoint-"+e.name, e.value)
	}

	t.Set("--color-white", "#ffffff")
	t.Set("--color-black", "#000000")
	for _, hue := range defaultPalette {
		for i, stop := range paletteStops {
			t.Set("--color-"+hue.name+"-"+stop, hue.stops[i])
		}
	}

	for _, e := range defaultTextSizes {
		t.Set("--text-"+e.name, e.size)
		t.Set("--text-"+e.name+"--line-height", e.lineHeight)
	}

	for _, e := range defaultRadii {
		t.Set("--radius-"+e.name, e.value)
	}

	for _, e := range defaultLeading {
		t.Set("--leading-"+e.name, e.value)
	}

	return t
}

var defaultBreakpoints = []struct{ name, value string }{
	{"sm", "40rem"},
	{"md", "48rem"},
	{"lg", "64rem"},
	{"xl", "80rem"},
	{"2xl", "96rem"},
}

// paletteStops are the brightness stops of every hue, light to dark.
var paletteStops = [11]string{
	"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950",
}

var defaultPalette = []struct {
	name  string
	stops [11]string
}{
	{"gray", [11]string{
		"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280",
		"#4b5563", "#374151", "#1f2937", "#111827", "#030712",
	}},
	{"red", [11]string{
		"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444",
		"#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a",
	}},
	{"orange", [11]string{
		"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316",
		"#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407",
	}},
	{"amber", [11]string{
		"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b",
		"#d97706", "#b45309", "#92400e", "#78350f", "#451a03",
	}},
	{"yellow", [11]string{
		"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308",
		"#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006",
	}},
	{"green", [11]string{
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e",
		"#16a34a", "#15803d", "#166534", "#14532d", "#052e16",
	}},
	{"teal", [11]string{
		"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6",
		"#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e",
	}},
	{"sky", [11]string{
		"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9",
		"#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49",
	}},
	{"blue", [11]string{
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6",
		"#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554",
	}},
	{"indigo", [11]string{
		"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1",
		"#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b",
	}},
	{"purple", [11]string{
		"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7",
		"#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764",
	}},
	{"pink", [11]string{
		"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899",
		"#db2777", "#be185d", "#9d174d", "#831843", "#500724",
	}},
}

var defaultTextSizes = []struct{ name, size, lineHeight string }{
	{"xs", "0.75rem", "1rem"},
	{"sm", "0.875rem", "1.25rem"},
	{"base", "1rem", "1.5rem"},
	{"lg", "1.125rem", "1.75rem"},
	{"xl", "1.25rem", "1.75rem"},
	{"2xl", "1.5rem", "2rem"},
	{"3xl", "1.875rem", "2.25rem"},
	{"4xl", "2.25rem", "2.5rem"},
	{"5xl", "3rem", "1"},
	{"6xl", "3.75rem", "1"},
	{"7xl", "4.5rem", "1"},
	{"8xl", "6rem", "1"},
	{"9xl", "8rem", "1"},
}

var defaultRadii = []struct{ name, value string }{
	{"xs", "0.125rem"},
	{"sm", "0.25rem"},
	{"md", "0.375rem"},
	{"lg", "0.5rem"},
	{"xl", "0.75rem"},
	{"2xl", "1rem"},
	{"3xl", "1.5rem"},
	{"4xl", "2rem"},
}

var defaultLeading = []struct{ name, value string }{
	{"none", "1"},
	{"tight", "1.25"},
	{"snug", "1.375"},
	{"normal", "1.5"},
	{"relaxed", "1.625"},
	{"loose", "2"},
}
