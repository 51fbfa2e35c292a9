/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classes provides the classes command for tailsweep.
package classes

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wongjn/tailsweep/cmd/workspace"
	"github.com/wongjn/tailsweep/cssvalue"
	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/internal/logger"
)

// Cmd is the classes cobra command.
var Cmd = &cobra.Command{
	Use:   "classes",
	Short: "List the catalog of named utilities",
	Long: `List every named utility the design system accepts, with its computed
declarations. Color utilities render a swatch in table format.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: "+strings.Join(ValidFormats(), ", "))
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	ws, err := workspace.Load(cmd)
	if err != nil {
		return err
	}

	rows := computeRows(ws.System)

	switch format {
	case FormatJSON:
		return outputJSON(rows)
	case FormatCSS:
		return outputCSS(rows)
	default:
		return outputTable(rows)
	}
}

// row holds computed display values for a single catalog utility.
type row struct {
	Name      string   // class name, prefixed when the system is prefixed
	Modifiers []string // named modifier suffixes
	CSS       string   // computed declarations
	Property  string   // first declaration's property, for grouping
	Color     string   // resolved color value, empty for non-colors
}

// computeRows transforms the catalog into display rows with all
// values computed.
func computeRows(sys *design.System) []row {
	var rows []row
	for name, mods := range sys.Catalog() {
		class := name
		if p := sys.Prefix(); p != "" {
			class = p + ":" + name
		}

		css, err := sys.ComputedDeclarations([]string{class})
		if err != nil {
			logger.Warn("skipping %s: %v", class, err)
			continue
		}

		rows = append(rows, row{
			Name:      class,
			Modifiers: mods,
			CSS:       css,
			Property:  declProperty(css),
			Color:     colorValue(sys, css),
		})
	}
	return rows
}

// declProperty returns the property of the first declaration.
func declProperty(css string) string {
	line, _, _ := strings.Cut(css, "\n")
	property, _, _ := strings.Cut(line, ":")
	return property
}

// colorValue resolves the display color of a computed block: the
// theme value behind a lone var() reference, or the literal value
// itself when it parses as a color.
func colorValue(sys *design.System, css string) string {
	line, _, _ := strings.Cut(css, "\n")
	property, value, ok := strings.Cut(line, ": ")
	if !ok || !colorProperty(property) {
		return ""
	}
	value = strings.TrimSuffix(value, ";")

	if refs := cssvalue.References(value); len(refs) == 1 {
		value = sys.ResolveThemeValue(refs[0].Name)
	}
	if _, err := csscolorparser.Parse(value); err != nil {
		return ""
	}
	return value
}

func colorProperty(property string) bool {
	switch property {
	case "color", "background-color", "border-color", "outline-color":
		return true
	}
	return false
}

// outputTable prints rows grouped by declaration property, in order
// of first occurrence.
func outputTable(rows []row) error {
	if len(rows) == 0 {
		return nil
	}

	var order []string
	groups := make(map[string][]row)
	for _, r := range rows {
		if _, ok := groups[r.Property]; !ok {
			order = append(order, r.Property)
		}
		groups[r.Property] = append(groups[r.Property], r)
	}

	caser := cases.Title(language.English)
	for i, property := range order {
		if i > 0 {
			fmt.Println()
		}
		heading := strings.TrimPrefix(property, "-")
		heading = strings.ReplaceAll(heading, "-", " ")
		fmt.Printf("%s\n\n", caser.String(heading))

		group := groups[property]
		nameWidth := 4
		for _, r := range group {
			if len(r.Name) > nameWidth {
				nameWidth = len(r.Name)
			}
		}
		for _, r := range group {
			fmt.Printf("  %-*s  %s%s\n", nameWidth, r.Name, swatch(r.Color), flatten(r.CSS))
		}
	}
	return nil
}

// flatten joins a multi-line block into one display line.
func flatten(css string) string {
	return strings.ReplaceAll(css, "\n", " ")
}

// swatch renders value as a labeled 24-bit ANSI chip. The label is
// black or white, whichever contrasts more with the background; 0.179
// is the relative luminance where the two contrast ratios cross.
func swatch(value string) string {
	if value == "" {
		return ""
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()

	fg := "255;255;255"
	bg := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	if _, y, _ := bg.Xyz(); y > 0.179 {
		fg = "0;0;0"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%sm %s \x1b[0m ", r, g, b, fg, value)
}

// outputJSON prints the catalog as a JSON array.
func outputJSON(rows []row) error {
	type classOutput struct {
		Class     string   `json:"class"`
		Modifiers []string `json:"modifiers,omitempty"`
		CSS       string   `json:"css"`
	}

	output := make([]classOutput, 0, len(rows))
	for _, r := range rows {
		output = append(output, classOutput{Class: r.Name, Modifiers: r.Modifiers, CSS: r.CSS})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputCSS prints each utility as a CSS rule.
func outputCSS(rows []row) error {
	for _, r := range rows {
		fmt.Printf(".%s {\n%s\n}\n", selectorEscape(r.Name), indent(r.CSS))
	}
	return nil
}

var selectorEscaper = strings.NewReplacer(":", "\\:", "/", "\\/", ".", "\\.")

// selectorEscape escapes the class-name characters CSS selectors
// treat specially.
func selectorEscape(name string) string {
	return selectorEscaper.Replace(name)
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
