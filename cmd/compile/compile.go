/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compile provides the compile command for tailsweep.
package compile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wongjn/tailsweep/cmd/workspace"
	"github.com/wongjn/tailsweep/design"
)

// Cmd is the compile cobra command.
var Cmd = &cobra.Command{
	Use:   "compile <class>...",
	Short: "Print the computed declarations for classes",
	Long: `Compute the CSS declarations the design system assigns to each class,
exactly as the migration engine compares them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "css", "Output format: css, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.Load(cmd)
	if err != nil {
		return err
	}

	blocks, failures := compileAll(ws.System, args)

	switch format {
	case "json":
		err = outputJSON(blocks)
	case "css", "":
		err = outputCSS(blocks)
	default:
		return fmt.Errorf("unknown format: %s (valid: css, json)", format)
	}
	if err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d class(es) failed", failures)
	}
	return nil
}

// block is one compiled class.
type block struct {
	Class string `json:"class"`
	CSS   string `json:"css"`
}

func compileAll(sys *design.System, classes []string) ([]block, int) {
	blocks := make([]block, 0, len(classes))
	failures := 0
	for _, class := range classes {
		css, err := sys.ComputedDeclarations([]string{class})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling %s: %v\n", class, err)
			failures++
			continue
		}
		blocks = append(blocks, block{Class: class, CSS: css})
	}
	return blocks, failures
}

func outputCSS(blocks []block) error {
	for _, b := range blocks {
		fmt.Printf(".%s {\n%s\n}\n", selectorEscape(b.Class), indent(b.CSS))
	}
	return nil
}

func outputJSON(blocks []block) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(blocks)
}

// selectorEscape backslash-escapes every character CSS identifiers
// treat specially. Arbitrary values put brackets, colons, and
// percent signs in class names.
func selectorEscape(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func indent(blk string) string {
	lines := strings.Split(blk, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
