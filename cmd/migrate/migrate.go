/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package migrate provides the migrate command for tailsweep.
package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wongjn/tailsweep/cmd/rewrite"
	"github.com/wongjn/tailsweep/cmd/workspace"
	"github.com/wongjn/tailsweep/internal/logger"
	migratelib "github.com/wongjn/tailsweep/migrate"
)

// Cmd is the migrate cobra command.
var Cmd = &cobra.Command{
	Use:   "migrate [paths...]",
	Short: "Rewrite arbitrary values to named utilities",
	Long: `Scan source files for utility classes carrying arbitrary values and
rewrite each one to the named equivalent when the computed styles are
byte-identical. Without --write the proposed rewrites are printed as
file:line:col old -> new.

Paths may contain globs and default to the config's content patterns.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("write", "w", false, "Write rewrites back to the source files")
}

func run(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	ws, err := workspace.Load(cmd)
	if err != nil {
		return err
	}

	files, err := ws.ContentFiles(args, ".")
	if err != nil {
		return err
	}

	mig := migratelib.New(ws.System, migratelib.Options{})

	failures := 0
	total := 0
	changed := 0
	for _, file := range files {
		src, err := ws.FS.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			failures++
			continue
		}

		edits := rewrite.File(mig, file, src)
		if len(edits) == 0 {
			continue
		}
		total += len(edits)
		changed++

		if !write {
			for _, e := range edits {
				fmt.Printf("%s:%d:%d %s -> %s\n", file, e.Span.Line, e.Span.Column, e.Span.Token, e.Replacement)
			}
			continue
		}

		if err := writeFile(ws, file, rewrite.Apply(src, edits)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", file, err)
			failures++
		}
	}

	if write {
		logger.Info("rewrote %d class(es) in %d file(s)", total, changed)
	} else if total > 0 {
		logger.Info("%d rewrite(s) available in %d file(s); run with --write to apply", total, changed)
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}
	return nil
}

// writeFile preserves the existing file mode.
func writeFile(ws *workspace.Workspace, path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := ws.FS.Stat(path); err == nil {
		mode = info.Mode()
	}
	return ws.FS.WriteFile(path, data, mode)
}
