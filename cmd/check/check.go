/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for tailsweep.
package check

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wongjn/tailsweep/cmd/rewrite"
	"github.com/wongjn/tailsweep/cmd/workspace"
	migratelib "github.com/wongjn/tailsweep/migrate"
)

// Cmd is the check cobra command. It never writes; a nonzero exit
// reports that rewrites are available, for CI gates.
var Cmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Fail when class rewrites are available",
	Long: `Scan source files like migrate but never write. Exits nonzero when any
class has a named equivalent, printing each proposed rewrite.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
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
	pending := 0
	for _, file := range files {
		src, err := ws.FS.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			failures++
			continue
		}

		for _, e := range rewrite.File(mig, file, src) {
			fmt.Printf("%s:%d:%d %s -> %s\n", file, e.Span.Line, e.Span.Column, e.Span.Token, e.Replacement)
			pending++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}
	if pending > 0 {
		return fmt.Errorf("%d rewrite(s) available", pending)
	}
	return nil
}
