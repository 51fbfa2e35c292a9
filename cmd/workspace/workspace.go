/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace wires the pieces every tailsweep command needs:
// the filesystem, the loaded config, and the design system built from
// it.
package workspace

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wongjn/tailsweep/config"
	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/fs"
)

// Workspace holds the dependencies shared by the commands.
type Workspace struct {
	FS     fs.FileSystem
	Config *config.Config
	System *design.System
}

// Load builds the workspace for cmd, honoring the root --config and
// --prefix flags. Without --config the default probe locations apply,
// and a missing config file is not an error.
func Load(cmd *cobra.Command) (*Workspace, error) {
	filesystem := fs.NewOSFileSystem()

	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault(filesystem, ".")
	}

	// CLI flag wins over the config file.
	if prefix := viper.GetString("prefix"); prefix != "" {
		cfg.Prefix = prefix
	}

	sys, err := cfg.System()
	if err != nil {
		return nil, fmt.Errorf("error building design system: %w", err)
	}

	return &Workspace{FS: filesystem, Config: cfg, System: sys}, nil
}

// ContentFiles returns the files a command should process: the given
// paths when present, otherwise the config's content patterns. Both
// may contain globs.
func (w *Workspace) ContentFiles(args []string, rootDir string) ([]string, error) {
	if len(args) > 0 {
		return config.ExpandPatterns(w.FS, rootDir, args)
	}

	files, err := w.Config.ExpandContent(w.FS, rootDir)
	if err != nil {
		return nil, fmt.Errorf("error expanding config content: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no paths specified and no content patterns in config")
	}
	return files, nil
}
