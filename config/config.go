/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads the project configuration for tailsweep.
package config

import (
	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/theme"
)

// Config is the project configuration.
type Config struct {
	// Prefix is the class prefix utilities are written with, without
	// the trailing colon.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Content lists the files to scan. Entries are paths or glob
	// patterns; ** is supported.
	Content []string `yaml:"content" json:"content"`

	// Theme is merged over the default theme. The value "initial"
	// deletes a key.
	Theme map[string]string `yaml:"theme" json:"theme"`
}

// Default returns the zero configuration.
func Default() *Config {
	return &Config{}
}

// System builds the design system the configuration describes: the
// default theme with overrides merged, under the configured prefix.
func (c *Config) System() (*design.System, error) {
	th := theme.Default()
	th.Merge(c.Theme)
	return design.New(th, design.Options{Prefix: c.Prefix})
}
