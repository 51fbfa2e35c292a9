/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tsfs "github.com/wongjn/tailsweep/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tailsweep"

// ConfigDir is the directory probed for config files.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// ErrNoConfig reports that no config file exists under the root.
var ErrNoConfig = errors.New("no config file found")

// Load searches for .config/tailsweep.{yaml,yml,json} under rootDir;
// the first hit wins. A missing file returns ErrNoConfig.
func Load(filesystem tsfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}

	return nil, ErrNoConfig
}

// LoadFile loads the config at an explicit path. The format follows
// the extension; anything but .json parses as YAML. JSON files may
// carry comments and trailing commas.
func LoadFile(filesystem tsfs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns the loaded config, or the zero config when
// none is found or loading fails.
func LoadOrDefault(filesystem tsfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return Default()
	}
	return cfg
}

// ExpandContent expands the config's content patterns against the
// filesystem and returns the matching file paths.
func (c *Config) ExpandContent(filesystem tsfs.FileSystem, rootDir string) ([]string, error) {
	return ExpandPatterns(filesystem, rootDir, c.Content)
}

// ExpandPatterns expands path patterns against the filesystem and
// returns the matching file paths, sorted with duplicates removed.
// Non-glob entries pass through as-is; whether they exist is checked
// when they are read.
func ExpandPatterns(filesystem tsfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		expanded, err := expandPattern(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	slices.Sort(result)
	return slices.Compact(result), nil
}

// expandPattern expands a single content entry, which may contain
// globs.
func expandPattern(filesystem tsfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob walks the filesystem from the pattern's non-glob prefix
// and collects matching files. doublestar handles both simple and **
// globs.
func expandGlob(filesystem tsfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
