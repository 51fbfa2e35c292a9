/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// aliasPattern matches a {--key} alias inside a theme value.
var aliasPattern = regexp.MustCompile(`\{(--[a-zA-Z0-9_-]+)\}`)

// Resolve replaces every {--key} alias with the referenced value,
// following chains in dependency order. It fails with ErrUnknownAlias
// for references to missing keys and with ErrCircularAlias when
// aliases form a loop; the theme is left partially resolved on error.
func (t *Theme) Resolve() error {
	const (
		white = iota // unvisited
		gray         // on the current path
		black        // fully resolved
	)
	state := make(map[string]int, len(t.keys))
	var path []string

	var visit func(key string) error
	visit = func(key string) error {
		switch state[key] {
		case black:
			return nil
		case gray:
			cycle := slices.Index(path, key)
			return fmt.Errorf("%w: %s", ErrCircularAlias, strings.Join(append(path[cycle:], key), " -> "))
		}
		state[key] = gray
		path = append(path, key)
		for _, ref := range aliasRefs(t.values[key]) {
			if _, ok := t.values[ref]; !ok {
				return fmt.Errorf("%w: %s references %s", ErrUnknownAlias, key, ref)
			}
			if err := visit(ref); err != nil {
				return err
			}
		}
		t.values[key] = aliasPattern.ReplaceAllStringFunc(t.values[key], func(m string) string {
			return t.values[m[1:len(m)-1]]
		})
		path = path[:len(path)-1]
		state[key] = black
		return nil
	}

	for _, key := range t.keys {
		if err := visit(key); err != nil {
			return err
		}
	}
	return nil
}

func aliasRefs(value string) []string {
	matches := aliasPattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}
