/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package design

import (
	"iter"
	"strconv"
	"strings"
)

// opacitySteps are the numeric alpha modifiers enumerated for color
// utilities. Numeric modifiers resolve arithmetically and are never
// pre-indexed by consumers.
var opacitySteps = func() []string {
	steps := make([]string, 0, 21)
	for i := 0; i <= 100; i += 5 {
		steps = append(steps, strconv.Itoa(i))
	}
	return steps
}()

// Catalog yields every named utility with its modifier names, in a
// stable order: static utilities, color utilities per root, text
// sizes, radii, then the spacing names auto and px.
func (s *System) Catalog() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, u := range staticUtilities {
			if !yield(u.name, nil) {
				return
			}
		}

		var colorNames []string
		for name := range s.theme.Namespace("--color-") {
			colorNames = append(colorNames, name)
		}
		for _, root := range colorRootOrder {
			for _, name := range colorNames {
				if !yield(root+"-"+name, opacitySteps) {
					return
				}
			}
		}

		var leading []string
		for name := range s.theme.Namespace("--leading-") {
			leading = append(leading, name)
		}
		for name := range s.theme.Namespace("--text-") {
			// Skip the --text-<size>--line-height companions.
			if strings.Contains(name, "--") {
				continue
			}
			if !yield("text-"+name, leading) {
				return
			}
		}

		for name := range s.theme.Namespace("--radius-") {
			if !yield("rounded-"+name, nil) {
				return
			}
		}

		for _, r := range spacingRoots {
			if !r.allowAuto {
				continue
			}
			if !yield(r.name+"-auto", nil) {
				return
			}
		}
		for _, r := range spacingRoots {
			if !yield(r.name+"-px", nil) {
				return
			}
			if r.negatable && !yield("-"+r.name+"-px", nil) {
				return
			}
		}
	}
}

// FunctionalRoots yields every functional utility root in catalog
// order.
func (s *System) FunctionalRoots() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range s.rootOrder {
			if !yield(name) {
				return
			}
		}
	}
}
