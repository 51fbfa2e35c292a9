/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvalue

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// AlphaThreshold is the alpha value at or above which a color is
// treated as fully opaque, dropping the alpha channel from hex output.
const AlphaThreshold = 0.999

// CanonicalColor parses s as a CSS color and renders it as a lowercase
// hex string: #rrggbb when fully opaque, #rrggbbaa otherwise. It fails
// when s is not a parseable color literal.
func CanonicalColor(s string) (string, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", false
	}
	r, g, b, a := c.RGBA255()
	if c.A >= AlphaThreshold {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a), true
}

// IsColor reports whether s parses as a CSS color literal.
func IsColor(s string) bool {
	_, ok := CanonicalColor(s)
	return ok
}
