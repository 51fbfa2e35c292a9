/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package candidate

import "strings"

// Print renders c back to class-token text in canonical spelling:
// prefix first, variants in order, values with spaces encoded as
// underscores and the important marker trailing. Printing a candidate
// and reparsing the result yields an equal candidate.
func (g Grammar) Print(c *Candidate) string {
	var b strings.Builder
	if g.Prefix != "" {
		b.WriteString(g.Prefix)
		b.WriteByte(':')
	}
	for _, v := range c.Variants {
		b.WriteString(v)
		b.WriteByte(':')
	}
	switch c.Kind {
	case KindArbitrary:
		b.WriteByte('[')
		b.WriteString(c.Property)
		b.WriteByte(':')
		b.WriteString(EncodeValue(c.Value.Value))
		b.WriteByte(']')
	case KindStatic:
		b.WriteString(c.Root)
	case KindFunctional:
		b.WriteString(c.Root)
		if c.Value != nil {
			if c.Value.Kind == ValueArbitrary {
				b.WriteString("-[")
				if c.Value.DataType != "" {
					b.WriteString(c.Value.DataType)
					b.WriteByte(':')
				}
				b.WriteString(EncodeValue(c.Value.Value))
				b.WriteByte(']')
			} else {
				b.WriteByte('-')
				b.WriteString(c.Value.Value)
			}
		}
	}
	if c.Modifier != nil {
		b.WriteByte('/')
		if c.Modifier.Kind == ValueArbitrary {
			b.WriteByte('[')
			b.WriteString(EncodeValue(c.Modifier.Value))
			b.WriteByte(']')
		} else {
			b.WriteString(c.Modifier.Value)
		}
	}
	if c.Important {
		b.WriteByte('!')
	}
	return b.String()
}
