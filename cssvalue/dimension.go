/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvalue

import "strconv"

// A Dimension is a CSS numeric value with an optional unit, such as
// 16px, 2.5rem, 50% or a bare 4.
type Dimension struct {
	Value float64
	Unit  string
}

// ParseDimension parses s as a single CSS dimension: an optional sign,
// a decimal number and a trailing unit made of letters or a percent
// sign. It fails on anything else, including whitespace.
func ParseDimension(s string) (Dimension, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return Dimension{}, false
	}
	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Dimension{}, false
	}
	unit := s[i:]
	if !validUnit(unit) {
		return Dimension{}, false
	}
	return Dimension{Value: value, Unit: unit}, true
}

// String renders the dimension with the shortest decimal form of its
// value followed by its unit.
func (d Dimension) String() string {
	return FormatNumber(d.Value) + d.Unit
}

// FormatNumber renders f in plain decimal notation with no
// insignificant zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func validUnit(unit string) bool {
	if unit == "" || unit == "%" {
		return true
	}
	for i := 0; i < len(unit); i++ {
		c := unit[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
