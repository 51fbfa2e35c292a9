/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classes

import (
	"fmt"
	"strings"
)

// Format represents an output format for the catalog listing.
type Format string

const (
	// FormatTable prints a grouped table with color swatches (default).
	FormatTable Format = "table"

	// FormatJSON prints the catalog as a JSON array.
	FormatJSON Format = "json"

	// FormatCSS prints each utility as a CSS rule.
	FormatCSS Format = "css"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatTable),
		string(FormatJSON),
		string(FormatCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "css":
		return FormatCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}
