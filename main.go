/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tailsweep rewrites arbitrary utility values to named design
// tokens.
package main

import (
	"os"

	"github.com/wongjn/tailsweep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
