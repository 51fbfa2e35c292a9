/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import "errors"

var (
	// ErrCircularAlias indicates theme aliases that reference each
	// other in a loop.
	ErrCircularAlias = errors.New("circular theme alias")

	// ErrUnknownAlias indicates an alias that references a key
	// missing from the theme.
	ErrUnknownAlias = errors.New("unknown theme alias")
)
