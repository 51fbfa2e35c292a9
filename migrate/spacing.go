/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package migrate

import "github.com/wongjn/tailsweep/cssvalue"

type spacingBase struct {
	dim cssvalue.Dimension
	ok  bool
}

// spacing resolves the base spacing dimension from the theme once per
// engine lifetime.
func (m *Migrator) spacing() (cssvalue.Dimension, bool) {
	m.spacingOnce.Do(func() {
		raw := m.sys.ResolveThemeValue("--spacing")
		if raw == "" {
			return
		}
		d, ok := cssvalue.ParseDimension(raw)
		if !ok {
			return
		}
		m.spacingBase = spacingBase{dim: d, ok: true}
	})
	return m.spacingBase.dim, m.spacingBase.ok
}

// multiplier converts a raw CSS length to its spacing multiple. The
// units must match the base exactly; mismatched units, unparseable
// values and negative results all report false.
func (m *Migrator) multiplier(raw string) (float64, bool) {
	base, ok := m.spacing()
	if !ok || base.Value == 0 {
		return 0, false
	}
	d, ok := cssvalue.ParseDimension(raw)
	if !ok || d.Unit != base.Unit {
		return 0, false
	}
	mult := d.Value / base.Value
	if mult < 0 {
		return 0, false
	}
	return mult, true
}
