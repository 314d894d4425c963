// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchspeed

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/benchcross/benchname"
)

// csvHeader is the column layout of WriteCSV output.
var csvHeader = []string{"operation", "backend", "scale", "baseline", "implementation", "speedup"}

// WriteCSV writes one row per speedup bar in report order, plus a
// geomean summary row per (operation, backend, implementation) after
// each backend's scales. A slot with no usable measurement gets an
// empty speedup cell.
func WriteCSV(w io.Writer, cs []*OpComparison) error {
	o := csv.NewWriter(w)
	o.Write(csvHeader)
	for _, c := range cs {
		for _, backend := range c.Backends {
			for _, row := range c.Rows[backend] {
				for _, slot := range benchname.Slots() {
					o.Write([]string{c.Op, backend, row.Scale, row.Baseline, slot, strof(row.Speedup[slot])})
				}
			}
			gm := c.Geomeans(backend)
			for _, slot := range benchname.Slots() {
				o.Write([]string{c.Op, backend, "geomean", "", slot, strof(gm[slot])})
			}
		}
	}
	o.Flush()
	return o.Error()
}

// strof renders a speedup cell. A speedup of 0 means "not measured"
// and renders empty.
func strof(x float64) string {
	if x == 0 {
		return ""
	}
	return fmt.Sprintf("%f", x)
}
