// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"

	"github.com/google/safehtml/template"

	"golang.org/x/benchcross/benchname"
	"golang.org/x/benchcross/benchspeed"
)

// htmlSection is one operation's slice of the index page.
type htmlSection struct {
	Op    string
	Image string   // chart image file, relative to the page
	Slots []string // implementation column headers
	Rows  []htmlRow
}

// htmlRow is one table row: a (backend, scale) bar group or a
// backend's geomean summary.
type htmlRow struct {
	Backend  string
	Scale    string
	Baseline string
	Cells    []string // one per slot; empty for no data
}

var htmlTemplate = template.Must(template.New("").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
{{- range . -}}
<h2>{{.Op}}</h2>
<p><img src='{{.Image}}' alt='{{.Op}} speedups'></p>
<table class='benchchart'>
<tr><th>backend</th><th>scale</th><th>baseline</th>{{range .Slots}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows -}}
<tr><td>{{.Backend}}</td><td>{{.Scale}}</td><td>{{.Baseline}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
</table>
{{end -}}
`)))

// FormatHTML appends an HTML rendering of the comparisons to buf: one
// section per operation with its chart image and speedup table.
func FormatHTML(buf *bytes.Buffer, comparisons []*benchspeed.OpComparison) {
	err := htmlTemplate.Execute(buf, htmlSections(comparisons))
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}

func htmlSections(comparisons []*benchspeed.OpComparison) []htmlSection {
	slots := benchname.Slots()
	var sections []htmlSection
	for _, c := range comparisons {
		sec := htmlSection{Op: c.Op, Image: "chart_" + c.Op + ".png"}
		for _, slot := range slots {
			sec.Slots = append(sec.Slots, benchname.Display(slot))
		}
		for _, backend := range c.Backends {
			for _, row := range c.Rows[backend] {
				hr := htmlRow{Backend: backend, Scale: row.Scale, Baseline: benchname.Display(row.Baseline)}
				for _, slot := range slots {
					hr.Cells = append(hr.Cells, htmlSpeedup(row.Speedup[slot]))
				}
				sec.Rows = append(sec.Rows, hr)
			}
			gm := c.Geomeans(backend)
			hr := htmlRow{Backend: backend, Scale: "geomean"}
			for _, slot := range slots {
				hr.Cells = append(hr.Cells, htmlSpeedup(gm[slot]))
			}
			sec.Rows = append(sec.Rows, hr)
		}
		sections = append(sections, sec)
	}
	return sections
}

// htmlSpeedup formats one speedup cell. 0 means no usable measurement,
// shown as an empty cell.
func htmlSpeedup(x float64) string {
	if x == 0 {
		return ""
	}
	return fmt.Sprintf("%.2fx", x)
}
