// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchspeed derives per-backend speedup comparisons from a
// normalized benchmark tree and renders them as charts, CSV, and
// summary tables.
//
// A speedup is the ratio of the baseline implementation's mean to
// another implementation's mean at the same operation, scale, and
// backend. The baseline is the naive implementation when one was
// measured, the library implementation otherwise. Larger is better; 0
// means the implementation has no usable measurement there.
package benchspeed

import (
	"encoding/json"

	"github.com/aclements/go-moremath/stats"

	"golang.org/x/benchcross/benchname"
	"golang.org/x/benchcross/benchtree"
)

// A Row is one bar group: the per-slot speedups for one scale of one
// backend, relative to that row's baseline.
type Row struct {
	Scale    string
	Baseline string             // implementation class the speedups are relative to
	Speedup  map[string]float64 // slot -> speedup; 0 means no bar
}

// An OpComparison holds one operation's speedup rows, grouped by
// backend.
type OpComparison struct {
	Op       string
	Backends []string          // sorted union over the operation's scales
	Rows     map[string][]*Row // backend -> rows in scale order
}

// Build derives the speedup comparison for every operation in tree.
// Operations order lexically, rows numerically by scale, and backends
// lexically, so repeated runs over the same document produce the same
// report. An operation with no backends is dropped.
func Build(tree benchtree.Tree) []*OpComparison {
	var cs []*OpComparison
	for _, op := range tree.Operations() {
		scales := tree[op]
		backends := scales.Backends()
		if len(backends) == 0 {
			continue
		}
		c := &OpComparison{Op: op, Backends: backends, Rows: make(map[string][]*Row)}
		for _, backend := range backends {
			for _, scale := range scales.Scales() {
				impls := scales[scale][backend]
				if impls == nil {
					// This backend was not measured at
					// this scale.
					continue
				}
				c.Rows[backend] = append(c.Rows[backend], newRow(scale, impls))
			}
		}
		cs = append(cs, c)
	}
	return cs
}

// Geomeans returns, per slot, the geometric mean of the strictly
// positive speedups across c's rows for backend, or 0 for a slot that
// never has one.
func (c *OpComparison) Geomeans(backend string) map[string]float64 {
	gm := make(map[string]float64)
	for _, slot := range benchname.Slots() {
		var vals []float64
		for _, row := range c.Rows[backend] {
			if v := row.Speedup[slot]; v > 0 {
				vals = append(vals, v)
			}
		}
		gm[slot] = 0
		if len(vals) > 0 {
			gm[slot] = stats.GeoMean(vals)
		}
	}
	return gm
}

func newRow(scale string, impls benchtree.ImplMap) *Row {
	baseline := pickBaseline(impls)
	base, _ := leafMean(impls[baseline])
	row := &Row{Scale: scale, Baseline: baseline, Speedup: make(map[string]float64)}
	for _, slot := range benchname.Slots() {
		row.Speedup[slot] = speedup(base, impls, slot)
	}
	return row
}

// pickBaseline returns the implementation class speedups are computed
// against: naive if present, else lib, else the lexically first class.
func pickBaseline(impls benchtree.ImplMap) string {
	if _, ok := impls["naive"]; ok {
		return "naive"
	}
	if _, ok := impls["lib"]; ok {
		return "lib"
	}
	names := impls.Impls()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// speedup returns base over slot's mean when the slot was measured and
// its mean is strictly positive, and 0 otherwise. A zero or missing
// baseline mean therefore zeroes the whole row.
func speedup(base float64, impls benchtree.ImplMap, slot string) float64 {
	leaf, ok := impls[slot]
	if !ok {
		return 0
	}
	m, ok := leafMean(leaf)
	if !ok || m <= 0 {
		return 0
	}
	return base / m
}

// leafMean extracts the "mean" field of a statistics leaf. ok is false
// when the leaf is malformed or mean is absent or not a number.
func leafMean(stats json.RawMessage) (float64, bool) {
	var obj struct {
		Mean *float64 `json:"mean"`
	}
	if err := json.Unmarshal(stats, &obj); err != nil || obj.Mean == nil {
		return 0, false
	}
	return *obj.Mean, true
}
