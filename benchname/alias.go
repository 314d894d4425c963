// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchname

import "strings"

// aliases maps stripped operation names to their canonical spelling.
// The table collapses the long forms and the bare abbreviations used by
// the various suites onto one name per operation. It is data: new
// spellings get new entries, not new code.
var aliases = map[string]string{
	// Long forms.
	"matrix_mul":         "mat_mul",
	"matrix_vector_mul":  "mat_vec_mul",
	"vector_dot":         "vec_dot",
	"matrix_acc":         "mat_acc",
	"matrix_access":      "mat_acc",
	"matrix_set_acc":     "mat_set_acc",
	"matrix_det":         "mat_det",
	"matrix_determinant": "mat_det",
	"matrix_inv":         "mat_inv",
	"matrix_inverse":     "mat_inv",
	"matrix_rank":        "mat_rank",
	"matrix_mapi":        "mat_mapi",
	"matrix_map_inplace": "mat_map_inplace",

	// Bare names.
	"mul":         "mat_mul",
	"vec_mul":     "mat_vec_mul",
	"dot":         "vec_dot",
	"acc":         "mat_acc",
	"access":      "mat_acc",
	"set_acc":     "mat_set_acc",
	"mapi":        "mat_mapi",
	"map_inplace": "mat_map_inplace",
	"det":         "mat_det",
	"determinant": "mat_det",
	"rank":        "mat_rank",
	"inv":         "mat_inv",
	"inverse":     "mat_inv",
}

// Canonical maps a stripped operation name to its canonical spelling.
// Names the alias table misses fall back to general rewrites: a few
// bare matrix operations gain a "mat_" prefix, and the verbose
// "matrix_"/"vector_" spellings shorten to "mat_"/"vec_". Canonical
// names map to themselves.
func Canonical(op string) string {
	if a, ok := aliases[op]; ok {
		return a
	}
	switch op {
	case "each", "each_row_col", "power":
		return "mat_" + op
	}
	switch {
	case strings.HasPrefix(op, "matrix_"):
		return strings.ReplaceAll(op, "matrix_", "mat_")
	case strings.HasPrefix(op, "vector_"):
		return strings.ReplaceAll(op, "vector_", "vec_")
	}
	return op
}

// implDisplay gives the chart-facing name of each implementation class
// the reporter tracks.
var implDisplay = map[string]string{
	"lib":     "Library Impl",
	"array1d": "Optimized 1D Array Impl",
	"array2d": "Optimized 2D Array Impl",
	"naive":   "Naive Impl",
}

// Slots returns the implementation classes the reporter charts, in
// display order (top bar to bottom bar within a group).
func Slots() []string {
	return []string{"lib", "array1d", "array2d", "naive"}
}

// Display returns the human-readable name of an implementation class.
// Classes without a display name, such as "other", display as
// themselves.
func Display(impl string) string {
	if d, ok := implDisplay[impl]; ok {
		return d
	}
	return impl
}
