// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname canonicalizes raw benchmark labels.
//
// The benchmark suites this module consumes encode three facts in one
// free-text label: the operation under test, the problem size, and the
// implementation strategy, e.g.
//
//	naive_matrix_mul scale(128)
//
// Different suites spell these inconsistently: implementation prefixes
// compose and vary ("naive_", "array1d_", "native_", "2d_"), operation
// names appear in long and short forms ("matrix_determinant", "det"),
// and the scale annotation may be absent. Parse reduces a label to a
// canonical Key so that results from every suite land on the same
// (operation, scale, implementation) coordinates.
package benchname

import (
	"path/filepath"
	"regexp"
	"strings"
)

// A Key is the canonical identity of one benchmark measurement within
// a single backend.
type Key struct {
	Operation string // canonical operation name, e.g. "mat_mul"
	Scale     string // problem size digits, or "unknown"
	Impl      string // implementation class: "naive", "array1d", "array2d", "lib", or "other"
}

var scaleRE = regexp.MustCompile(`scale\((\d+)\)`)

// implPrefixes classifies the leading prefix of a label's name token.
// Checks are ordered; the first match wins.
var implPrefixes = []struct {
	prefix string
	class  string
}{
	{"naive_", "naive"},
	{"array1d_", "array1d"},
	{"native_", "array1d"},
	{"array2d_", "array2d"},
	{"2d_", "array2d"},
	{"_2d_", "array2d"},
	{"lib_", "lib"},
}

// stripPrefixes is the set of implementation-indicating prefixes
// removed when recovering the operation name. Ordered longest first so
// that one pass always removes the longest match; the list is rescanned
// until no prefix applies, since prefixes compose ("naive_array2d_mul").
var stripPrefixes = []string{
	"array_1d_",
	"array_2d_",
	"array1d_",
	"array2d_",
	"native_",
	"naive_",
	"lib_",
	"_2d_",
	"2d_",
}

// Parse extracts the canonical key from a raw benchmark label.
//
// The scale is the digits of the first "scale(N)" substring anywhere in
// the label, or "unknown" if there is none. The implementation class
// and the operation are derived from the label's name token (the text
// before the first space): the class from the token's leading prefix,
// and the operation by stripping every implementation prefix and then
// canonicalizing the remainder (see Canonical).
func Parse(label string) Key {
	scale := "unknown"
	if m := scaleRE.FindStringSubmatch(label); m != nil {
		scale = m[1]
	}

	name, _, _ := strings.Cut(label, " ")

	impl := "other"
	for _, ip := range implPrefixes {
		if strings.HasPrefix(name, ip.prefix) {
			impl = ip.class
			break
		}
	}

	return Key{
		Operation: Canonical(stripImplPrefixes(name)),
		Scale:     scale,
		Impl:      impl,
	}
}

// stripImplPrefixes removes implementation-indicating prefixes from
// name until none remains. Stripping an already-stripped name is a
// no-op, so the operation names it produces are fixed points.
func stripImplPrefixes(name string) string {
	for {
		stripped := false
		for _, p := range stripPrefixes {
			if strings.HasPrefix(name, p) {
				name = name[len(p):]
				stripped = true
				break
			}
		}
		if !stripped {
			return name
		}
	}
}

// Backend derives a backend identifier from a source file name by
// dropping the directory, the extension, and the given fixed prefix:
// with prefix "bench_", "logs/bench_wasm-gc.txt" becomes "wasm-gc".
func Backend(path, prefix string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, prefix)
}
