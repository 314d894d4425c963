// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchspeed

import (
	"bytes"
	"testing"

	"golang.org/x/benchcross/benchtree"
	"golang.org/x/benchcross/internal/diff"
)

func TestWriteCSV(t *testing.T) {
	tree := benchtree.Tree{}
	tree.Merge("mat_mul", "16", "js", "naive", leaf(12.5))
	tree.Merge("mat_mul", "16", "js", "array1d", leaf(2.5))
	tree.Merge("mat_mul", "64", "js", "naive", leaf(800))
	tree.Merge("mat_mul", "64", "js", "array1d", leaf(40))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, Build(tree)); err != nil {
		t.Fatal("writing CSV: ", err)
	}

	want := `operation,backend,scale,baseline,implementation,speedup
mat_mul,js,16,naive,lib,
mat_mul,js,16,naive,array1d,5.000000
mat_mul,js,16,naive,array2d,
mat_mul,js,16,naive,naive,1.000000
mat_mul,js,64,naive,lib,
mat_mul,js,64,naive,array1d,20.000000
mat_mul,js,64,naive,array2d,
mat_mul,js,64,naive,naive,1.000000
mat_mul,js,geomean,,lib,
mat_mul,js,geomean,,array1d,10.000000
mat_mul,js,geomean,,array2d,
mat_mul,js,geomean,,naive,1.000000
`
	if got := buf.String(); got != want {
		t.Errorf("CSV differs (diff of want, got):\n%s", diff.Diff(want, got))
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "operation,backend,scale,baseline,implementation,speedup\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
