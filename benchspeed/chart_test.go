// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchspeed

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/benchcross/benchtree"
)

func TestChart(t *testing.T) {
	tree := benchtree.Tree{}
	tree.Merge("mat_mul", "16", "js", "naive", leaf(12.5))
	tree.Merge("mat_mul", "16", "js", "array1d", leaf(2.5))
	tree.Merge("mat_mul", "64", "wasm", "naive", leaf(800))
	tree.Merge("vec_dot", "1000", "js", "lib", leaf(0.07))
	cs := Build(tree)

	dir := t.TempDir()
	var logged []string
	opts := &ChartOptions{
		PNG: filepath.Join(dir, "png"),
		PDF: filepath.Join(dir, "pdf"),
		SVG: filepath.Join(dir, "svg"),
		Logf: func(format string, args ...interface{}) {
			logged = append(logged, fmt.Sprintf(format, args...))
		},
	}
	if err := Chart(cs, opts); err != nil {
		t.Fatal("rendering charts: ", err)
	}

	want := []string{
		filepath.Join(dir, "png", "chart_mat_mul.png"),
		filepath.Join(dir, "pdf", "chart_mat_mul.pdf"),
		filepath.Join(dir, "svg", "chart_mat_mul.svg"),
		filepath.Join(dir, "png", "chart_vec_dot.png"),
		filepath.Join(dir, "pdf", "chart_vec_dot.pdf"),
		filepath.Join(dir, "svg", "chart_vec_dot.svg"),
	}
	for _, file := range want {
		fi, err := os.Stat(file)
		if err != nil {
			t.Errorf("missing chart image: %v", err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", file)
		}
	}
	if len(logged) != len(want) {
		t.Errorf("logged %d image writes %q, want %d", len(logged), logged, len(want))
	}
}

func TestChartPNGOnly(t *testing.T) {
	tree := benchtree.Tree{}
	tree.Merge("each", "100", "native", "naive", leaf(3))
	cs := Build(tree)

	dir := t.TempDir()
	if err := Chart(cs, &ChartOptions{PNG: dir}); err != nil {
		t.Fatal("rendering charts: ", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chart_each.png")); err != nil {
		t.Errorf("missing chart image: %v", err)
	}
	if files, _ := filepath.Glob(filepath.Join(dir, "*.pdf")); len(files) != 0 {
		t.Errorf("unexpected pdf output: %v", files)
	}
}
