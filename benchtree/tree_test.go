// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tree := Tree{}
	tree.Merge("mat_mul", "16", "js", "naive", json.RawMessage(`{"mean": 12.5}`))
	tree.Merge("mat_mul", "16", "js", "array1d", json.RawMessage(`{"mean": 2.5}`))
	tree.Merge("mat_mul", "64", "wasm", "naive", json.RawMessage(`{"mean": 800}`))
	tree.Merge("vec_dot", "1000", "js", "lib", json.RawMessage(`{"mean": 1}`))

	want := Tree{
		"mat_mul": ScaleMap{
			"16": BackendMap{
				"js": ImplMap{
					"naive":   json.RawMessage(`{"mean": 12.5}`),
					"array1d": json.RawMessage(`{"mean": 2.5}`),
				},
			},
			"64": BackendMap{
				"wasm": ImplMap{
					"naive": json.RawMessage(`{"mean": 800}`),
				},
			},
		},
		"vec_dot": ScaleMap{
			"1000": BackendMap{
				"js": ImplMap{
					"lib": json.RawMessage(`{"mean": 1}`),
				},
			},
		},
	}
	compareTrees(t, tree, want)
}

func TestMergeOverwrites(t *testing.T) {
	tree := Tree{}
	tree.Merge("mat_mul", "16", "js", "naive", json.RawMessage(`{"mean": 12.5}`))
	tree.Merge("mat_mul", "16", "js", "naive", json.RawMessage(`{"mean": 9.5}`))

	got := tree["mat_mul"]["16"]["js"]["naive"]
	if want := json.RawMessage(`{"mean": 9.5}`); !reflect.DeepEqual(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestOperations(t *testing.T) {
	tree := Tree{"vec_dot": nil, "mat_mul": nil, "each": nil}
	got := tree.Operations()
	want := []string{"each", "mat_mul", "vec_dot"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScales(t *testing.T) {
	// Numeric order, so "20" after "3". A non-numeric token orders
	// as 0 and comes first. "007" and "7" are both 7; the tie
	// breaks lexically.
	m := ScaleMap{"100": nil, "20": nil, "3": nil, "tiny": nil, "007": nil, "7": nil}
	got := m.Scales()
	want := []string{"tiny", "3", "007", "7", "20", "100"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBackends(t *testing.T) {
	// The union over scales: "native" only has scale 64, but it
	// still appears.
	m := ScaleMap{
		"16": BackendMap{"wasm": nil, "js": nil},
		"64": BackendMap{"js": nil, "native": nil},
	}
	got := m.Backends()
	want := []string{"js", "native", "wasm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestImpls(t *testing.T) {
	m := ImplMap{"naive": nil, "lib": nil, "array1d": nil}
	got := m.Impls()
	want := []string{"array1d", "lib", "naive"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
