// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchname

import "testing"

func TestCanonical(t *testing.T) {
	test := func(op, want string) {
		t.Helper()
		if got := Canonical(op); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", op, got, want)
		}
	}

	// Long forms.
	test("matrix_mul", "mat_mul")
	test("matrix_vector_mul", "mat_vec_mul")
	test("vector_dot", "vec_dot")
	test("matrix_acc", "mat_acc")
	test("matrix_access", "mat_acc")
	test("matrix_set_acc", "mat_set_acc")
	test("matrix_det", "mat_det")
	test("matrix_determinant", "mat_det")
	test("matrix_inv", "mat_inv")
	test("matrix_inverse", "mat_inv")
	test("matrix_rank", "mat_rank")
	test("matrix_mapi", "mat_mapi")
	test("matrix_map_inplace", "mat_map_inplace")

	// Bare names.
	test("mul", "mat_mul")
	test("vec_mul", "mat_vec_mul")
	test("dot", "vec_dot")
	test("acc", "mat_acc")
	test("access", "mat_acc")
	test("set_acc", "mat_set_acc")
	test("mapi", "mat_mapi")
	test("map_inplace", "mat_map_inplace")
	test("det", "mat_det")
	test("determinant", "mat_det")
	test("rank", "mat_rank")
	test("inv", "mat_inv")
	test("inverse", "mat_inv")

	// Fallback fixups, applied only when the table misses.
	test("each", "mat_each")
	test("each_row_col", "mat_each_row_col")
	test("power", "mat_power")
	test("matrix_transpose", "mat_transpose")
	test("vector_norm", "vec_norm")

	// Canonical names are fixed points.
	test("mat_mul", "mat_mul")
	test("vec_dot", "vec_dot")
	test("mat_each_row_col", "mat_each_row_col")

	// Unknown names pass through.
	test("fft", "fft")
	test("", "")
}

func TestDisplay(t *testing.T) {
	test := func(impl, want string) {
		t.Helper()
		if got := Display(impl); got != want {
			t.Errorf("Display(%q) = %q, want %q", impl, got, want)
		}
	}

	test("lib", "Library Impl")
	test("array1d", "Optimized 1D Array Impl")
	test("array2d", "Optimized 2D Array Impl")
	test("naive", "Naive Impl")
	test("other", "other")
	test("simd", "simd")
}

func TestSlots(t *testing.T) {
	want := []string{"lib", "array1d", "array2d", "naive"}
	got := Slots()
	if len(got) != len(want) {
		t.Fatalf("Slots() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slots() = %v, want %v", got, want)
		}
	}
}
