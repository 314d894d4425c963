// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtree defines the normalized benchmark document: a tree
// keyed by operation, scale, backend, and implementation class, with a
// raw statistics object at each leaf.
//
// The tree marshals directly to the on-disk JSON document:
//
//	{
//		"mat_mul": {
//			"16": {
//				"js": {
//					"array1d": {"mean": 2.5},
//					"naive": {"mean": 12.5}
//				}
//			}
//		}
//	}
//
// Statistics leaves are raw JSON so fields beyond "mean" survive a
// normalize/report cycle untouched.
package benchtree

import (
	"encoding/json"
	"sort"
	"strconv"
)

// An ImplMap maps an implementation class to its statistics object.
type ImplMap map[string]json.RawMessage

// A BackendMap maps a backend name to its implementations.
type BackendMap map[string]ImplMap

// A ScaleMap maps a scale token to per-backend results.
type ScaleMap map[string]BackendMap

// A Tree maps an operation to its results. It is the root of the
// normalized document.
type Tree map[string]ScaleMap

// Merge records stats under op/scale/backend/impl, creating
// intermediate maps as needed. An existing leaf is overwritten.
func (t Tree) Merge(op, scale, backend, impl string, stats json.RawMessage) {
	scales := t[op]
	if scales == nil {
		scales = ScaleMap{}
		t[op] = scales
	}
	backends := scales[scale]
	if backends == nil {
		backends = BackendMap{}
		scales[scale] = backends
	}
	impls := backends[backend]
	if impls == nil {
		impls = ImplMap{}
		backends[backend] = impls
	}
	impls[impl] = stats
}

// Operations returns the operations in t, sorted.
func (t Tree) Operations() []string {
	ops := make([]string, 0, len(t))
	for op := range t {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Scales returns the scale tokens in m in numeric order. Tokens that
// are not all digits order as 0 and so come first; ties break
// lexically.
func (m ScaleMap) Scales() []string {
	scales := make([]string, 0, len(m))
	for s := range m {
		scales = append(scales, s)
	}
	sort.Slice(scales, func(i, j int) bool {
		a, b := scaleValue(scales[i]), scaleValue(scales[j])
		if a != b {
			return a < b
		}
		return scales[i] < scales[j]
	})
	return scales
}

// Backends returns the union of backend names across all scales in m,
// sorted. A backend missing at some scales still appears.
func (m ScaleMap) Backends() []string {
	set := make(map[string]struct{})
	for _, backends := range m {
		for b := range backends {
			set[b] = struct{}{}
		}
	}
	return sortStringSet(set)
}

// Impls returns the implementation classes in m, sorted.
func (m ImplMap) Impls() []string {
	impls := make([]string, 0, len(m))
	for impl := range m {
		impls = append(impls, impl)
	}
	sort.Strings(impls)
	return impls
}

func sortStringSet(m map[string]struct{}) []string {
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// scaleValue parses a scale token as a non-negative integer. A token
// with any non-digit counts as 0.
func scaleValue(s string) int {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
