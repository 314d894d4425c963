// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"encoding/json"

	"golang.org/x/benchcross/benchlog"
	"golang.org/x/benchcross/benchname"
)

// A Builder accumulates raw benchmark logs into a Tree, one log file
// per backend.
type Builder struct {
	tree Tree
	warn func(format string, args ...interface{})
}

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	// Warn is called for inputs that contribute nothing, such as a
	// log file with no parseable results. If nil, warnings are
	// dropped.
	Warn func(format string, args ...interface{})
}

// NewBuilder returns a Builder that accumulates into an empty tree.
func NewBuilder(opts *BuilderOptions) *Builder {
	return NewBuilderForTree(opts, Tree{})
}

// NewBuilderForTree returns a Builder that accumulates into tree,
// typically a previously written document that is being refreshed.
func NewBuilderForTree(opts *BuilderOptions, tree Tree) *Builder {
	b := &Builder{tree: tree}
	if b.tree == nil {
		b.tree = Tree{}
	}
	if opts != nil {
		b.warn = opts.Warn
	}
	if b.warn == nil {
		b.warn = func(format string, args ...interface{}) {}
	}
	return b
}

// Tree returns the accumulated tree.
func (b *Builder) Tree() Tree {
	return b.tree
}

// An update is one buffered leaf assignment parsed from a log file.
type update struct {
	key   benchname.Key
	stats json.RawMessage
}

// AddFile drains r, a reader over backend's raw log, and merges its
// results into the tree. Results apply in input order, so a label
// that repeats keeps its last statistics. Malformed fragments are
// skipped.
//
// If the file yields no results at all, the tree keeps whatever it
// already holds for backend: a run whose log came out empty must not
// wipe results captured by an earlier run.
func (b *Builder) AddFile(backend string, r *benchlog.Reader) error {
	var updates []update
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchlog.SyntaxError:
			// Malformed fragment. Skip it and keep going.
		case *benchlog.Batch:
			for _, e := range rec.Entries {
				updates = append(updates, update{benchname.Parse(e.Name), e.Stats})
			}
		}
	}
	if err := r.Err(); err != nil {
		return err
	}

	if len(updates) == 0 {
		b.warn("no valid data in %s (preserving existing data for %s)\n", r.FileName(), backend)
		return nil
	}
	for _, u := range updates {
		b.tree.Merge(u.key.Operation, u.key.Scale, backend, u.key.Impl, u.stats)
	}
	return nil
}
