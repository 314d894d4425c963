// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadFile reads the normalized document at path. A missing file is
// reported as an error satisfying errors.Is(err, fs.ErrNotExist), so
// callers can distinguish "no document yet" from a malformed one.
func ReadFile(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if t == nil {
		t = Tree{}
	}
	return t, nil
}

// Write writes the document for t to w as tab-indented JSON. Map keys
// marshal in sorted order, so the output is deterministic. HTML
// escaping is off, so non-ASCII text and characters like '<' in labels
// or statistics pass through unchanged.
func Write(w io.Writer, t Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc.Encode(t)
}

// WriteFile writes the document for t to path, creating or truncating
// it. An empty tree still writes a document.
func WriteFile(path string, t Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(f, t)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
