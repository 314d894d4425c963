// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import "os"

// A Files steps through a sequence of raw log files, handing out a
// Reader positioned at the start of each. A path that cannot be opened
// is reported through Warn and skipped; a missing backend log is an
// expected condition, not a failure of the run.
//
// Results are grouped per file (the preserve-on-empty merge policy is
// a per-file decision), so Files iterates files rather than records:
//
//	for files.Scan() {
//		backend := benchname.Backend(files.Path(), prefix)
//		... drain files.Reader() ...
//	}
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Warn is called with a format string and arguments when a
	// path cannot be opened. If nil, unopenable paths are skipped
	// silently.
	Warn func(format string, args ...interface{})

	path   string
	file   *os.File
	reader Reader
	pos    int
}

// Scan closes the current file, if any, and advances to the next path
// that can be opened, reporting whether there is one. The caller
// should use Reader to read it and Path for its name.
func (f *Files) Scan() bool {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}
	for f.pos < len(f.Paths) {
		path := f.Paths[f.pos]
		f.pos++
		file, err := os.Open(path)
		if err != nil {
			if f.Warn != nil {
				f.Warn("skipping %s: %v\n", path, err)
			}
			continue
		}
		f.path = path
		f.file = file
		f.reader.Reset(file, path)
		return true
	}
	return false
}

// Reader returns a Reader for the file Scan advanced to.
func (f *Files) Reader() *Reader {
	return &f.reader
}

// Path returns the path of the file Scan advanced to.
func (f *Files) Path() string {
	return f.path
}
