// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"encoding/json"
	"fmt"
)

// A Record is a single record read from a raw benchmark log. It may be
// a *Batch or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not
	// read from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Batch)(nil)
var _ Record = (*SyntaxError)(nil)

// An Entry is one measurement from a batch: a raw benchmark label
// paired with its statistics object. The statistics are opaque to this
// package and pass through as raw JSON.
type Entry struct {
	Name  string
	Stats json.RawMessage
}

// A Batch is one successfully parsed log line: the line's first
// top-level key and the list of entries it names, in document order.
// An entry object carrying several labels yields one Entry per label.
type Batch struct {
	Key     string
	Entries []Entry

	fileName string
	line     int
}

// Pos returns the file name and line number of the log line this batch
// was parsed from.
func (b *Batch) Pos() (fileName string, line int) {
	return b.fileName, b.line
}

// A SyntaxError represents a malformed result fragment on a particular
// line of a raw benchmark log.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called"}
