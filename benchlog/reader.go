// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlog reads raw benchmark result logs.
//
// A raw log is a text file, one per backend, whose relevant lines are
// JSON fragments of the form
//
//	{"<key>": [ {"<label>": {"mean": 12.3, ...}}, ... ]}
//
// mixed freely with other output (build chatter, progress lines, and
// so on). The top-level key is uninterpreted. Each element of the list
// pairs a raw benchmark label with an opaque statistics object.
//
// The Reader API is modeled on bufio.Scanner: Scan advances to the
// next record and Result returns it. Lines that do not begin with "{"
// are skipped without comment. Lines that look like fragments but do
// not parse are returned as *SyntaxError records, which are data, not
// terminal errors; callers typically warn and continue.
package benchlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// A Reader reads batches of benchmark results from a raw log.
//
// To construct a new Reader, either call NewReader, or call Reset on a
// zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	err      error // current I/O error
	rec      Record
}

// maxLineLen is the longest input line Scan accepts. A line carries a
// whole batch of results, so the default bufio.Scanner limit is too
// small.
const maxLineLen = 1 << 20

// NewReader constructs a reader to parse the raw benchmark log from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineLen)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.rec = noResult
}

// Scan advances the reader to the next record and reports whether one
// was read. The caller should use the Result method to get the record.
// If Scan reaches EOF or an I/O error occurs, it returns false, in
// which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 || line[0] != '{' {
			// Interleaved non-result output. Skip it silently.
			continue
		}
		key, entries, err := parseBatch(line)
		if err != nil {
			r.rec = &SyntaxError{r.fileName, r.line, err.Error()}
			return true
		}
		r.rec = &Batch{Key: key, Entries: entries, fileName: r.fileName, line: r.line}
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Result returns the record that was just read by Scan. This is either
// a *Batch or a *SyntaxError indicating a malformed fragment.
//
// Syntax errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// FileName returns the file name this reader was constructed with or
// last Reset to.
func (r *Reader) FileName() string {
	return r.fileName
}

// parseBatch parses one log line that begins with "{". The line must
// be a single well-formed JSON object whose first key names a list of
// entry objects. Keys after the first are tolerated and ignored.
func parseBatch(data []byte) (key string, entries []Entry, err error) {
	// Reject trailing garbage and half-written lines up front;
	// the token loop below may stop before the line's end.
	if !json.Valid(data) {
		return "", nil, errors.New("invalid JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return "", nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", nil, errors.New("not a JSON object")
	}

	tok, err = dec.Token()
	if err != nil {
		return "", nil, err
	}
	key, ok := tok.(string)
	if !ok {
		// Must be '}': an object's first token after '{' is
		// either a key or the closing delimiter.
		return "", nil, errors.New("empty object")
	}

	tok, err = dec.Token()
	if err != nil {
		return "", nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return "", nil, fmt.Errorf("key %q does not name a list", key)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return "", nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return "", nil, fmt.Errorf("list under %q holds a non-object entry", key)
		}
		for dec.More() {
			tok, err = dec.Token()
			if err != nil {
				return "", nil, err
			}
			name := tok.(string) // inside an object this is always a key
			var stats json.RawMessage
			if err := dec.Decode(&stats); err != nil {
				return "", nil, err
			}
			entries = append(entries, Entry{Name: name, Stats: stats})
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return "", nil, err
		}
	}

	return key, entries, nil
}
