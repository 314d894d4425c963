// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchclean normalizes raw benchmark logs into a single JSON
// document.
//
// Each input file holds one backend's raw log: build and progress
// chatter interleaved with JSON result fragments, one per line. The
// backend id comes from the file name, so bench_js.txt carries the
// "js" backend. With no arguments benchclean reads the conventional
// set of logs from the current directory.
//
// Results merge into the output document, which nests operation,
// scale, backend, and implementation. An existing document is
// refreshed in place: a label measured again replaces its statistics,
// everything else is kept, and an input file with no parseable
// results leaves its backend's data untouched.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/benchcross/benchlog"
	"golang.org/x/benchcross/benchname"
	"golang.org/x/benchcross/benchtree"
)

// defaultPaths is the conventional set of backend logs produced by a
// full benchmark run.
var defaultPaths = []string{
	"bench_js.txt",
	"bench_native.txt",
	"bench_wasm-gc.txt",
	"bench_wasm.txt",
}

func main() {
	var output = "cleaned_benchmarks.json"
	var prefix = "bench_"

	flag.StringVar(&output, "o", output, "Write the normalized document to `file`")
	flag.StringVar(&prefix, "prefix", prefix, "Strip `prefix` from file names when deriving backend ids")

	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = defaultPaths
	}

	// Refresh the existing document if there is one. A document
	// that exists but cannot be decoded is set aside rather than
	// merged into.
	tree, err := benchtree.ReadFile(output)
	if err == nil {
		fmt.Fprintf(os.Stderr, "loaded existing data from %s\n", output)
	} else if !errors.Is(err, fs.ErrNotExist) {
		warn("cannot read existing data (starting fresh): %v\n", err)
	}

	builder := benchtree.NewBuilderForTree(&benchtree.BuilderOptions{Warn: warn}, tree)

	files := benchlog.Files{Paths: paths, Warn: warn}
	for files.Scan() {
		fmt.Fprintf(os.Stderr, "updating from %s\n", files.Path())
		backend := benchname.Backend(files.Path(), prefix)
		if err := builder.AddFile(backend, files.Reader()); err != nil {
			fail("%v\n", err)
		}
	}

	if err := benchtree.WriteFile(output, builder.Tree()); err != nil {
		fail("%v\n", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", output)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
