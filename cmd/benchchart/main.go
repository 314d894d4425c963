// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart renders speedup charts from a normalized benchmark
// document.
//
// Usage:
//
//	benchchart [options]
//
// Benchchart reads the JSON document written by benchclean (flag -i)
// and draws one chart image per operation. Each chart stacks one
// panel per backend; within a panel, horizontal bars show every
// implementation's speedup over that row's baseline implementation,
// grouped by problem size on a log axis. A missing input document is
// an error: run benchclean first.
//
// PNG output into the current directory is on by default. -pdf and
// -svg enable further formats, -png '' turns the raster output off,
// and -csv and -html export the underlying speedup table and an index
// page tying charts and tables together:
//
//	benchclean
//	benchchart -png charts -html charts/index.html
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/benchcross/benchspeed"
	"golang.org/x/benchcross/benchtree"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchchart [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagInput = flag.String("i", "cleaned_benchmarks.json", "read the normalized document from `file`")
	flagPNG   = flag.String("png", ".", "write PNG charts into `dir`; empty disables them")
	flagPDF   = flag.String("pdf", "", "write PDF charts into `dir`")
	flagSVG   = flag.String("svg", "", "write SVG charts into `dir`")
	flagDPI   = flag.Int("dpi", 120, "raster chart resolution in dots per `inch`")
	flagCSV   = flag.String("csv", "", "write the speedup table in CSV form to `file`")
	flagHTML  = flag.String("html", "", "write an HTML index of charts and tables to `file`")
)

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}

	tree, err := benchtree.ReadFile(*flagInput)
	if err != nil {
		log.Fatal(err)
	}
	comparisons := benchspeed.Build(tree)

	if err := benchspeed.Chart(comparisons, &benchspeed.ChartOptions{
		PNG:  *flagPNG,
		PDF:  *flagPDF,
		SVG:  *flagSVG,
		DPI:  *flagDPI,
		Logf: log.Printf,
	}); err != nil {
		log.Fatal(err)
	}

	if *flagCSV != "" {
		if err := writeCSV(*flagCSV, comparisons); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *flagCSV)
	}
	if *flagHTML != "" {
		var buf bytes.Buffer
		buf.WriteString(htmlHeader)
		FormatHTML(&buf, comparisons)
		buf.WriteString(htmlFooter)
		if err := os.WriteFile(*flagHTML, buf.Bytes(), 0666); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *flagHTML)
	}
}

func writeCSV(path string, comparisons []*benchspeed.OpComparison) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = benchspeed.WriteCSV(f, comparisons)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Speedup Report</title>
<style>
.benchchart { border-collapse: collapse; }
.benchchart th, .benchchart td { padding: 0.2em 1em; }
.benchchart th { text-align: left; border-bottom: 1px solid #666; }
.benchchart td:nth-child(1n+4) { text-align: right; }
</style>
</head>
<body>
<h1>Benchmark Speedup Report</h1>
`

var htmlFooter = `</body>
</html>
`
