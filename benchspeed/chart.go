// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchspeed

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"golang.org/x/benchcross/benchname"
)

// ChartOptions configures Chart.
type ChartOptions struct {
	PNG, PDF, SVG string // output directories; an empty string disables that format
	DPI           int    // raster resolution; 0 means 120

	// Logf is called once per written image. It may be nil.
	Logf func(format string, args ...interface{})
}

const (
	panelWidth  = 14 // inches
	panelHeight = 4  // inches, per backend
	defaultDPI  = 120

	// barHeight is the thickness of one bar. Groups are one unit
	// apart, so four bars and a half-bar gap fill 0.9 of a group.
	barHeight = 0.2
)

// axisFloor is the fixed lower bound of the log X axis. A speedup of 0
// draws no bar at all, so the axis never sees a non-positive value.
const axisFloor = 0.1

// slotColors is the fixed palette, one color per implementation class.
var slotColors = map[string]color.NRGBA{
	"lib":     {R: 0x10, G: 0x4E, B: 0x8B, A: 0xE6},
	"array1d": {R: 0x8A, G: 0x2B, B: 0xE2, A: 0xE6},
	"array2d": {R: 0xC8, G: 0xA2, B: 0xC8, A: 0xE6},
	"naive":   {R: 0x87, G: 0xCE, B: 0xEB, A: 0xE6},
}

// Chart renders one image per comparison, named chart_<operation> with
// the format's extension, into each directory opts enables. The image
// stacks one 14in x 4in panel per backend.
func Chart(cs []*OpComparison, opts *ChartOptions) error {
	dpi := opts.DPI
	if dpi == 0 {
		dpi = defaultDPI
	}
	for _, dir := range []string{opts.PNG, opts.PDF, opts.SVG} {
		if dir != "" {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return err
			}
		}
	}

	for _, c := range cs {
		plots := make([][]*plot.Plot, len(c.Backends))
		for i, backend := range c.Backends {
			p, err := panel(c, backend)
			if err != nil {
				return fmt.Errorf("chart %s: %v", c.Op, err)
			}
			plots[i] = []*plot.Plot{p}
		}

		width := vg.Length(panelWidth) * vg.Inch
		height := vg.Length(panelHeight*len(c.Backends)) * vg.Inch

		do := func(dir, sfx string, can vg.CanvasWriterTo) error {
			tiles := draw.Tiles{Rows: len(c.Backends), Cols: 1}
			canvases := plot.Align(plots, tiles, draw.New(can))
			for i := range plots {
				plots[i][0].Draw(canvases[i][0])
			}
			file := filepath.Join(dir, "chart_"+c.Op) + "." + sfx
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			if _, err := can.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			if opts.Logf != nil {
				opts.Logf("wrote %s", file)
			}
			return nil
		}

		if opts.PNG != "" {
			can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
				vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
			if err := do(opts.PNG, "png", can); err != nil {
				return err
			}
		}
		if opts.PDF != "" {
			if err := do(opts.PDF, "pdf", vgpdf.New(width, height)); err != nil {
				return err
			}
		}
		if opts.SVG != "" {
			if err := do(opts.SVG, "svg", vgsvg.New(width, height)); err != nil {
				return err
			}
		}
	}
	return nil
}

// panel builds the plot for one backend of one operation: a horizontal
// bar group per scale, first scale on top, on a log speedup axis.
func panel(c *OpComparison, backend string) (*plot.Plot, error) {
	pl := plot.New()

	rows := c.Rows[backend]
	if len(rows) == 0 {
		pl.Title.Text = fmt.Sprintf("Backend: %s (no comparable data)", backend)
		pl.HideAxes()
		return pl, nil
	}

	pl.Title.Text = "Backend: " + strings.ToUpper(backend)
	pl.Title.TextStyle.Font.Size = 14
	pl.X.Label.Text = "Speedup (Log Scale, higher is better)"
	pl.X.Label.TextStyle.Font.Size = 10
	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = plot.LogTicks{Prec: -1}

	pl.Add(plotter.NewGrid())

	// Bars. One plotter per slot so each gets its own color and
	// legend entry, like one barh series per implementation.
	n := len(rows)
	var ticks []plot.Tick
	var labelXYs plotter.XYs
	var labelTexts []string
	for j, slot := range benchname.Slots() {
		s := &barSlot{color: slotColors[slot]}
		for i, row := range rows {
			v := row.Speedup[slot]
			if v <= 0 {
				continue
			}
			y := float64(n-1-i) + float64(3-j)*barHeight
			s.bars = append(s.bars, bar{y: y, value: v})
			labelXYs = append(labelXYs, plotter.XY{X: v * 1.05, Y: y})
			labelTexts = append(labelTexts, fmt.Sprintf("%.1fx", v))
		}
		pl.Add(s)
		pl.Legend.Add(benchname.Display(slot), s)
	}
	for i, row := range rows {
		ticks = append(ticks, plot.Tick{
			Value: float64(n-1-i) + 1.5*barHeight,
			Label: fmt.Sprintf("Size:%s (Ref:%s)", row.Scale, benchname.Display(row.Baseline)),
		})
	}
	pl.Y.Tick.Marker = fixedTicks{ticks}
	pl.Legend.TextStyle.Font.Size = 9

	// Reference rule at no speedup at all.
	ref, err := plotter.NewLine(plotter.XYs{
		{X: 1, Y: -2 * barHeight},
		{X: 1, Y: float64(n-1) + 5*barHeight},
	})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = color.NRGBA{A: 0x80}
	ref.LineStyle.Width = vg.Points(1)
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	pl.Add(ref)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelTexts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = 9
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	pl.Add(labels)

	// Pin the axes: the log axis starts at the floor, the unit
	// ratio stays on the graph, and the groups get a margin.
	pl.X.Min = axisFloor
	if pl.X.Max < 1 {
		pl.X.Max = 1
	}
	pl.Y.Min = -2 * barHeight
	pl.Y.Max = float64(n-1) + 5*barHeight

	return pl, nil
}

// A barSlot plots one implementation class's horizontal bars across a
// panel's groups. Bars run from the axis floor to their value; a bar
// whose value is below the floor disappears, keeping the log axis
// clear of non-positive lengths.
type barSlot struct {
	color color.NRGBA
	bars  []bar
}

type bar struct {
	y     float64 // center line of the bar
	value float64 // speedup; always > 0
}

// Plot implements the plot.Plotter interface.
func (s *barSlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x0 := trX(plt.X.Min)
	for _, b := range s.bars {
		x1 := trX(b.value)
		if x1 <= x0 {
			continue
		}
		y0 := trY(b.y - barHeight/2)
		y1 := trY(b.y + barHeight/2)
		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
		}
		c.FillPolygon(s.color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements the plot.DataRanger interface.
func (s *barSlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = axisFloor, axisFloor
	ymin, ymax = 0, 0
	for _, b := range s.bars {
		if b.value > xmax {
			xmax = b.value
		}
		if b.y-barHeight/2 < ymin {
			ymin = b.y - barHeight/2
		}
		if b.y+barHeight/2 > ymax {
			ymax = b.y + barHeight/2
		}
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface, drawing the
// legend swatch.
func (s *barSlot) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}

// fixedTicks is a plot.Ticker with a precomputed tick per bar group.
type fixedTicks struct {
	ticks []plot.Tick
}

func (t fixedTicks) Ticks(min, max float64) []plot.Tick {
	return t.ticks
}
