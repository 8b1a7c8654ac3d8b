// Package render draws an analyzed sweep: the raw I-V curve with circle
// markers, the head and tail trend lines, a legend, and axes crossing at the
// origin.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/LangmuirSweep/src/analysis"
)

// Default size matches a 10x6 figure.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

var ErrNoData = errors.New("nothing to plot")

var (
	rawColor  = chart.ColorBlue
	headColor = chart.ColorOrange
	tailColor = chart.ColorGreen
	axisColor = drawing.Color{R: 40, G: 40, B: 40, A: 255}
)

// padding leaves room for the offset axis labels right of and above the plot.
var padding = chart.Box{Top: 48, Left: 24, Right: 72, Bottom: 24}

// Options for Chart. Zero values fall back to the defaults.
type Options struct {
	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
	// Hint, when set, is drawn as a caption under the plot area.
	Hint string
	// HintColor is the caption ink; nil uses the axis colour.
	HintColor color.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.XLabel == "" {
		o.XLabel = "U"
	}
	if o.YLabel == "" {
		o.YLabel = "Current"
	}
	if o.HintColor == nil {
		o.HintColor = axisColor
	}
	return o
}

// markerLineStyle is a connected line with circular markers.
func markerLineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
		DotWidth:    3,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
	}
}

// Frame is the plot area in image pixels and the data window it shows.
type Frame struct {
	Left, Top, Right, Bottom int
	XMin, XMax, YMin, YMax   float64
}

// DataAt maps an image pixel back to data coordinates; ok is false outside the plot area.
func (f Frame) DataAt(px, py float64) (x, y float64, ok bool) {
	w, h := float64(f.Right-f.Left), float64(f.Bottom-f.Top)
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	x = f.XMin + (px-float64(f.Left))/w*(f.XMax-f.XMin)
	y = f.YMin + (float64(f.Bottom)-py)/h*(f.YMax-f.YMin)
	ok = px >= float64(f.Left) && px <= float64(f.Right) && py >= float64(f.Top) && py <= float64(f.Bottom)
	return x, y, ok
}

// Figure is a rendered chart together with its plot geometry.
type Figure struct {
	Image image.Image
	Frame Frame
}

// Chart renders res into a Figure.
func Chart(res *analysis.Result, opts Options) (*Figure, error) {
	opts = opts.withDefaults()
	if res == nil || len(res.X) < 2 {
		return nil, ErrNoData
	}
	xMin, xMax, okX := dataBounds(res.X)
	yMin, yMax, okY := dataBounds(res.Y, res.HeadSeries, res.TailSeries)
	if !okX || !okY {
		return nil, ErrNoData
	}
	xr := axisRange(xMin, xMax, maxXTicks)
	yr := axisRange(yMin, yMax, maxYTicks)

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: padding},
		XAxis:      chart.XAxis{Style: chart.Style{Hidden: true}, Range: xr},
		YAxis:      chart.YAxis{Style: chart.Style{Hidden: true}, Range: yr},
		YAxisSecondary: chart.YAxis{
			Style: chart.Style{Hidden: true},
		},
	}
	ch.Series = append(ch.Series, seriesRuns(res.Options.YColumn, res.X, res.Y, markerLineStyle(rawColor))...)
	ch.Series = append(ch.Series, seriesRuns("Linear Fit Head", res.X, res.HeadSeries, lineStyle(headColor))...)
	ch.Series = append(ch.Series, seriesRuns("Linear Fit Tail", res.X, res.TailSeries, lineStyle(tailColor))...)
	ch.Elements = []chart.Renderable{originAxes(xr, yr, opts.XLabel, opts.YLabel), chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	frame := Frame{
		Left:   padding.Left,
		Top:    padding.Top,
		Right:  opts.Width - padding.Right,
		Bottom: opts.Height - padding.Bottom,
		XMin:   xr.Min,
		XMax:   xr.Max,
		YMin:   yr.Min,
		YMax:   yr.Max,
	}
	if opts.Hint != "" {
		img = drawHint(img, opts.Hint, frame, opts.HintColor)
	}
	return &Figure{Image: img, Frame: frame}, nil
}

// seriesRuns splits (xs, ys) at non-finite pairs into one series per finite
// run, leaving a gap in the curve. Only the first run carries the name; the
// legend skips unnamed series.
func seriesRuns(name string, xs, ys []float64, style chart.Style) []chart.Series {
	var out []chart.Series
	for _, r := range finiteRuns(xs, ys) {
		s := chart.ContinuousSeries{XValues: xs[r[0]:r[1]], YValues: ys[r[0]:r[1]], Style: style}
		if len(out) == 0 {
			s.Name = name
		}
		out = append(out, s)
	}
	return out
}

// finiteRuns returns [from, to) index ranges where both xs[i] and ys[i] are finite.
func finiteRuns(xs, ys []float64) [][2]int {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	var runs [][2]int
	start := -1
	for i := 0; i < n; i++ {
		ok := !math.IsNaN(xs[i]) && !math.IsInf(xs[i], 0) && !math.IsNaN(ys[i]) && !math.IsInf(ys[i], 0)
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, n})
	}
	return runs
}

// Hint formats the caption shown under the chart.
func Hint(res *analysis.Result) string {
	return fmt.Sprintf("window=%d  head: %s  tail: %s", res.Options.Window, res.Head, res.Tail)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	return f.Close()
}
