package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	maxXTicks = 10
	maxYTicks = 8
	tickLen   = 4
)

// Label positions as fractions of the plot area: x label right of the plot at
// mid height, y label above the plot at mid width.
var (
	xLabelAt = [2]float64{1.05, 0.5}
	yLabelAt = [2]float64{0.5, 1.05}
)

// project maps v in [min,max] onto [0,span] pixels with the rounding go-chart uses for series.
func project(v, min, max float64, span int) int {
	if max <= min {
		return 0
	}
	return int(math.Ceil((v - min) / (max - min) * float64(span)))
}

// dataBounds returns min/max over all finite values; ok is false when there are none.
func dataBounds(sets ...[]float64) (float64, float64, bool) {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, s := range sets {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max, min <= max
}

// axisRange pads the data span by 5%, always including zero so the axes can
// cross at the origin, and snaps both ends outward onto the tick grid for n ticks.
func axisRange(min, max float64, n int) *chart.ContinuousRange {
	min, max = math.Min(min, 0), math.Max(max, 0)
	if max <= min {
		max = min + 1
	}
	pad := (max - min) * 0.05
	min, max = min-pad, max+pad
	step := niceStep(min, max, n)
	return &chart.ContinuousRange{Min: math.Floor(min/step) * step, Max: math.Ceil(max/step) * step}
}

// niceStep is the smallest 1/2/2.5/5·10^k step that puts at most n grid
// points inside [min,max]; the coarsest candidate wins when none fits.
func niceStep(min, max float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	var step float64
	for _, c := range []float64{1, 2, 2.5, 5, 10, 20} {
		step = c * mag
		if math.Floor(max/step)-math.Ceil(min/step)+1 <= float64(n) {
			break
		}
	}
	return step
}

// niceTicks returns at most n ticks on the niceStep grid inside [min,max].
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	step := niceStep(min, max, n)
	var ticks []chart.Tick
	for k := math.Ceil(min / step); k <= math.Floor(max/step); k++ {
		v := k * step
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) == n {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e5 || av < 1e-3:
		return fmt.Sprintf("%.1e", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}

// originAxes draws both axes through (0,0) with ticks and offset labels in place of go-chart's frame axes.
func originAxes(xr, yr *chart.ContinuousRange, xLabel, yLabel string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		ox := cb.Left + project(0, xr.Min, xr.Max, cb.Width())
		oy := cb.Bottom - project(0, yr.Min, yr.Max, cb.Height())

		r.SetStrokeColor(axisColor)
		r.SetStrokeWidth(1)
		r.MoveTo(cb.Left, oy)
		r.LineTo(cb.Right, oy)
		r.Stroke()
		r.MoveTo(ox, cb.Top)
		r.LineTo(ox, cb.Bottom)
		r.Stroke()

		r.SetFont(defaults.GetFont())
		r.SetFontColor(axisColor)
		r.SetFontSize(9)
		for _, tk := range niceTicks(xr.Min, xr.Max, maxXTicks) {
			px := cb.Left + project(tk.Value, xr.Min, xr.Max, cb.Width())
			r.MoveTo(px, oy)
			r.LineTo(px, oy+tickLen)
			r.Stroke()
			tb := r.MeasureText(tk.Label)
			r.Text(tk.Label, px-tb.Width()/2, oy+tickLen+tb.Height()+2)
		}
		for _, tk := range niceTicks(yr.Min, yr.Max, maxYTicks) {
			if tk.Value == 0 {
				continue // the x axis already labels the origin
			}
			py := cb.Bottom - project(tk.Value, yr.Min, yr.Max, cb.Height())
			r.MoveTo(ox-tickLen, py)
			r.LineTo(ox, py)
			r.Stroke()
			tb := r.MeasureText(tk.Label)
			r.Text(tk.Label, ox-tickLen-tb.Width()-3, py+tb.Height()/2)
		}

		r.SetFontSize(11)
		if xLabel != "" {
			tb := r.MeasureText(xLabel)
			px := cb.Left + int(xLabelAt[0]*float64(cb.Width()))
			py := cb.Bottom - int(xLabelAt[1]*float64(cb.Height()))
			r.Text(xLabel, px-tb.Width()/2, py+tb.Height()/2)
		}
		if yLabel != "" {
			tb := r.MeasureText(yLabel)
			px := cb.Left + int(yLabelAt[0]*float64(cb.Width()))
			py := cb.Bottom - int(yLabelAt[1]*float64(cb.Height()))
			r.Text(yLabel, px-tb.Width()/2, py+tb.Height()/2)
		}
	}
}
