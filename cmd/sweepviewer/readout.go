package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/iafilius/LangmuirSweep/src/analysis"
	"github.com/iafilius/LangmuirSweep/src/render"
)

// containRect returns where an imgW x imgH image lands inside a viewW x viewH
// view when scaled to fit with preserved aspect (canvas.ImageFillContain).
func containRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	scale = viewW / imgW
	if s := viewH / imgH; s < scale {
		scale = s
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// viewToImage converts a mouse position in the view into image pixel coordinates.
func viewToImage(vx, vy, imgW, imgH, viewW, viewH float32) (float64, float64, bool) {
	dx, dy, dw, dh, scale := containRect(imgW, imgH, viewW, viewH)
	if scale == 0 || vx < dx || vy < dy || vx > dx+dw || vy > dy+dh {
		return 0, 0, false
	}
	return float64((vx - dx) / scale), float64((vy - dy) / scale), true
}

// nearestSample returns the index of the sample whose x is closest to x, -1 for no samples.
func nearestSample(xs []float64, x float64) int {
	best := -1
	bestD := math.MaxFloat64
	for i, v := range xs {
		if d := math.Abs(v - x); d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// readoutText describes the sample nearest to the pointer and both fits at that U.
func readoutText(res *analysis.Result, fig *render.Figure, px, py float64) (string, bool) {
	x, _, ok := fig.Frame.DataAt(px, py)
	if !ok {
		return "", false
	}
	i := nearestSample(res.X, x)
	if i < 0 {
		return "", false
	}
	return fmt.Sprintf("#%d  %s=%g  %s=%g  head=%g  tail=%g",
		i, res.Options.XColumn, res.X[i], res.Options.YColumn, res.Y[i], res.HeadSeries[i], res.TailSeries[i]), true
}

// defaultPNGName derives the export file name from the input file.
func defaultPNGName(input string) string {
	base := filepath.Base(input)
	if base == "." || base == string(filepath.Separator) {
		return "sweep.png"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}
