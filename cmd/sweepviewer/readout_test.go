package main

import (
	"strings"
	"testing"

	"github.com/iafilius/LangmuirSweep/src/analysis"
	"github.com/iafilius/LangmuirSweep/src/render"
)

func TestContainRect(t *testing.T) {
	dx, dy, dw, dh, s := containRect(1000, 600, 500, 500)
	if s != 0.5 || dx != 0 || dy != 100 || dw != 500 || dh != 300 {
		t.Fatalf("got x=%v y=%v w=%v h=%v scale=%v", dx, dy, dw, dh, s)
	}
	if _, _, _, _, s := containRect(0, 600, 500, 500); s != 0 {
		t.Fatalf("zero image width should give scale 0, got %v", s)
	}
}

func TestViewToImage(t *testing.T) {
	px, py, ok := viewToImage(250, 250, 1000, 600, 500, 500)
	if !ok || px != 500 || py != 300 {
		t.Fatalf("center maps to (%v,%v,%v), want (500,300,true)", px, py, ok)
	}
	if _, _, ok := viewToImage(250, 50, 1000, 600, 500, 500); ok {
		t.Fatalf("letterbox area should be outside the image")
	}
}

func TestNearestSample(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}
	cases := map[float64]int{-5: 0, -1.2: 1, 0.4: 2, 0.6: 3, 9: 4}
	for x, want := range cases {
		if got := nearestSample(xs, x); got != want {
			t.Fatalf("nearestSample(%v)=%d want %d", x, got, want)
		}
	}
	if got := nearestSample(nil, 1); got != -1 {
		t.Fatalf("empty input should give -1, got %d", got)
	}
}

func TestReadoutText(t *testing.T) {
	res := &analysis.Result{
		Options:    analysis.Options{XColumn: "U", YColumn: "Ig", Window: 2},
		X:          []float64{-1, 0, 1},
		Y:          []float64{-3, 1, 5},
		HeadSeries: []float64{-3, 1, 5},
		TailSeries: []float64{-2, 1, 4},
	}
	fig := &render.Figure{Frame: render.Frame{Left: 0, Top: 0, Right: 100, Bottom: 100, XMin: -1, XMax: 1, YMin: -5, YMax: 5}}
	text, ok := readoutText(res, fig, 100, 50)
	if !ok {
		t.Fatalf("expected readout inside the frame")
	}
	if !strings.HasPrefix(text, "#2  U=1  Ig=5") || !strings.Contains(text, "tail=4") {
		t.Fatalf("unexpected readout %q", text)
	}
	if _, ok := readoutText(res, fig, 150, 50); ok {
		t.Fatalf("outside the frame should not produce a readout")
	}
}

func TestDefaultPNGName(t *testing.T) {
	cases := map[string]string{
		"Messung3.csv":     "Messung3.png",
		"/data/run.7.xlsx": "run.7.png",
		"noext":            "noext.png",
		"":                 "sweep.png",
	}
	for in, want := range cases {
		if got := defaultPNGName(in); got != want {
			t.Fatalf("defaultPNGName(%q)=%q want %q", in, got, want)
		}
	}
}
