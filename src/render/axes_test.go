package render

import (
	"math"
	"testing"
)

func TestAxisRange_ContainsZero(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{-10, 10},
		{3, 47},
		{-0.004, -0.001},
		{1e-6, 2e-6},
	}
	for _, tc := range cases {
		r := axisRange(tc.min, tc.max, maxYTicks)
		if r.Min > 0 || r.Max < 0 {
			t.Fatalf("range %v..%v excludes zero for data %v..%v", r.Min, r.Max, tc.min, tc.max)
		}
		if r.Min > tc.min || r.Max < tc.max {
			t.Fatalf("range %v..%v clips data %v..%v", r.Min, r.Max, tc.min, tc.max)
		}
	}
}

func TestAxisRange_SnapsToTickGrid(t *testing.T) {
	// data -17..23 padded to -19..25; a 10-step grid gives 4 points
	r := axisRange(-17, 23, maxYTicks)
	if r.Min != -20 || r.Max != 30 {
		t.Fatalf("got %v..%v want -20..30", r.Min, r.Max)
	}
	// -10..10 padded to -11..11 snaps onto a 2.5 grid
	r = axisRange(-10, 10, maxXTicks)
	if r.Min != -12.5 || r.Max != 12.5 {
		t.Fatalf("got %v..%v want -12.5..12.5", r.Min, r.Max)
	}
	if r := axisRange(0, 0, maxYTicks); r.Max <= r.Min {
		t.Fatalf("flat data should still give a usable range, got %v..%v", r.Min, r.Max)
	}
}

func TestNiceTicks_CappedAndInside(t *testing.T) {
	for _, span := range [][2]float64{{-20, 20}, {-3, 117}, {0, 1e-3}, {-0.7, 0.2}} {
		ticks := niceTicks(span[0], span[1], maxXTicks)
		if len(ticks) == 0 || len(ticks) > maxXTicks {
			t.Fatalf("span %v: %d ticks", span, len(ticks))
		}
		for _, tk := range ticks {
			if tk.Value < span[0]-1e-12 || tk.Value > span[1]+1e-12 {
				t.Fatalf("span %v: tick %v outside", span, tk.Value)
			}
		}
	}
	ticks := niceTicks(-20, 20, maxXTicks)
	hasZero := false
	for _, tk := range ticks {
		if tk.Value == 0 && tk.Label == "0" {
			hasZero = true
		}
	}
	if !hasZero {
		t.Fatalf("expected a zero tick in %v", ticks)
	}
}

func TestProject(t *testing.T) {
	if got := project(0, -20, 20, 904); got != 452 {
		t.Fatalf("project center = %d", got)
	}
	if got := project(-20, -20, 20, 904); got != 0 {
		t.Fatalf("project min = %d", got)
	}
	if got := project(20, -20, 20, 904); got != 904 {
		t.Fatalf("project max = %d", got)
	}
	if got := project(1, 1, 1, 100); got != 0 {
		t.Fatalf("degenerate range = %d", got)
	}
}

func TestDataBounds_SkipsNonFinite(t *testing.T) {
	min, max, ok := dataBounds([]float64{math.NaN(), 2, -1}, []float64{math.Inf(1), 5})
	if !ok || min != -1 || max != 5 {
		t.Fatalf("got %v %v %v", min, max, ok)
	}
	if _, _, ok := dataBounds([]float64{math.NaN()}); ok {
		t.Fatalf("all NaN should not be ok")
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{0: "0", 250: "250", 12.5: "12.5", 2.5: "2.5", -0.02: "-0.02", 2e-4: "2.0e-04"}
	for v, want := range cases {
		if got := formatTick(v); got != want {
			t.Fatalf("formatTick(%v)=%q want %q", v, got, want)
		}
	}
}
