package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/iafilius/LangmuirSweep/src/plasma"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	if err := report(&buf, inputs{iSp: 2, iSm: 2, iSn: 2, dI: 4, p: 1}); err != nil {
		t.Fatalf("report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "T_e      = 0.25 eV") {
		t.Fatalf("unexpected temperature line:\n%s", out)
	}
	// 3e21*4/sqrt(0.25)
	if !strings.Contains(out, "n_e      = 2.4e+22") {
		t.Fatalf("unexpected density line:\n%s", out)
	}
	curv, err := plasma.D2IdU2(1, 2, 2, 2, 4)
	if err != nil {
		t.Fatalf("D2IdU2: %v", err)
	}
	if !strings.Contains(out, fmt.Sprintf("d2I/dU2  = %g\n", curv)) {
		t.Fatalf("unexpected curvature line:\n%s", out)
	}
}

func TestReport_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   inputs
		want error
	}{
		{"zero slope", inputs{iSp: 1, iSm: 1, iSn: 1, dI: 0, p: 1}, plasma.ErrDivisionByZero},
		{"cancelling currents", inputs{iSp: 1, iSm: -1, iSn: 1, dI: 1, p: 1}, plasma.ErrDivisionByZero},
		{"negative temperature", inputs{iSp: 1, iSm: 1, iSn: 1, dI: -1, p: 1}, plasma.ErrNonPositiveTemperature},
		{"zero pressure", inputs{iSp: 1, iSm: 1, iSn: 1, dI: 1, p: 0}, plasma.ErrDivisionByZero},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		err := report(&buf, c.in)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v want %v", c.name, err, c.want)
		}
		if buf.Len() != 0 {
			t.Fatalf("%s: nothing should be printed on error, got %q", c.name, buf.String())
		}
	}
}
