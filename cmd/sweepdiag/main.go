// Command sweepdiag evaluates the closed-form plasma diagnostics from the
// saturation currents read off a sweep.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iafilius/LangmuirSweep/src/logging"
	"github.com/iafilius/LangmuirSweep/src/plasma"
)

type inputs struct {
	iSp, iSm, iSn, dI, p float64
}

// report prints T_e, its kelvin equivalent, n_e and d2I/dU2 for in.
func report(w io.Writer, in inputs) error {
	te, err := plasma.ElectronTemp(in.iSp, in.iSm, in.dI)
	if err != nil {
		return fmt.Errorf("electron temperature: %w", err)
	}
	kelvin, err := plasma.SI.EVToKelvin(te)
	if err != nil {
		return err
	}
	ne, err := plasma.ElectronDensity(in.iSp, in.iSn, in.iSm, in.dI)
	if err != nil {
		return fmt.Errorf("electron density: %w", err)
	}
	curv, err := plasma.D2IdU2(in.p, in.iSp, in.iSn, in.iSm, in.dI)
	if err != nil {
		return fmt.Errorf("d2I/dU2: %w", err)
	}
	fmt.Fprintf(w, "T_e      = %g eV (%g K)\n", te, kelvin)
	fmt.Fprintf(w, "n_e      = %g\n", ne)
	fmt.Fprintf(w, "d2I/dU2  = %g\n", curv)
	return nil
}

func main() {
	var in inputs
	var level string
	flag.Float64Var(&in.iSp, "isp", 0, "Saturation current I_sp")
	flag.Float64Var(&in.iSm, "ism", 0, "Saturation current I_sm")
	flag.Float64Var(&in.iSn, "isn", 0, "Saturation current I_sn")
	flag.Float64Var(&in.dI, "di", 0, "Slope dI at the floating point")
	flag.Float64Var(&in.p, "p", 1, "Pressure p used by d2I/dU2")
	flag.StringVar(&level, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.SetLevel(level)
	logging.Debugf("inputs: %+v", in)
	if err := report(os.Stdout, in); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
