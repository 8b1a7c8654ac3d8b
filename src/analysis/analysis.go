package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iafilius/LangmuirSweep/src/dataset"
	"github.com/iafilius/LangmuirSweep/src/fit"
	"github.com/iafilius/LangmuirSweep/src/logging"
)

// DefaultWindow is the number of leading/trailing samples assumed to sit in the linear regime.
const DefaultWindow = 100

var ErrWindowTooLarge = errors.New("dataset shorter than fit window")

// Options selects the sweep columns and the head/tail window size.
type Options struct {
	XColumn string
	YColumn string
	Window  int
}

func (o Options) withDefaults() Options {
	if o.XColumn == "" {
		o.XColumn = "U"
	}
	if o.YColumn == "" {
		o.YColumn = "Ig"
	}
	if o.Window == 0 {
		o.Window = DefaultWindow
	}
	return o
}

// Result is one analyzed sweep. HeadSeries and TailSeries span the full X column.
type Result struct {
	Dataset *dataset.Dataset
	Options Options
	X       []float64
	Y       []float64

	Head fit.Line
	Tail fit.Line

	HeadSeries []float64
	TailSeries []float64
}

// Run fits the first and last Window rows of (X, Y) and evaluates both lines over the whole sweep.
func Run(ds *dataset.Dataset, opts Options) (*Result, error) {
	defer logging.TimeTrack(time.Now(), "analysis")
	opts = opts.withDefaults()
	if opts.Window < 2 {
		return nil, fmt.Errorf("window must be >= 2, got %d", opts.Window)
	}
	if ds.Len() < opts.Window {
		return nil, fmt.Errorf("%w: %d rows, window %d", ErrWindowTooLarge, ds.Len(), opts.Window)
	}
	xs, err := ds.Float(opts.XColumn)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Float(opts.YColumn)
	if err != nil {
		return nil, err
	}

	tail, err := fitWindow(ds.Tail(opts.Window), opts)
	if err != nil {
		return nil, fmt.Errorf("tail fit: %w", err)
	}
	head, err := fitWindow(ds.Head(opts.Window), opts)
	if err != nil {
		return nil, fmt.Errorf("head fit: %w", err)
	}
	logging.Debugf("head %s, tail %s (window=%d rows=%d)", head, tail, opts.Window, ds.Len())

	return &Result{
		Dataset:    ds,
		Options:    opts,
		X:          xs,
		Y:          ys,
		Head:       head,
		Tail:       tail,
		HeadSeries: head.Evaluate(xs),
		TailSeries: tail.Evaluate(xs),
	}, nil
}

func fitWindow(w *dataset.Dataset, opts Options) (fit.Line, error) {
	xs, err := w.Float(opts.XColumn)
	if err != nil {
		return fit.Line{}, err
	}
	ys, err := w.Float(opts.YColumn)
	if err != nil {
		return fit.Line{}, err
	}
	return fit.Linear(xs, ys)
}

// AnalyzeFile loads path and runs the analysis on it.
func AnalyzeFile(path string, loadOpts dataset.Options, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if loadOpts.Required == nil {
		loadOpts.Required = []string{opts.XColumn, opts.YColumn}
	}
	ds, err := dataset.Load(path, loadOpts)
	if err != nil {
		return nil, err
	}
	return Run(ds, opts)
}

// Report prints the U=0 intercepts, tail fit first, then the head fit followed by a blank line.
func (r *Result) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Interception with U=0 at:  %v\n", r.Tail.Intercept); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Interception with U=0 at:  %v\n\n", r.Head.Intercept)
	return err
}

// Summary is the machine-readable form of a Result.
type Summary struct {
	File     string   `json:"file,omitempty"`
	Rows     int      `json:"rows"`
	Window   int      `json:"window"`
	XColumn  string   `json:"x_column"`
	YColumn  string   `json:"y_column"`
	Head     fit.Line `json:"head"`
	Tail     fit.Line `json:"tail"`
	HeadRoot *float64 `json:"head_root,omitempty"`
	TailRoot *float64 `json:"tail_root,omitempty"`
}

// Summary condenses the result; roots are omitted for horizontal fits.
func (r *Result) Summary(file string) Summary {
	s := Summary{
		File:    file,
		Rows:    r.Dataset.Len(),
		Window:  r.Options.Window,
		XColumn: r.Options.XColumn,
		YColumn: r.Options.YColumn,
		Head:    r.Head,
		Tail:    r.Tail,
	}
	if x, ok := r.Head.Root(); ok {
		s.HeadRoot = &x
	}
	if x, ok := r.Tail.Root(); ok {
		s.TailRoot = &x
	}
	return s
}

// WriteSummaryJSON writes the summary as indented JSON.
func WriteSummaryJSON(path string, s Summary) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
