// Sweep viewer entrypoint.
//
// Loads a Langmuir probe sweep (tab-separated, decimal comma, or .xlsx), prints
// the first rows, fits straight lines to the first and last -window samples,
// prints both U=0 intercepts and shows the curve with both fits in a window.
// The call blocks until the window is closed.
//
// With -screenshot the chart is written as PNG instead and no window is opened.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iafilius/LangmuirSweep/src/analysis"
	"github.com/iafilius/LangmuirSweep/src/config"
	"github.com/iafilius/LangmuirSweep/src/dataset"
	"github.com/iafilius/LangmuirSweep/src/logging"
	"github.com/iafilius/LangmuirSweep/src/render"
)

// resolveConfig parses args, loads the optional -config file and applies the flags that were set explicitly.
func resolveConfig(args []string) (config.Config, error) {
	d := config.Default()
	fs := flag.NewFlagSet("sweepviewer", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional config file (yaml, json or toml)")
	file := fs.String("file", d.File, "Path to the sweep file (tab-separated with decimal comma, or .xlsx)")
	sheet := fs.String("sheet", d.Sheet, "Worksheet for .xlsx input (default: first sheet)")
	window := fs.Int("window", d.Window, "Rows in the head and tail fit windows")
	previewRows := fs.Int("preview-rows", d.PreviewRows, "Rows printed for inspection after loading")
	xColumn := fs.String("x", d.XColumn, "Voltage column")
	yColumn := fs.String("y", d.YColumn, "Current column")
	width := fs.Int("width", d.Width, "Chart width in pixels")
	height := fs.Int("height", d.Height, "Chart height in pixels")
	logLevel := fs.String("log-level", d.LogLevel, "Log level (debug|info|warn|error)")
	hints := fs.Bool("hints", d.Hints, "Draw the fitted lines as a caption under the chart")
	screenshot := fs.String("screenshot", d.Screenshot, "Write the chart to this PNG and exit without opening a window")
	summary := fs.String("summary", d.Summary, "Write the fit summary as JSON to this path (optional)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "sheet":
			cfg.Sheet = *sheet
		case "window":
			cfg.Window = *window
		case "preview-rows":
			cfg.PreviewRows = *previewRows
		case "x":
			cfg.XColumn = *xColumn
		case "y":
			cfg.YColumn = *yColumn
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "log-level":
			cfg.LogLevel = *logLevel
		case "hints":
			cfg.Hints = *hints
		case "screenshot":
			cfg.Screenshot = *screenshot
		case "summary":
			cfg.Summary = *summary
		}
	})
	return cfg, cfg.Validate()
}

// prepare runs load, preview, fits and rendering, writing the console output to out.
func prepare(cfg config.Config, out io.Writer) (*analysis.Result, *render.Figure, error) {
	ds, err := dataset.Load(cfg.File, dataset.Options{
		Sheet:    cfg.Sheet,
		Required: []string{cfg.XColumn, cfg.YColumn},
	})
	if err != nil {
		return nil, nil, err
	}
	if cfg.PreviewRows > 0 {
		if err := ds.Preview(out, cfg.PreviewRows); err != nil {
			return nil, nil, err
		}
	}
	res, err := analysis.Run(ds, analysis.Options{XColumn: cfg.XColumn, YColumn: cfg.YColumn, Window: cfg.Window})
	if err != nil {
		return nil, nil, err
	}
	if err := res.Report(out); err != nil {
		return nil, nil, err
	}
	if cfg.Summary != "" {
		if err := analysis.WriteSummaryJSON(cfg.Summary, res.Summary(cfg.File)); err != nil {
			return nil, nil, fmt.Errorf("write summary: %w", err)
		}
		logging.Infof("summary written to %s", cfg.Summary)
	}
	opts := render.Options{Width: cfg.Width, Height: cfg.Height}
	if cfg.Hints {
		opts.Hint = render.Hint(res)
	}
	fig, err := render.Chart(res, opts)
	if err != nil {
		return nil, nil, err
	}
	return res, fig, nil
}

func main() {
	cfg, err := resolveConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLevel(cfg.LogLevel)

	if cfg.Screenshot != "" {
		if err := RunScreenshotMode(cfg, os.Stdout); err != nil {
			logging.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	res, fig, err := prepare(cfg, os.Stdout)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	showWindow(cfg, res, fig)
}
