package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iafilius/LangmuirSweep/src/config"
	"github.com/iafilius/LangmuirSweep/src/logging"
	"github.com/iafilius/LangmuirSweep/src/render"
)

// RunScreenshotMode renders the chart to cfg.Screenshot as PNG.
// It runs headlessly without creating a UI window.
func RunScreenshotMode(cfg config.Config, out io.Writer) error {
	if dir := filepath.Dir(cfg.Screenshot); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	_, fig, err := prepare(cfg, out)
	if err != nil {
		return err
	}
	if err := render.WritePNG(cfg.Screenshot, fig.Image); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Screenshot, err)
	}
	logging.Infof("chart written to %s", cfg.Screenshot)
	return nil
}
