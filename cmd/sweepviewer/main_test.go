package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeSweep writes a tab-separated sweep with decimal commas: slope 2 for the
// first half, slope 5 for the second.
func writeSweep(t *testing.T, dir string, rows int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("U\tIg\n")
	for i := 0; i < rows; i++ {
		u := float64(i)*0.1 - 10
		ig := 2*u + 1
		if i >= rows/2 {
			ig = 5*u - 3
		}
		line := fmt.Sprintf("%g\t%g\n", u, ig)
		b.WriteString(strings.ReplaceAll(line, ".", ","))
	}
	path := filepath.Join(dir, "sweep.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write sweep: %v", err)
	}
	return path
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sweep.yaml")
	if err := os.WriteFile(cfgPath, []byte("file: from-file.csv\nwindow: 50\nwidth: 800\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := resolveConfig([]string{"-config", cfgPath, "-window", "20"})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.File != "from-file.csv" {
		t.Fatalf("file from config lost: %q", cfg.File)
	}
	if cfg.Window != 20 {
		t.Fatalf("explicit -window should win, got %d", cfg.Window)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("size %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
}

func TestResolveConfig_Invalid(t *testing.T) {
	if _, err := resolveConfig([]string{"-window", "0"}); err == nil {
		t.Fatalf("expected validation error for window 0")
	}
	if _, err := resolveConfig([]string{"-no-such-flag"}); err == nil {
		t.Fatalf("expected parse error for unknown flag")
	}
}

func TestRunScreenshotMode_WritesPNGAndReport(t *testing.T) {
	dir := t.TempDir()
	cfg, err := resolveConfig([]string{
		"-file", writeSweep(t, dir, 240),
		"-screenshot", filepath.Join(dir, "out", "chart.png"),
		"-summary", filepath.Join(dir, "summary.json"),
		"-width", "900", "-height", "500",
		"-hints",
	})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	var out bytes.Buffer
	if err := RunScreenshotMode(cfg, &out); err != nil {
		t.Fatalf("RunScreenshotMode: %v", err)
	}
	if n := strings.Count(out.String(), "Interception with U=0 at:"); n != 2 {
		t.Fatalf("want 2 intercept lines, got %d in:\n%s", n, out.String())
	}
	if lines := strings.Split(out.String(), "\n"); len(lines) < 6 || !strings.Contains(lines[0], "Ig") {
		t.Fatalf("preview header missing:\n%s", out.String())
	}
	f, err := os.Open(cfg.Screenshot)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 900 || b.Dy() != 500 {
		t.Fatalf("screenshot size %dx%d, want 900x500", b.Dx(), b.Dy())
	}
	if _, err := os.Stat(cfg.Summary); err != nil {
		t.Fatalf("summary not written: %v", err)
	}
}

func TestRunScreenshotMode_ShortFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := resolveConfig([]string{
		"-file", writeSweep(t, dir, 40),
		"-screenshot", filepath.Join(dir, "chart.png"),
	})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if err := RunScreenshotMode(cfg, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for 40 rows with window 100")
	}
	if _, err := os.Stat(cfg.Screenshot); !os.IsNotExist(err) {
		t.Fatalf("no screenshot expected on failure, stat err=%v", err)
	}
}

func TestRunScreenshotMode_EmptyCellOutsideWindows(t *testing.T) {
	dir := t.TempDir()
	src := writeSweep(t, dir, 300)
	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read sweep: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	// line 0 is the header; blank the Ig cell of row 150
	lines[151] = strings.SplitN(lines[151], "\t", 2)[0] + "\t"
	if err := os.WriteFile(src, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write sweep: %v", err)
	}
	cfg, err := resolveConfig([]string{"-file", src, "-screenshot", filepath.Join(dir, "gap.png")})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- RunScreenshotMode(cfg, &bytes.Buffer{}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunScreenshotMode: %v", err)
		}
	case <-time.After(20 * time.Second):
		t.Fatalf("screenshot mode did not finish for a sweep with an empty Ig cell")
	}
	if _, err := os.Stat(cfg.Screenshot); err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
}
