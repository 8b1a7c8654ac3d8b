// Package config resolves run settings from defaults, an optional config file
// and SWEEP_* environment variables. Command-line flags are applied on top by
// the executables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/iafilius/LangmuirSweep/src/logging"
)

// Defaults used when neither file, environment nor flags provide a value.
const (
	DefaultFile        = "Messung3.csv"
	DefaultWindow      = 100
	DefaultPreviewRows = 5
	DefaultXColumn     = "U"
	DefaultYColumn     = "Ig"
	DefaultWidth       = 1000
	DefaultHeight      = 600
	DefaultLogLevel    = "info"

	EnvPrefix = "SWEEP"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything one sweep run needs.
type Config struct {
	File        string `mapstructure:"file"`
	Sheet       string `mapstructure:"sheet"`
	Window      int    `mapstructure:"window"`
	PreviewRows int    `mapstructure:"preview_rows"`
	XColumn     string `mapstructure:"x_column"`
	YColumn     string `mapstructure:"y_column"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	LogLevel    string `mapstructure:"log_level"`
	Hints       bool   `mapstructure:"hints"`
	Screenshot  string `mapstructure:"screenshot"`
	Summary     string `mapstructure:"summary"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:        DefaultFile,
		Window:      DefaultWindow,
		PreviewRows: DefaultPreviewRows,
		XColumn:     DefaultXColumn,
		YColumn:     DefaultYColumn,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		LogLevel:    DefaultLogLevel,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("file", d.File)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("window", d.Window)
	v.SetDefault("preview_rows", d.PreviewRows)
	v.SetDefault("x_column", d.XColumn)
	v.SetDefault("y_column", d.YColumn)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("hints", d.Hints)
	v.SetDefault("screenshot", d.Screenshot)
	v.SetDefault("summary", d.Summary)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration. An empty path skips the file; the file type is
// inferred by viper from the extension.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		logging.Debugf("config loaded from %s", v.ConfigFileUsed())
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Validate checks ranges and required fields.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.File) == "":
		return fmt.Errorf("%w: file is empty", ErrInvalid)
	case c.Window <= 0:
		return fmt.Errorf("%w: window must be > 0, got %d", ErrInvalid, c.Window)
	case c.PreviewRows < 0:
		return fmt.Errorf("%w: preview_rows must be >= 0, got %d", ErrInvalid, c.PreviewRows)
	case c.XColumn == "" || c.YColumn == "":
		return fmt.Errorf("%w: x_column and y_column are required", ErrInvalid)
	case c.XColumn == c.YColumn:
		return fmt.Errorf("%w: x_column and y_column are both %q", ErrInvalid, c.XColumn)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: chart size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}
