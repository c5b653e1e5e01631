// Package config loads isotime command settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrConfig wraps configuration loading and validation errors.
var ErrConfig = errors.New("config")

// Format is a configuration file format.
type Format int

const (
	// FormatYAML is YAML, selected by the .yaml and .yml extensions.
	FormatYAML Format = iota

	// FormatTOML is TOML, selected by the .toml extension.
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// Config holds the settings for the isotime command.
type Config struct {
	// Zone is the zone used to read date times without offsets: "zulu"
	// (default) or "local".
	Zone string `yaml:"zone" toml:"zone"`

	// Layout is the output layout name, such as "isot" or "compact".
	Layout string `yaml:"layout" toml:"layout"`

	// Precision is the exemplar date time for limited output, such as
	// "1970-01-01T00:00Z". Empty means the layout is used instead.
	Precision string `yaml:"precision" toml:"precision"`

	// MaxTicks is the default maximum number of ticks to generate.
	MaxTicks int `yaml:"max_ticks" toml:"max_ticks"`

	// NaN is written in place of values that cannot be converted.
	NaN string `yaml:"nan" toml:"nan"`

	// LogLevel is the zap level name: debug, info, warn, or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Workers is the number of concurrent conversions in batch mode.
	Workers int `yaml:"workers" toml:"workers"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Zone:     "zulu",
		Layout:   format.ISOTZ.String(),
		MaxTicks: 10,
		NaN:      "NaN",
		LogLevel: "warn",
		Workers:  4,
	}
}

// Load reads the configuration file at path, selecting the format from its
// extension. Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var f Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f = FormatYAML
	case ".toml":
		f = FormatTOML
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrConfig, ext)
	}
	return Parse(data, f)
}

// Parse decodes data in format f over the defaults and validates the result.
func Parse(data []byte, f Format) (*Config, error) {
	cfg := Default()
	var err error
	switch f {
	case FormatTOML:
		_, err = toml.Decode(string(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %v: %w", ErrConfig, f, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error wrapping ErrConfig for the first invalid
// setting in c.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Zone) {
	case "zulu", "utc", "local":
	default:
		return fmt.Errorf("%w: zone must be zulu or local, got %q", ErrConfig, c.Zone)
	}
	if _, err := format.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, ok := format.LookupPrecision(c.Precision); !ok {
		return fmt.Errorf("%w: unknown precision %q", ErrConfig, c.Precision)
	}
	if c.MaxTicks < 1 {
		return fmt.Errorf("%w: max_ticks must be at least 1, got %d", ErrConfig, c.MaxTicks)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrConfig, c.Workers)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// ZoneMode returns the cal.Zone named by c.Zone.
func (c *Config) ZoneMode() cal.Zone {
	if strings.EqualFold(c.Zone, "local") {
		return cal.Local
	}
	return cal.Zulu
}

// LayoutValue returns the layout named by c.Layout, or format.ISOTZ if it
// is unknown.
func (c *Config) LayoutValue() format.Layout {
	l, err := format.ParseLayout(c.Layout)
	if err != nil {
		return format.ISOTZ
	}
	return l
}

// PrecisionValue returns the precision for c.Precision and true, or false
// if no precision is set.
func (c *Config) PrecisionValue() (format.Precision, bool) {
	if c.Precision == "" {
		return format.Precision{}, false
	}
	return format.ParsePrecision(c.Precision), true
}

// Level returns the log level for c.LogLevel, or zapcore.WarnLevel if it
// is invalid.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}
