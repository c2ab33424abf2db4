// Package config defines the chart command configuration and its loading layers.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iafilius/CropEfficiencyChart/src/types"
)

// Default file names used when nothing overrides them.
const (
	DefaultInput  = "efficiency_data.csv"
	DefaultOutput = "comprehensive_efficiency_chart.png"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains process configuration.
type Config struct {
	// Input is the simulation table (.csv or .xlsx).
	Input string `koanf:"input"`

	// Output is the PNG written on success.
	Output string `koanf:"output"`

	// FontPath optionally points at a TrueType font used for every label.
	FontPath string `koanf:"font"`

	// Width and Height of the composite figure in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// Locale selects the label set: en or zh (zh-CN and zh_CN also accepted). zh needs a CJK FontPath.
	Locale string `koanf:"locale"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		Width:    2000,
		Height:   1200,
		Locale:   types.LocaleEnglish,
		LogLevel: "info",
	}
}

// Validate checks the fields that would otherwise fail late and normalizes Locale to
// its canonical form.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("%w: input must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if c.Width < 400 || c.Height < 300 {
		return fmt.Errorf("%w: figure size %dx%d below 400x300", ErrInvalidConfig, c.Width, c.Height)
	}
	loc, ok := types.CanonicalLocale(c.Locale)
	if !ok {
		return fmt.Errorf("%w: unknown locale %q", ErrInvalidConfig, c.Locale)
	}
	c.Locale = loc
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
