package chart

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jabulente/bubblechart/pkg/errors"
)

// Config describes a chart declaratively, typically loaded from a TOML file
// next to the dataset. Flag values override config values, which override the
// built-in defaults.
//
// Example:
//
//	title   = "Revenue by region"
//	spacing = 0.47
//	style   = "ink"
//
//	[columns]
//	areas  = "revenue"
//	labels = "region"
//	values = "revenue"
//	colors = "color"
//
//	[output]
//	formats = ["svg", "png"]
//	scale   = 2.0
type Config struct {
	Title   string  `toml:"title"`
	Footer  string  `toml:"footer"`
	Spacing float64 `toml:"spacing"`
	Style   string  `toml:"style"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`

	Columns ColumnConfig `toml:"columns"`
	Output  OutputConfig `toml:"output"`
}

// ColumnConfig names the dataset columns feeding the chart. Only Areas is
// required; the rest default to empty display metadata.
type ColumnConfig struct {
	Areas  string `toml:"areas"`
	Labels string `toml:"labels"`
	Values string `toml:"values"`
	Colors string `toml:"colors"`
}

// OutputConfig controls artifact generation.
type OutputConfig struct {
	Formats []string `toml:"formats"`
	Path    string   `toml:"path"`
	Scale   float64  `toml:"scale"`
}

// LoadConfig reads and validates a TOML chart config from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config's field values. Zero values are allowed
// everywhere (they mean "use the default"); only actively invalid values are
// rejected.
func (c Config) Validate() error {
	if c.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidSpacing, "spacing must be non-negative, got %v", c.Spacing)
	}
	if c.Style != "" && c.Style != StyleSimple && c.Style != StyleInk {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be %q or %q)", c.Style, StyleSimple, StyleInk)
	}
	for _, f := range c.Output.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	for _, col := range []string{c.Columns.Areas, c.Columns.Labels, c.Columns.Values, c.Columns.Colors} {
		if col == "" {
			continue
		}
		if err := errors.ValidateColumnName(col); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormat checks that a format is one of svg, png, pdf, or json.
func ValidateFormat(format string) error {
	switch format {
	case FormatSVG, FormatPNG, FormatPDF, FormatJSON:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
}

// ValidateStyle checks that a style is one of simple or ink.
func ValidateStyle(style string) error {
	if style != StyleSimple && style != StyleInk {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be %q or %q)", style, StyleSimple, StyleInk)
	}
	return nil
}
