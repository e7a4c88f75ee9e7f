// Package csvchart loads tabular data, renders charts from it and exports
// them to image files.
package csvchart

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options configures rendering and export.
type Options struct {
	// Width is the exported image width in pixels.
	Width int
	// Height is the exported image height in pixels.
	Height int
	// DPI is the resolution used for raster export.
	DPI int
	// DefaultColor is the series color when no custom color is requested.
	DefaultColor color.Color
	// CustomColor is the alternate series color.
	CustomColor color.Color
}

// DefaultOptions returns default render and export options.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		DPI:          DefaultDPI,
		DefaultColor: color.RGBA{B: 255, A: 255},
		CustomColor:  color.RGBA{R: 255, A: 255},
	}
}

// SeriesColor returns the color for a request's color toggle.
func (o Options) SeriesColor(custom bool) color.Color {
	if custom {
		return o.CustomColor
	}
	return o.DefaultColor
}

// optionsFile is the YAML shape of an options file.
type optionsFile struct {
	Width        *int    `yaml:"width"`
	Height       *int    `yaml:"height"`
	DPI          *int    `yaml:"dpi"`
	DefaultColor *string `yaml:"default_color"`
	CustomColor  *string `yaml:"custom_color"`
}

// LoadOptions reads options from a YAML file. Fields missing from the file
// keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}

	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}

	if file.Width != nil {
		opts.Width = *file.Width
	}
	if file.Height != nil {
		opts.Height = *file.Height
	}
	if file.DPI != nil {
		opts.DPI = *file.DPI
	}
	if file.DefaultColor != nil {
		c, err := ParseColor(*file.DefaultColor)
		if err != nil {
			return opts, fmt.Errorf("parse options %s: default_color: %w", path, err)
		}
		opts.DefaultColor = c
	}
	if file.CustomColor != nil {
		c, err := ParseColor(*file.CustomColor)
		if err != nil {
			return opts, fmt.Errorf("parse options %s: custom_color: %w", path, err)
		}
		opts.CustomColor = c
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("parse options %s: width and height must be positive", path)
	}
	if opts.DPI <= 0 {
		return opts, fmt.Errorf("parse options %s: dpi must be positive", path)
	}

	return opts, nil
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q (must be #rrggbb)", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q (must be #rrggbb)", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
