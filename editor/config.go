package editor

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/ondeweb/material-icon-gen/compose"
	"github.com/ondeweb/material-icon-gen/export"
	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// Config is the on-disk editor defaults file, in TOML.
//
//	base_color = "#512da8"
//	icon_color = "white"
//	base_shape = "rounded"
//	icon_scale = 0.6
//
//	[shadow]
//	length = 1.0
//	opacity = 0.25
//	fade = true
//
//	[[densities]]
//	name = "mdpi"
//	size = 48
type Config struct {
	BaseColor string  `toml:"base_color"`
	IconColor string  `toml:"icon_color"`
	BaseShape string  `toml:"base_shape"`
	IconScale float64 `toml:"icon_scale"`
	Size      int     `toml:"size"`

	Shadow struct {
		Length  float64 `toml:"length"`
		Opacity float64 `toml:"opacity"`
		Fade    bool    `toml:"fade"`
	} `toml:"shadow"`

	Densities []struct {
		Name string `toml:"name"`
		Size int    `toml:"size"`
	} `toml:"densities"`
}

// LoadConfig reads the TOML defaults file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Options merges the config over the composition defaults. Empty
// fields keep their default.
func (c Config) Options() (compose.Options, error) {
	o := compose.DefaultOptions()
	if c.BaseColor != "" {
		col, err := parseOpaqueColor(c.BaseColor)
		if err != nil {
			return o, fmt.Errorf("base_color: %w", err)
		}
		o.BaseColor = col
	}
	if c.IconColor != "" {
		col, err := parseOpaqueColor(c.IconColor)
		if err != nil {
			return o, fmt.Errorf("icon_color: %w", err)
		}
		o.IconColor = col
	}
	if c.BaseShape != "" {
		b, err := compose.ParseBaseShape(c.BaseShape)
		if err != nil {
			return o, err
		}
		o.Base = b
	}
	if c.IconScale > 0 {
		o.IconScale = c.IconScale
	}
	if c.Size > 0 {
		o.Size = c.Size
	}
	if c.Shadow.Length > 0 || c.Shadow.Opacity > 0 {
		o.Shadow = compose.Shadow(c.Shadow)
	}
	return o, nil
}

// parseOpaqueColor parses an SVG color value and rejects "none",
// which is meaningless for base and icon paint.
func parseOpaqueColor(s string) (color.NRGBA, error) {
	col, err := svgdoc.ParseColor(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	if col == nil {
		return color.NRGBA{}, fmt.Errorf("%q: color must not be none", s)
	}
	return *col, nil
}

// ExportDensities returns the configured density ladder, or the
// standard one when the config names none.
func (c Config) ExportDensities() []export.Density {
	if len(c.Densities) == 0 {
		return export.LauncherDensities
	}
	out := make([]export.Density, len(c.Densities))
	for i, d := range c.Densities {
		out[i] = export.Density{Name: d.Name, Size: d.Size}
	}
	return out
}
