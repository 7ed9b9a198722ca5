// Package config provides YAML configuration loading for the canvas
// command.
package config

import (
	"fmt"

	"github.com/32bitkid/canvas/colors"
)

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	FPS      int               `yaml:"fps"`
	LogLevel string            `yaml:"log_level"`
	Export   ExportConfig      `yaml:"export"`
	Palette  map[string]string `yaml:"palette"` // role -> color name or "#rrggbb"
}

// WindowConfig is the size of the pixel buffer, not of the terminal.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ExportConfig struct {
	Path  string `yaml:"path"`
	Scale int    `yaml:"scale"`
	CRT   bool   `yaml:"crt"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.FPS <= 0:
		return fmt.Errorf("invalid fps %d", c.FPS)
	case c.Export.Scale <= 0:
		return fmt.Errorf("invalid export scale %d", c.Export.Scale)
	}
	for role, value := range c.Palette {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("palette %s: %w", role, err)
		}
	}
	return nil
}

// Color resolves a palette role, falling back to fallback when the role is
// not configured.
func (c Config) Color(role string, fallback colors.Color) colors.Color {
	value, ok := c.Palette[role]
	if !ok {
		return fallback
	}
	parsed, err := ParseColor(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// ParseColor accepts a name from colors.Named or a "#rrggbb" hex code.
func ParseColor(s string) (colors.Color, error) {
	if c, ok := colors.Named[s]; ok {
		return c, nil
	}
	return colors.ParseHex(s)
}
