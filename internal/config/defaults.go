package config

import (
	_ "embed"
)

//go:embed defaults/canvas.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 160, Height: 96},
		FPS:      30,
		LogLevel: "info",
		Export: ExportConfig{
			Path:  "frame.png",
			Scale: 4,
		},
		Palette: map[string]string{
			"background": "black",
			"ground":     "grass",
			"player":     "sky",
			"coin":       "gold",
			"wall":       "brick",
			"text":       "white",
		},
	}
}
