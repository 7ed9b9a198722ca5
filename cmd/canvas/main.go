// canvas renders a small demo scene with the software rasterizer.
//
// Usage:
//
//	canvas render            - Render the scene to a PNG file
//	canvas play              - Run the scene interactively in the terminal
//	canvas colors            - List the built-in palettes
//
// Global flags:
//
//	--config <path>     - Path to a config YAML (default: search ~/.canvas, ./configs)
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/32bitkid/canvas/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Software canvas demo",
	Long: `canvas draws a small scene with lines, triangles, quads and bitmap
text into a pixel buffer, then either writes it to a PNG file or shows it
in the terminal.

Examples:
  canvas render --out scene.png --scale 4
  canvas render --crt --frames 90
  canvas play
  canvas colors`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(colorsCmd)
}

// setup loads the configuration and builds the logger shared by all
// subcommands.
func setup() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "canvas",
		Level:           lvl,
	})
	return cfg, logger, nil
}
