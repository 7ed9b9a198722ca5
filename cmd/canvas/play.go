package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/32bitkid/canvas"
	"github.com/32bitkid/canvas/font"
	"github.com/32bitkid/canvas/internal/demo"
	"github.com/32bitkid/canvas/present"
)

var (
	flagFit     bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the scene in the terminal",
	Long: `Run the scene interactively. Each terminal cell shows two pixels.

Controls:
  Arrows/WASD  - Move
  Q/Esc/Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the canvas to the terminal instead of the config")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the terminal is in use")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play requires an interactive terminal")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	// The terminal is taken over by the presenter, keep logs out of it.
	logger.SetOutput(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	t, err := present.NewTerminal(logger)
	if err != nil {
		return err
	}
	defer t.Close()

	width, height := cfg.Window.Width, cfg.Window.Height
	if flagFit {
		width, height = t.Size()
		if width <= 0 || height <= 0 {
			return fmt.Errorf("terminal too small: %dx%d", width, height)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := &demo.Loop{
		State:  demo.NewState(demo.ThemeFromConfig(cfg)),
		Canvas: canvas.New(width, height),
		Font:   font.Builtin(),
		FPS:    cfg.FPS,
		Logger: logger,
	}
	return loop.Run(ctx, t, t.Poll(ctx))
}
