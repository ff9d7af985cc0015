package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"invaders/internal/display"
	"invaders/internal/game"
	"invaders/internal/termview"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  C                - Insert coin
  Esc/Q            - Quit

Backends:
  gl    - OpenGL window (default)
  term  - Terminal, half-block pixels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "gl", "Presentation backend: gl or term")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, log, g, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var p game.Presenter
	switch flagBackend {
	case "gl":
		d, err := display.Open(cfg.Window, log)
		if err != nil {
			return fmt.Errorf("open window: %w", err)
		}
		defer d.Close()
		p = d
	case "term":
		t, err := termview.Open(cfg.Terminal, log)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer t.Close()
		p = t
	default:
		return fmt.Errorf("unknown backend %q (want gl or term)", flagBackend)
	}

	log.Info("game started", zap.String("backend", flagBackend))
	err = game.Run(ctx, g, p)
	log.Info("game over",
		zap.Int("score", g.Score()),
		zap.Int("credits", g.Credits()),
		zap.Uint64("ticks", g.Ticks()),
	)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
