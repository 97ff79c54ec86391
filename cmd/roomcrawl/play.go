package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play roomcrawl",
	Long: `Start an interactive game.

Controls:
  Arrows / hjkl / 8246  - Move
  Q / Esc / Ctrl+C      - Quit

Examples:
  roomcrawl play
  roomcrawl play --seed 42
  roomcrawl play --config ./roomcrawl.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(settings, logFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrNotConfigured):
		logger.Debug("telemetry disabled")
	case err != nil:
		logger.Warn("telemetry setup failed, running without observability", "err", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "err", err)
			}
		}()
	}

	g, err := game.New(game.ConfigFromSettings(settings), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	if err := g.Setup(ctx); err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Close()

	logger.Info("starting game", "seed", g.Seed())
	return g.Run(ctx, screen)
}
