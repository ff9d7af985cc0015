package main

import (
	"fmt"

	"go.uber.org/zap"

	"invaders/internal/assets"
	"invaders/internal/config"
	"invaders/internal/game"
)

// setup loads configuration, logger and assets and builds a fresh game.
// The returned logger must be synced by the caller.
func setup() (*config.Config, *zap.Logger, *game.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, nil, fmt.Errorf("--log-level: %w", err)
		}
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	res, err := assets.Load(cfg.Assets.Sprites)
	if err != nil {
		log.Sync()
		return nil, nil, nil, fmt.Errorf("load assets: %w", err)
	}
	log.Debug("assets loaded",
		zap.Int("sprites", res.Sprites.Len()),
		zap.Int("glyphs", game.FontGlyphCount),
	)

	g, err := game.NewGame(res, cfg.Options())
	if err != nil {
		log.Sync()
		return nil, nil, nil, fmt.Errorf("new game: %w", err)
	}
	logEvents(g, log)
	return cfg, log, g, nil
}
