package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"invaders/internal/config"
	"invaders/internal/game"
)

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// loggedEvents are the game events reported at debug level.
var loggedEvents = []game.EventType{
	game.EventAlienKilled,
	game.EventBulletFired,
	game.EventBulletExpired,
	game.EventFireDropped,
}

// logEvents reports game events at debug level.
func logEvents(g *game.Game, log *zap.Logger) {
	if !log.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	h := func(e game.Event) {
		log.Debug("game event",
			zap.Stringer("type", e.Type),
			zap.Int("x", e.X),
			zap.Int("y", e.Y),
			zap.Int("data", e.Data),
			zap.Uint64("tick", g.Ticks()),
		)
	}
	for _, t := range loggedEvents {
		g.Events().Subscribe(t, h)
	}
}
