// Package config loads the TOML configuration for the invaders binary.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"invaders/internal/game"
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Terminal TerminalConfig `toml:"terminal"`
	Game     GameConfig     `toml:"game"`
	Assets   AssetsConfig   `toml:"assets"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WindowConfig struct {
	Title string `toml:"title"`
	Scale int    `toml:"scale"` // window pixels per buffer pixel
	VSync bool   `toml:"vsync"`
}

type TerminalConfig struct {
	FPS int `toml:"fps"`
	// Terminals report key presses but not releases; a direction stays held
	// for this many ticks after its last key repeat.
	HoldTicks int `toml:"hold_ticks"`
}

type GameConfig struct {
	ClearColor  [3]uint8 `toml:"clear_color"`
	BulletSpeed int      `toml:"bullet_speed"`
	PlayerSpeed int      `toml:"player_speed"`
	Lives       int      `toml:"lives"`
	Credits     int      `toml:"credits"`
}

type AssetsConfig struct {
	Sprites string `toml:"sprites"` // empty = embedded sheet
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load decodes path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	bg := game.Palette.Background
	return &Config{
		Window: WindowConfig{
			Title: "Space Invaders",
			Scale: 3,
			VSync: true,
		},
		Terminal: TerminalConfig{
			FPS:       60,
			HoldTicks: 8,
		},
		Game: GameConfig{
			ClearColor:  [3]uint8{bg.R, bg.G, bg.B},
			BulletSpeed: game.BulletSpeed,
			PlayerSpeed: game.PlayerSpeed,
			Lives:       game.PlayerStartLives,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale))
	}
	if c.Terminal.FPS <= 0 {
		errs = append(errs, fmt.Errorf("terminal.fps must be positive, got %d", c.Terminal.FPS))
	}
	if c.Terminal.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("terminal.hold_ticks must not be negative, got %d", c.Terminal.HoldTicks))
	}
	if c.Game.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("game.bullet_speed must be positive, got %d", c.Game.BulletSpeed))
	}
	if c.Game.PlayerSpeed <= 0 {
		errs = append(errs, fmt.Errorf("game.player_speed must be positive, got %d", c.Game.PlayerSpeed))
	}
	if c.Game.Lives < 0 {
		errs = append(errs, fmt.Errorf("game.lives must not be negative, got %d", c.Game.Lives))
	}
	if c.Game.Credits < 0 {
		errs = append(errs, fmt.Errorf("game.credits must not be negative, got %d", c.Game.Credits))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Options converts the game section into simulation options.
func (c *Config) Options() game.Options {
	opts := game.DefaultOptions()
	opts.ClearColor = game.RGB{R: c.Game.ClearColor[0], G: c.Game.ClearColor[1], B: c.Game.ClearColor[2]}
	opts.BulletSpeed = c.Game.BulletSpeed
	opts.PlayerSpeed = c.Game.PlayerSpeed
	opts.Lives = c.Game.Lives
	opts.Credits = c.Game.Credits
	return opts
}
