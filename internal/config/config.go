package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/stackfall/tetris"
)

// DefaultPath is read when STACKFALL_CONFIG is unset
const DefaultPath = "config/stackfall.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "STACKFALL_"

type Config struct {
	Game    GameConfig    `toml:"game" envPrefix:"GAME_"`
	Timing  TimingConfig  `toml:"timing" envPrefix:"TIMING_"`
	Window  WindowConfig  `toml:"window" envPrefix:"WINDOW_"`
	Audio   AudioConfig   `toml:"audio" envPrefix:"AUDIO_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOGGING_"`

	// Source is the file the config was read from, empty for defaults only
	Source string `toml:"-"`
}

type GameConfig struct {
	Seed          uint64        `toml:"seed" env:"SEED"` // 0 = seeded from the clock
	StartLevel    uint          `toml:"start_level" env:"START_LEVEL"`
	ClearMode     string        `toml:"clear_mode" env:"CLEAR_MODE"` // "classic" or "wipe"
	PulseDuration time.Duration `toml:"pulse_duration" env:"PULSE_DURATION"`
}

type TimingConfig struct {
	FrameRate int `toml:"frame_rate" env:"FRAME_RATE"`
}

type WindowConfig struct {
	Width    int  `toml:"width" env:"WIDTH"`
	Height   int  `toml:"height" env:"HEIGHT"`
	CellSize int  `toml:"cell_size" env:"CELL_SIZE"`
	DebugUI  bool `toml:"debug_ui" env:"DEBUG_UI"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled" env:"ENABLED"`
	Volume     float64 `toml:"volume" env:"VOLUME"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate" env:"SAMPLE_RATE"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. A missing file is not an error when path is the default.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from STACKFALL_CONFIG, or DefaultPath when it is unset
func LoadDefault() (*Config, error) {
	return Load(os.Getenv(EnvPrefix + "CONFIG"))
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if _, err := tetris.ParseClearMode(c.Game.ClearMode); err != nil {
		return fmt.Errorf("invalid game.clear_mode: %w", err)
	}
	if c.Game.PulseDuration < 0 {
		return fmt.Errorf("invalid game.pulse_duration %s", c.Game.PulseDuration)
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("invalid timing.frame_rate %d", c.Timing.FrameRate)
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("invalid window.cell_size %d", c.Window.CellSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("invalid audio.volume %.2f", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio.sample_rate %d", c.Audio.SampleRate)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// FrameInterval returns the wall time of one frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.FrameRate)
}

// GameOptions maps the game section onto engine options
func (c *Config) GameOptions() tetris.Options {
	mode, _ := tetris.ParseClearMode(c.Game.ClearMode)
	return tetris.Options{
		Seed:          c.Game.Seed,
		ClearMode:     mode,
		StartLevel:    c.Game.StartLevel,
		PulseDuration: c.Game.PulseDuration,
	}
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			ClearMode:     "classic",
			PulseDuration: tetris.DefaultPulseDuration,
		},
		Timing: TimingConfig{
			FrameRate: 60,
		},
		Window: WindowConfig{
			Width:    480,
			Height:   720,
			CellSize: 32,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
