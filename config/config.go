// Package config loads the runtime settings of both frontends: compiled-in
// defaults, then an optional TOML file, then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"glitch-phone/game/types"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidTick    = errors.New("tick interval must be positive")
	ErrInvalidCell    = errors.New("cell size must be positive")
	ErrInvalidDisplay = errors.New("display too small for a playable grid")
	ErrInvalidLevel   = errors.New("unknown log level")
	ErrInvalidVolume  = errors.New("volume must be between 0 and 1")
	ErrInvalidFormat  = errors.New("log format must be console or json")
)

// Duration is a time.Duration written as a string ("120ms") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

type GameConfig struct {
	TickInterval  Duration `toml:"tick_interval"`
	CellSize      int      `toml:"cell_size"`
	DisplayWidth  int      `toml:"display_width"`
	DisplayHeight int      `toml:"display_height"`
	Seed          uint64   `toml:"seed"` // 0 picks a time based seed
}

// Grid is the board derived from the display and cell sizes.
func (g GameConfig) Grid() types.Grid {
	return types.GridForDisplay(g.DisplayWidth, g.DisplayHeight, g.CellSize)
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Theme   string  `toml:"theme"`
	Game    string  `toml:"game"`
	Collect string  `toml:"collect"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

func Default() Config {
	return Config{
		Game: GameConfig{
			TickInterval:  Duration{types.TickInterval},
			CellSize:      types.CellSize,
			DisplayWidth:  types.DisplayWidth,
			DisplayHeight: types.DisplayHeight,
		},
		Audio: AudioConfig{
			Enabled: true,
			Theme:   "sounds/theme.mp3",
			Game:    "sounds/game.mp3",
			Collect: "sounds/collect.mp3",
			Volume:  0.35,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies TOML data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate reports every problem with cfg at once.
func (c Config) Validate() error {
	var errs []error
	if c.Game.TickInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTick, c.Game.TickInterval))
	}
	if c.Game.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidCell, c.Game.CellSize))
	} else if g := c.Game.Grid(); !g.Valid() {
		errs = append(errs, fmt.Errorf("%w: %dx%d gives %s", ErrInvalidDisplay,
			c.Game.DisplayWidth, c.Game.DisplayHeight, g))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Log.Format))
	}
	return errors.Join(errs...)
}
