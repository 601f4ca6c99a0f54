package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"glitch-phone/game/types"

	"github.com/rs/zerolog"
)

func TestDefaultMatchesPhone(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Game.TickInterval.Duration != 120*time.Millisecond {
		t.Errorf("tick = %s", cfg.Game.TickInterval)
	}
	if g := cfg.Game.Grid(); g != (types.Grid{Columns: 26, Rows: 22}) {
		t.Errorf("grid = %s", g)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	data := []byte(`
[game]
tick_interval = "80ms"
cell_size = 20
seed = 42

[audio]
enabled = false

[log]
level = "debug"
format = "json"
`)
	cfg := Default()
	if err := Decode(data, &cfg); err != nil {
		t.Fatal(err)
	}

	if cfg.Game.TickInterval.Duration != 80*time.Millisecond {
		t.Errorf("tick = %s", cfg.Game.TickInterval)
	}
	if cfg.Game.Grid() != (types.Grid{Columns: 13, Rows: 11}) {
		t.Errorf("grid = %s", cfg.Game.Grid())
	}
	if cfg.Game.Seed != 42 || cfg.Audio.Enabled || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("decoded %+v", cfg)
	}
	if cfg.Audio.Volume != 0.35 || cfg.Game.DisplayWidth != 260 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	if err := Decode([]byte("[game]\nspeed = 3\n"), &cfg); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestDecodeRejectsBadDuration(t *testing.T) {
	cfg := Default()
	if err := Decode([]byte("[game]\ntick_interval = \"fast\"\n"), &cfg); err == nil {
		t.Fatal("expected an error for a bad duration")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Default()
	want.Game.Seed = 7
	data, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`tick_interval = '120ms'`)) && !bytes.Contains(data, []byte(`tick_interval = "120ms"`)) {
		t.Errorf("duration not encoded as text:\n%s", data)
	}

	var got Config
	if err := Decode(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Game.TickInterval = Duration{}
	cfg.Game.DisplayWidth = 20
	cfg.Audio.Volume = 2
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	for _, target := range []error{ErrInvalidTick, ErrInvalidDisplay, ErrInvalidVolume, ErrInvalidLevel, ErrInvalidFormat} {
		if !errors.Is(err, target) {
			t.Errorf("expected %v in %v", target, err)
		}
	}
	if errors.Is(err, ErrInvalidCell) {
		t.Error("cell size is fine")
	}
}

func TestValidateCellSize(t *testing.T) {
	cfg := Default()
	cfg.Game.CellSize = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a wrapped not-exist error, got %v", err)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phone.toml")
	if err := os.WriteFile(path, []byte("[game]\ncell_size = 20\nseed = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-seed", "9", "-tick", "60ms"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Game.CellSize != 20 {
		t.Errorf("file value lost: cell = %d", cfg.Game.CellSize)
	}
	if cfg.Game.Seed != 9 || cfg.Game.TickInterval.Duration != 60*time.Millisecond {
		t.Errorf("flags not applied: %+v", cfg.Game)
	}
}

func TestFlagsValidate(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse([]string{"-volume", "3"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("got %v", err)
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "json", zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Str("session", "abc").Msg("snake session started")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered")
	}
	if !strings.Contains(out, `"session":"abc"`) || !strings.Contains(out, `"message":"snake session started"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	log, closer, err := NewLogger(LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := NewLogger(LogConfig{Level: "chatty"}); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("got %v", err)
	}
}
