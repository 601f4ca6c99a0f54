package config

import "flag"

// Flags holds command-line overrides bound to a FlagSet.
type Flags struct {
	fs     *flag.FlagSet
	path   *string
	values Config
}

// BindFlags registers the config flags on fs. Their defaults are the
// compiled-in defaults; only flags set explicitly override the file.
func BindFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs, values: d}

	f.path = fs.String("config", "", "Path to a TOML config file")
	fs.DurationVar(&f.values.Game.TickInterval.Duration, "tick", d.Game.TickInterval.Duration, "Time between snake steps")
	fs.IntVar(&f.values.Game.CellSize, "cell", d.Game.CellSize, "Cell size in pixels")
	fs.IntVar(&f.values.Game.DisplayWidth, "width", d.Game.DisplayWidth, "Game display width in pixels")
	fs.IntVar(&f.values.Game.DisplayHeight, "height", d.Game.DisplayHeight, "Game display height in pixels")
	fs.Uint64Var(&f.values.Game.Seed, "seed", d.Game.Seed, "Food placement seed (0 = time based)")
	fs.BoolVar(&f.values.Audio.Enabled, "audio", d.Audio.Enabled, "Enable music and sound effects")
	fs.Float64Var(&f.values.Audio.Volume, "volume", d.Audio.Volume, "Audio volume between 0 and 1")
	fs.StringVar(&f.values.Log.Level, "log-level", d.Log.Level, "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&f.values.Log.Format, "log-format", d.Log.Format, "Log format (console or json)")
	fs.StringVar(&f.values.Log.File, "log-file", d.Log.File, "Write logs to this file instead of stderr")
	return f
}

// Load reads the config file named by -config and applies explicitly set
// flags over it, then validates the result.
func (f *Flags) Load() (Config, error) {
	cfg, err := Load(*f.path)
	if err != nil {
		return cfg, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "tick":
			cfg.Game.TickInterval = f.values.Game.TickInterval
		case "cell":
			cfg.Game.CellSize = f.values.Game.CellSize
		case "width":
			cfg.Game.DisplayWidth = f.values.Game.DisplayWidth
		case "height":
			cfg.Game.DisplayHeight = f.values.Game.DisplayHeight
		case "seed":
			cfg.Game.Seed = f.values.Game.Seed
		case "audio":
			cfg.Audio.Enabled = f.values.Audio.Enabled
		case "volume":
			cfg.Audio.Volume = f.values.Audio.Volume
		case "log-level":
			cfg.Log.Level = f.values.Log.Level
		case "log-format":
			cfg.Log.Format = f.values.Log.Format
		case "log-file":
			cfg.Log.File = f.values.Log.File
		}
	})
	return cfg, cfg.Validate()
}

// Parse binds the flags on the default command line and loads the config.
func Parse() (Config, error) {
	f := BindFlags(flag.CommandLine)
	flag.Parse()
	return f.Load()
}
