package main

import (
	"fmt"
	"os"

	"glitch-phone/audio"
	"glitch-phone/config"
	"glitch-phone/game"
	"glitch-phone/input"
	"glitch-phone/shell"
	"glitch-phone/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "glitch-phone:", err)
		os.Exit(1)
	}
	log, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "glitch-phone:", err)
		os.Exit(1)
	}
	defer closer.Close()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(480, 800, "Glitch Phone")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	var (
		player  audio.Player = audio.Nop{}
		rplayer *ui.RaylibPlayer
	)
	if cfg.Audio.Enabled {
		rplayer = ui.NewRaylibPlayer(cfg.Audio, log.With().Str("component", "audio").Logger())
		player = rplayer
	}
	music := audio.NewSwitcher(player, log.With().Str("component", "audio").Logger())
	defer music.Close()

	frames := &ui.FrameBox{}
	engine := game.NewEngine(
		shell.Sink(music, frames),
		game.WithTickInterval(cfg.Game.TickInterval.Duration),
		game.WithSeed(cfg.Game.Seed),
		game.WithLogger(log.With().Str("component", "engine").Logger()),
	)
	defer engine.Stop()

	grid := cfg.Game.Grid()
	sh := shell.New(engine, music, grid, log.With().Str("component", "shell").Logger())
	renderer := ui.NewRenderer(grid, int32(cfg.Game.CellSize), len(sh.Apps()), len(input.DefaultButtons()))

	log.Info().Stringer("grid", grid).Dur("tick", cfg.Game.TickInterval.Duration).Msg("phone ready")
	ui.NewPhone(sh, frames, renderer, rplayer, log).Run()
}
