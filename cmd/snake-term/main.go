// Command snake-term plays the phone's snake game in a terminal.
package main

import (
	"fmt"
	"os"

	"glitch-phone/audio"
	"glitch-phone/config"
	"glitch-phone/game"
	"glitch-phone/shell"
	"glitch-phone/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snake-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	// The terminal owns stderr while the game runs.
	if cfg.Log.File == "" {
		cfg.Log.File = "snake-term.log"
	}
	log, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		b, err := audio.NewBeep(cfg.Audio.Volume)
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			player = b
		}
	}
	music := audio.NewSwitcher(player, log.With().Str("component", "audio").Logger())
	defer music.Close()

	renderer := terminal.NewRenderer(screen)
	engine := game.NewEngine(
		shell.Sink(music, renderer),
		game.WithTickInterval(cfg.Game.TickInterval.Duration),
		game.WithSeed(cfg.Game.Seed),
		game.WithLogger(log.With().Str("component", "engine").Logger()),
	)

	music.AppOpened(shell.GameKey)
	defer music.AppClosed(shell.GameKey)

	log.Info().Stringer("grid", cfg.Game.Grid()).Msg("starting terminal snake")
	return terminal.NewGame(screen, engine, renderer, cfg.Game.Grid(), log).Run()
}
