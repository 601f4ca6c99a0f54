package terminal

import (
	"glitch-phone/game"
	"glitch-phone/game/types"
	"glitch-phone/input"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Controller is the engine surface the terminal loop needs.
type Controller interface {
	Start(types.Grid) (*game.Session, error)
	Stop()
	SetDirection(types.Direction)
}

// ArrowKeys maps the tcell arrow keys.
var ArrowKeys = input.Keymap[tcell.Key]{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// Game owns the tcell event loop for one terminal.
type Game struct {
	screen   tcell.Screen
	engine   Controller
	renderer *Renderer
	grid     types.Grid
	runes    input.Keymap[rune]
	log      zerolog.Logger
}

func NewGame(screen tcell.Screen, engine Controller, renderer *Renderer, grid types.Grid, log zerolog.Logger) *Game {
	return &Game{
		screen:   screen,
		engine:   engine,
		renderer: renderer,
		grid:     grid,
		runes:    input.Runes('w', 'a', 's', 'd'),
		log:      log,
	}
}

// Run starts a session and processes events until the player quits.
func (g *Game) Run() error {
	if _, err := g.engine.Start(g.grid); err != nil {
		return err
	}
	defer g.engine.Stop()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !g.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one tcell event and reports whether to keep running.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				if _, err := g.engine.Start(g.grid); err != nil {
					g.log.Error().Err(err).Msg("restart failed")
				}
				return true
			}
			g.runes.Dispatch(g.engine, ev.Rune())
		default:
			ArrowKeys.Dispatch(g.engine, ev.Key())
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Draw()
	case *tcell.EventInterrupt:
		g.renderer.Draw()
	}
	return true
}
