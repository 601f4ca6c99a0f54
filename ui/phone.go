package ui

import (
	"time"

	"glitch-phone/game/types"
	"glitch-phone/input"
	"glitch-phone/shell"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ArrowKeys maps the raylib arrow keys.
var ArrowKeys = input.Keymap[int32]{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

// Phone runs the window loop: it polls input, routes it through the shell
// and draws the latest frame.
type Phone struct {
	shell    *shell.Shell
	frames   *FrameBox
	renderer *Renderer
	player   *RaylibPlayer
	buttons  input.Buttons
	log      zerolog.Logger
}

func NewPhone(sh *shell.Shell, frames *FrameBox, renderer *Renderer, player *RaylibPlayer, log zerolog.Logger) *Phone {
	return &Phone{
		shell:    sh,
		frames:   frames,
		renderer: renderer,
		player:   player,
		buttons:  input.DefaultButtons(),
		log:      log,
	}
}

// Run blocks until the window is closed.
func (p *Phone) Run() {
	// Escape closes apps instead of the window.
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() {
		p.handleInput()
		if p.player != nil {
			p.player.Update()
		}
		p.renderer.Draw(p.view())
	}
	p.shell.Close()
}

func (p *Phone) handleInput() {
	layout := p.renderer.Layout()
	_, open := p.shell.Current()
	click := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	mouse := rl.GetMousePosition()

	if !open {
		for key := range ArrowKeys {
			if rl.IsKeyPressed(key) {
				d, _ := ArrowKeys.Lookup(key)
				p.shell.Navigate(d)
			}
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			p.open(p.shell.OpenFocused())
		}
		if click {
			if i := layout.IconAt(mouse); i >= 0 {
				p.open(p.shell.Open(p.shell.Apps()[i].Key))
			}
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) || (click && layout.BackAt(mouse)) {
		p.shell.Close()
		return
	}
	for key := range ArrowKeys {
		if rl.IsKeyPressed(key) {
			ArrowKeys.Dispatch(p.shell, key)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := p.shell.Restart(); err != nil {
			p.log.Error().Err(err).Msg("restart failed")
		}
	}
	if click {
		if i := layout.ButtonAt(mouse); i >= 0 && i < len(p.buttons) {
			p.buttons.Press(p.shell, p.buttons[i].Name)
		}
	}
}

func (p *Phone) open(err error) {
	if err != nil {
		p.log.Error().Err(err).Msg("failed to open app")
	}
}

func (p *Phone) view() View {
	v := View{
		Apps:    p.shell.Apps(),
		Focused: p.shell.Focused(),
		Now:     time.Now(),
	}
	for _, b := range p.buttons {
		v.Buttons = append(v.Buttons, b.Name)
	}
	if app, ok := p.shell.Current(); ok {
		v.Open = &app
		if app.Key == shell.GameKey {
			v.Frame, v.HasFrame = p.frames.Latest()
			v.GameOver = p.shell.GameOver()
		}
	}
	return v
}
