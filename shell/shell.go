package shell

import (
	"errors"
	"fmt"
	"sync"

	"glitch-phone/audio"
	"glitch-phone/game"
	"glitch-phone/game/types"

	"github.com/rs/zerolog"
)

var ErrUnknownApp = errors.New("unknown app")

// GameOverText replaces the direction buttons once the snake is dead.
const GameOverText = "Game Over - Refresh page"

// Runner is the part of game.Engine the shell drives.
type Runner interface {
	Start(types.Grid) (*game.Session, error)
	Stop()
	SetDirection(types.Direction)
	Status() game.Status
}

// Shell routes app opens and closes. It is safe for concurrent use but must
// not be called from a frame sink.
type Shell struct {
	mu     sync.Mutex
	apps   []App
	nav    *Navigator
	open   int // index into apps, -1 on the home grid
	runner Runner
	music  *audio.Switcher
	grid   types.Grid
	log    zerolog.Logger
}

func New(runner Runner, music *audio.Switcher, grid types.Grid, log zerolog.Logger) *Shell {
	if music == nil {
		music = audio.NewSwitcher(nil, log)
	}
	apps := DefaultApps()
	return &Shell{
		apps:   apps,
		nav:    NewNavigator(len(apps), Columns),
		open:   -1,
		runner: runner,
		music:  music,
		grid:   grid,
		log:    log,
	}
}

// Apps returns the registry in grid order.
func (s *Shell) Apps() []App {
	return append([]App(nil), s.apps...)
}

// Focused returns the index of the focused icon.
func (s *Shell) Focused() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Index()
}

// Navigate moves the focus on the home grid. It does nothing while an app
// is open.
func (s *Shell) Navigate(dir types.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open < 0 {
		s.nav.Move(dir)
	}
}

// Current returns the open app.
func (s *Shell) Current() (App, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open < 0 {
		return App{}, false
	}
	return s.apps[s.open], true
}

// Open shows the app named key, closing any other open app first. Opening
// the game starts a new snake session.
func (s *Shell) Open(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownApp, key)
	}
	return s.openLocked(i)
}

// OpenFocused opens the app under the focus.
func (s *Shell) OpenFocused() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked(s.nav.Index())
}

func (s *Shell) openLocked(i int) error {
	if s.open == i {
		return nil
	}
	s.closeLocked()

	key := s.apps[i].Key
	s.music.AppOpened(key)
	s.open = i
	s.nav.Focus(i)
	s.log.Debug().Str("app", key).Msg("app opened")

	if key == GameKey {
		if _, err := s.runner.Start(s.grid); err != nil {
			return fmt.Errorf("failed to start snake: %w", err)
		}
	}
	return nil
}

// Close returns to the home grid. Leaving the game stops the engine.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Shell) closeLocked() {
	if s.open < 0 {
		return
	}
	key := s.apps[s.open].Key
	if key == GameKey {
		s.runner.Stop()
	}
	s.music.AppClosed(key)
	s.open = -1
	s.log.Debug().Str("app", key).Msg("app closed")
}

// Restart begins a fresh snake session while the game is open.
func (s *Shell) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open < 0 || s.apps[s.open].Key != GameKey {
		return nil
	}
	if _, err := s.runner.Start(s.grid); err != nil {
		return fmt.Errorf("failed to restart snake: %w", err)
	}
	return nil
}

// SetDirection forwards steering to the engine while the game is open and
// running. After a death the controls are gone, so input is dropped.
func (s *Shell) SetDirection(dir types.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open < 0 || s.apps[s.open].Key != GameKey {
		return
	}
	if s.runner.Status() != game.Running {
		return
	}
	s.runner.SetDirection(dir)
}

// GameOver reports whether the game panel should show GameOverText.
func (s *Shell) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open >= 0 && s.apps[s.open].Key == GameKey && s.runner.Status() == game.Over
}

func (s *Shell) indexOf(key string) int {
	for i, a := range s.apps {
		if a.Key == key {
			return i
		}
	}
	return -1
}

// Sink wraps next so that every frame with a meal plays the collect cue.
func Sink(music *audio.Switcher, next game.FrameSink) game.FrameSink {
	return game.FrameFunc(func(f game.Frame) {
		if f.Ate && music != nil {
			music.Collect()
		}
		if next != nil {
			next.OnFrame(f)
		}
	})
}
