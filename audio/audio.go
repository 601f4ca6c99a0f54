// Package audio switches the phone's background music between the home
// theme and the game track and plays the food cue.
package audio

import (
	"sync"

	"github.com/rs/zerolog"
)

// Track is one of the looping music tracks.
type Track int

const (
	Theme Track = iota
	Game
)

func (t Track) String() string {
	if t == Game {
		return "game"
	}
	return "theme"
}

// Player plays the two music tracks and the collect cue. Implementations
// must tolerate Pause on a track that is not playing.
type Player interface {
	Play(Track)
	Pause(Track)
	Collect()
	Close() error
}

// Nop is a Player that does nothing.
type Nop struct{}

func (Nop) Play(Track) {}
func (Nop) Pause(Track) {}
func (Nop) Collect() {}
func (Nop) Close() error { return nil }

// Switcher applies the music rules of the phone shell to a Player.
type Switcher struct {
	mu      sync.Mutex
	player  Player
	started bool
	log     zerolog.Logger
}

func NewSwitcher(p Player, log zerolog.Logger) *Switcher {
	if p == nil {
		p = Nop{}
	}
	return &Switcher{player: p, log: log}
}

// AppOpened runs before the app named key is shown. The first open starts
// the theme.
func (s *Switcher) AppOpened(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.started = true
		s.player.Play(Theme)
		s.log.Debug().Msg("theme music started")
	}

	switch key {
	case "game":
		s.player.Pause(Theme)
		s.player.Play(Game)
		s.log.Debug().Msg("switched to game music")
	case "video":
		s.player.Pause(Theme)
		s.log.Debug().Msg("theme paused for video")
	}
}

// AppClosed runs when the app named key goes back to the home grid.
func (s *Switcher) AppClosed(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "game":
		s.player.Pause(Game)
		s.player.Play(Theme)
		s.log.Debug().Msg("switched back to theme music")
	case "video":
		if s.started {
			s.player.Play(Theme)
		}
	}
}

// Collect plays the food cue.
func (s *Switcher) Collect() {
	s.player.Collect()
}

func (s *Switcher) Close() error {
	return s.player.Close()
}
