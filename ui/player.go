package ui

import (
	"os"
	"sync"

	"glitch-phone/audio"
	"glitch-phone/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type command struct {
	track audio.Track
	play  bool
}

// RaylibPlayer streams the theme and game music from files through the
// raylib audio device. Missing files are skipped. Calls may come from any
// goroutine; they are queued and applied by Update on the window thread.
type RaylibPlayer struct {
	mu      sync.Mutex
	queue   []command
	collect bool

	music   map[audio.Track]rl.Music
	started map[audio.Track]bool
	cue     rl.Sound
	hasCue  bool
	log     zerolog.Logger
}

// NewRaylibPlayer opens the audio device and loads the configured files.
// It must run on the window thread after InitWindow.
func NewRaylibPlayer(cfg config.AudioConfig, log zerolog.Logger) *RaylibPlayer {
	rl.InitAudioDevice()
	p := &RaylibPlayer{
		music:   make(map[audio.Track]rl.Music),
		started: make(map[audio.Track]bool),
		log:     log,
	}
	for track, path := range map[audio.Track]string{audio.Theme: cfg.Theme, audio.Game: cfg.Game} {
		if !exists(path) {
			log.Warn().Str("file", path).Stringer("track", track).Msg("music file missing, track disabled")
			continue
		}
		m := rl.LoadMusicStream(path)
		rl.SetMusicVolume(m, float32(cfg.Volume))
		p.music[track] = m
	}
	if exists(cfg.Collect) {
		p.cue = rl.LoadSound(cfg.Collect)
		rl.SetSoundVolume(p.cue, float32(cfg.Volume))
		p.hasCue = true
	}
	return p
}

func (p *RaylibPlayer) Play(t audio.Track) { p.push(command{track: t, play: true}) }
func (p *RaylibPlayer) Pause(t audio.Track) { p.push(command{track: t}) }

func (p *RaylibPlayer) Collect() {
	p.mu.Lock()
	p.collect = true
	p.mu.Unlock()
}

func (p *RaylibPlayer) push(c command) {
	p.mu.Lock()
	p.queue = append(p.queue, c)
	p.mu.Unlock()
}

// Update applies queued commands and feeds the music buffers. Call it once
// per drawn frame.
func (p *RaylibPlayer) Update() {
	p.mu.Lock()
	queue, collect := p.queue, p.collect
	p.queue, p.collect = nil, false
	p.mu.Unlock()

	for _, c := range queue {
		m, ok := p.music[c.track]
		if !ok {
			continue
		}
		switch {
		case !c.play:
			rl.PauseMusicStream(m)
		case p.started[c.track]:
			rl.ResumeMusicStream(m)
		default:
			rl.PlayMusicStream(m)
			p.started[c.track] = true
		}
	}
	if collect && p.hasCue {
		rl.PlaySound(p.cue)
	}
	for _, m := range p.music {
		rl.UpdateMusicStream(m)
	}
}

func (p *RaylibPlayer) Close() error {
	for _, m := range p.music {
		rl.StopMusicStream(m)
		rl.UnloadMusicStream(m)
	}
	if p.hasCue {
		rl.UnloadSound(p.cue)
	}
	rl.CloseAudioDevice()
	return nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
