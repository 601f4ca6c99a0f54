package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

var (
	themeNotes = []note{
		{220.00, 400 * time.Millisecond}, {261.63, 400 * time.Millisecond},
		{329.63, 400 * time.Millisecond}, {261.63, 400 * time.Millisecond},
		{196.00, 400 * time.Millisecond}, {246.94, 400 * time.Millisecond},
		{293.66, 800 * time.Millisecond}, {0, 400 * time.Millisecond},
	}
	gameNotes = []note{
		{440.00, 120 * time.Millisecond}, {0, 120 * time.Millisecond},
		{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond},
		{587.33, 120 * time.Millisecond}, {0, 120 * time.Millisecond},
		{493.88, 240 * time.Millisecond},
	}
	collectNotes = []note{
		{987.77, 60 * time.Millisecond}, {1318.51, 90 * time.Millisecond},
	}
)

// Beep synthesizes the music and the collect cue through the beep speaker.
type Beep struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	tracks map[Track]*beep.Ctrl
	live   bool
}

// NewBeep opens the default audio device. volume is linear, 0 to 1.
func NewBeep(volume float64) (*Beep, error) {
	b := newBeep(sampleRate, volume)
	if err := speaker.Init(b.sr, b.sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.live = true
	return b, nil
}

func newBeep(sr beep.SampleRate, volume float64) *Beep {
	b := &Beep{
		sr:     sr,
		volume: volume,
		mixer:  &beep.Mixer{},
		tracks: map[Track]*beep.Ctrl{
			Theme: {Streamer: withVolume(newMelody(sr, themeNotes), volume), Paused: true},
			Game:  {Streamer: withVolume(newMelody(sr, gameNotes), volume), Paused: true},
		},
	}
	b.mixer.Add(b.tracks[Theme], b.tracks[Game])
	return b
}

func (b *Beep) Play(t Track) { b.setPaused(t, false) }

func (b *Beep) Pause(t Track) { b.setPaused(t, true) }

func (b *Beep) setPaused(t Track, paused bool) {
	b.lock()
	defer b.unlock()
	if ctrl, ok := b.tracks[t]; ok {
		ctrl.Paused = paused
	}
}

// Collect mixes a short two-note chime over whatever is playing.
func (b *Beep) Collect() {
	cue := beep.Take(b.sr.N(150*time.Millisecond), newMelody(b.sr, collectNotes))
	b.lock()
	defer b.unlock()
	b.mixer.Add(withVolume(cue, b.volume))
}

func (b *Beep) Close() error {
	b.lock()
	b.mixer.Clear()
	b.unlock()
	if b.live {
		speaker.Close()
		b.live = false
	}
	return nil
}

// lock guards the streamers against the speaker goroutine when one runs.
func (b *Beep) lock() {
	b.mu.Lock()
	if b.live {
		speaker.Lock()
	}
}

func (b *Beep) unlock() {
	if b.live {
		speaker.Unlock()
	}
	b.mu.Unlock()
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// melody cycles through its notes forever.
type melody struct {
	sr    beep.SampleRate
	notes []note
	pos   int
	cur   beep.Streamer
}

func newMelody(sr beep.SampleRate, notes []note) *melody {
	return &melody{sr: sr, notes: notes}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.cur == nil {
			m.cur = m.next()
		}
		k, more := m.cur.Stream(samples[n:])
		n += k
		if !more || k == 0 {
			m.cur = nil
		}
	}
	return n, true
}

func (m *melody) Err() error { return nil }

func (m *melody) next() beep.Streamer {
	nt := m.notes[m.pos%len(m.notes)]
	m.pos++

	length := m.sr.N(nt.dur)
	if nt.freq <= 0 {
		return beep.Silence(length)
	}
	tone, err := generators.SineTone(m.sr, nt.freq)
	if err != nil {
		return beep.Silence(length)
	}
	return beep.Take(length, tone)
}
