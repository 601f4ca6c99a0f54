package game

import (
	"sync"
	"time"

	"glitch-phone/game/manager"
	"glitch-phone/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Status is the lifecycle position of an Engine.
type Status int

const (
	Idle Status = iota
	Running
	Over
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "idle"
	}
}

// FrameSink receives every frame a session produces. OnFrame runs on the
// session goroutine: it must return quickly and must not call Start or Stop.
type FrameSink interface {
	OnFrame(Frame)
}

// FrameFunc adapts a plain function to FrameSink.
type FrameFunc func(Frame)

func (f FrameFunc) OnFrame(fr Frame) { f(fr) }

// Option configures an Engine.
type Option func(*Engine)

// WithTickInterval sets the period between ticks.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithTicker replaces the ticker factory, mainly for tests.
func WithTicker(f TickerFactory) Option {
	return func(e *Engine) {
		if f != nil {
			e.newTicker = f
		}
	}
}

// WithSeed fixes the food placement seed. Zero means time based.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithClock sets the clock used for session stats.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// Engine runs at most one snake session at a time.
type Engine struct {
	// lifecycle serializes Start and Stop; mu guards session and its state.
	lifecycle sync.Mutex
	mu        sync.Mutex

	sink      FrameSink
	interval  time.Duration
	newTicker TickerFactory
	seed      uint64
	now       func() time.Time
	log       zerolog.Logger

	session *Session
}

func NewEngine(sink FrameSink, opts ...Option) *Engine {
	e := &Engine{
		sink:      sink,
		interval:  types.TickInterval,
		newTicker: NewTimeTicker,
		now:       time.Now,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sink == nil {
		e.sink = FrameFunc(func(Frame) {})
	}
	return e
}

// Session is the handle of one Start..Stop lifetime.
type Session struct {
	id     string
	state  *State
	ticker Ticker
	last   Frame
	over   bool

	done     chan struct{}
	finished chan struct{}
	haltOnce sync.Once
}

func (s *Session) ID() string { return s.id }

func (s *Session) Grid() types.Grid { return s.state.Grid() }

// Done is closed once the session goroutine has exited, after a death or
// a Stop.
func (s *Session) Done() <-chan struct{} { return s.finished }

// Start begins a new session on grid. A running or finished session is
// stopped first, so two sessions never tick at once.
func (e *Engine) Start(grid types.Grid) (*Session, error) {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	e.stopLocked()

	seed := e.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state, err := NewState(grid, rand.New(rand.NewSource(seed)), e.now)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.New().String(),
		state:    state,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	s.last = s.stamp(state.Frame())

	e.mu.Lock()
	s.ticker = e.newTicker(e.interval)
	e.session = s
	e.mu.Unlock()

	e.log.Info().
		Str("session", s.id).
		Stringer("grid", grid).
		Dur("interval", e.interval).
		Msg("snake session started")

	go e.run(s, s.last)
	return s, nil
}

// Stop cancels the active session and returns the engine to Idle. No frame
// is delivered after Stop returns. Stopping an idle engine is a no-op.
func (e *Engine) Stop() {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	e.mu.Lock()
	s := e.session
	e.session = nil
	var stats manager.SessionStats
	if s != nil {
		s.state.close()
		stats = s.state.Stats()
	}
	e.mu.Unlock()

	if s == nil {
		return
	}
	s.halt()
	<-s.finished

	e.log.Info().
		Str("session", s.id).
		Int("length", stats.Length).
		Int("ticks", stats.Ticks).
		Int("food", stats.FoodEaten).
		Dur("duration", stats.Duration(e.now())).
		Msg("snake session stopped")
}

// SetDirection buffers a heading for the next tick. Reversals, requests
// with no session and requests after death are ignored.
func (e *Engine) SetDirection(dir types.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.over {
		return
	}
	s.state.RequestDirection(dir)
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.session == nil:
		return Idle
	case e.session.over:
		return Over
	default:
		return Running
	}
}

// Alive reports whether a session is ticking with a live snake.
func (e *Engine) Alive() bool {
	return e.Status() == Running
}

// Frame returns the latest frame of the current session.
func (e *Engine) Frame() (Frame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return Frame{}, false
	}
	return e.session.last, true
}

// Stats returns the running summary of the current session.
func (e *Engine) Stats() (manager.SessionStats, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return manager.SessionStats{}, false
	}
	return e.session.state.Stats(), true
}

// run is the session goroutine. Frames are delivered from here only, so
// they reach the sink in tick order.
func (e *Engine) run(s *Session, initial Frame) {
	defer close(s.finished)
	defer s.ticker.Stop()

	e.sink.OnFrame(initial)

	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C():
			frame, ok := e.tick(s)
			if !ok {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			e.sink.OnFrame(frame)
			if !frame.Alive {
				return
			}
		}
	}
}

// tick advances s by one step. It refuses to touch a session that is no
// longer the active one.
func (e *Engine) tick(s *Session) (Frame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != s || s.over {
		e.log.Debug().Str("session", s.id).Msg("dropping tick for inactive session")
		return Frame{}, false
	}

	frame := s.stamp(s.state.Advance())
	s.last = frame

	if !frame.Alive {
		s.over = true
		s.ticker.Stop()
		stats := s.state.Stats()
		e.log.Info().
			Str("session", s.id).
			Int("length", stats.Length).
			Int("ticks", stats.Ticks).
			Int("food", stats.FoodEaten).
			Stringer("head", frame.Head()).
			Msg("snake collided with itself")
	}
	return frame, true
}

func (s *Session) stamp(f Frame) Frame {
	f.SessionID = s.id
	return f
}

func (s *Session) halt() {
	s.haltOnce.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}
