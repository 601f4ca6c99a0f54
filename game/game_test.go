package game

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"glitch-phone/game/types"
)

type manualTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop() { m.stopped.Store(true) }

type harness struct {
	t       *testing.T
	engine  *Engine
	frames  chan Frame
	mu      sync.Mutex
	tickers []*manualTicker
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, frames: make(chan Frame, 256)}
	h.engine = NewEngine(
		FrameFunc(func(f Frame) { h.frames <- f }),
		WithSeed(11),
		WithTicker(func(time.Duration) Ticker {
			tk := &manualTicker{c: make(chan time.Time)}
			h.mu.Lock()
			h.tickers = append(h.tickers, tk)
			h.mu.Unlock()
			return tk
		}),
	)
	t.Cleanup(h.engine.Stop)
	return h
}

func (h *harness) ticker() *manualTicker {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tickers[len(h.tickers)-1]
}

func (h *harness) start(grid types.Grid) *Session {
	h.t.Helper()
	s, err := h.engine.Start(grid)
	if err != nil {
		h.t.Fatalf("Start: %v", err)
	}
	if f := h.next(); f.Tick != 0 || f.SessionID != s.ID() {
		h.t.Fatalf("expected initial frame of %s, got %+v", s.ID(), f)
	}
	return s
}

// step fires one tick and returns the resulting frame.
func (h *harness) step() Frame {
	h.t.Helper()
	select {
	case h.ticker().c <- time.Now():
	case <-time.After(2 * time.Second):
		h.t.Fatal("session goroutine did not accept the tick")
	}
	return h.next()
}

func (h *harness) next() Frame {
	h.t.Helper()
	select {
	case f := <-h.frames:
		return f
	case <-time.After(2 * time.Second):
		h.t.Fatal("timed out waiting for a frame")
	}
	return Frame{}
}

func (h *harness) expectNoFrame() {
	h.t.Helper()
	select {
	case f := <-h.frames:
		h.t.Fatalf("unexpected frame %+v", f)
	case <-time.After(50 * time.Millisecond):
	}
}

// arrange replaces the board of the running session.
func (h *harness) arrange(body []types.Point, heading types.Direction, food types.Point) {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()
	h.engine.session.state.place(body, heading, food)
}

func TestEngineStraightRun(t *testing.T) {
	h := newHarness(t)
	h.start(types.GridForDisplay(types.DisplayWidth, types.DisplayHeight, types.CellSize))
	h.arrange([]types.Point{{X: 13, Y: 11}}, types.Right, types.Point{X: 0, Y: 0})

	var f Frame
	for i := 0; i < 3; i++ {
		f = h.step()
	}

	if f.Head() != (types.Point{X: 16, Y: 11}) || len(f.Snake) != 1 {
		t.Errorf("expected single cell at (16,11), got %v", f.Snake)
	}
	if f.Tick != 3 || !f.Alive {
		t.Errorf("unexpected frame %+v", f)
	}
	if h.engine.Status() != Running || !h.engine.Alive() {
		t.Errorf("status = %s", h.engine.Status())
	}
}

func TestEngineReversalIgnored(t *testing.T) {
	h := newHarness(t)
	h.start(types.Grid{Columns: 26, Rows: 22})
	h.arrange([]types.Point{{X: 13, Y: 11}}, types.Right, types.Point{X: 0, Y: 0})

	h.engine.SetDirection(types.Left)
	f := h.step()

	if f.Head() != (types.Point{X: 14, Y: 11}) {
		t.Errorf("expected head (14,11), got %s", f.Head())
	}
}

func TestEngineDirectionVisibleAtNextTick(t *testing.T) {
	h := newHarness(t)
	h.start(types.Grid{Columns: 26, Rows: 22})
	h.arrange([]types.Point{{X: 13, Y: 11}}, types.Right, types.Point{X: 0, Y: 0})

	h.engine.SetDirection(types.Up)
	h.engine.SetDirection(types.Down)
	f := h.step()
	if f.Head() != (types.Point{X: 13, Y: 12}) || f.Direction != types.Down {
		t.Fatalf("expected move down to (13,12), got %s heading %s", f.Head(), f.Direction)
	}

	f = h.step()
	if f.Head() != (types.Point{X: 13, Y: 13}) {
		t.Errorf("heading should persist without input, got %s", f.Head())
	}
}

func TestEngineEatAndGrow(t *testing.T) {
	h := newHarness(t)
	h.start(types.Grid{Columns: 26, Rows: 22})
	h.arrange([]types.Point{{X: 13, Y: 11}}, types.Right, types.Point{X: 14, Y: 11})

	f := h.step()

	if !f.Ate || len(f.Snake) != 2 {
		t.Fatalf("expected growth to 2, got ate=%v len=%d", f.Ate, len(f.Snake))
	}
	for _, c := range f.Snake {
		if c == f.Food {
			t.Fatalf("new food %s on snake", f.Food)
		}
	}
	if st, ok := h.engine.Stats(); !ok || st.FoodEaten != 1 {
		t.Errorf("stats = %+v ok=%v", st, ok)
	}
}

func TestEngineSelfCollisionEndsSession(t *testing.T) {
	h := newHarness(t)
	s := h.start(types.Grid{Columns: 6, Rows: 6})
	h.arrange([]types.Point{
		{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}, types.Right, types.Point{X: 5, Y: 5})

	h.engine.SetDirection(types.Down)
	if f := h.step(); !f.Alive {
		t.Fatal("died too early")
	}
	h.engine.SetDirection(types.Left)
	if f := h.step(); !f.Alive {
		t.Fatal("died too early")
	}
	h.engine.SetDirection(types.Up)
	f := h.step()
	if f.Alive {
		t.Fatal("expected the terminal frame")
	}

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session goroutine kept running after death")
	}
	if !h.ticker().stopped.Load() {
		t.Error("ticker should be stopped on death")
	}
	if h.engine.Status() != Over || h.engine.Alive() {
		t.Errorf("status = %s", h.engine.Status())
	}

	h.engine.SetDirection(types.Right)
	last, ok := h.engine.Frame()
	if !ok || last.Alive || last.Direction != types.Up {
		t.Errorf("input after death changed the session: %+v", last)
	}

	h.engine.Stop()
	h.expectNoFrame()
	if h.engine.Status() != Idle {
		t.Errorf("status after stop = %s", h.engine.Status())
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	h := newHarness(t)
	s := h.start(types.Grid{Columns: 10, Rows: 10})
	h.step()

	h.engine.Stop()
	h.engine.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("session goroutine still running after Stop")
	}
	if !h.ticker().stopped.Load() {
		t.Error("ticker not stopped")
	}
	if h.engine.Status() != Idle {
		t.Errorf("status = %s", h.engine.Status())
	}
	if _, ok := h.engine.Frame(); ok {
		t.Error("idle engine should have no frame")
	}
	h.engine.SetDirection(types.Up)
	h.expectNoFrame()
}

func TestEngineStartReplacesSession(t *testing.T) {
	h := newHarness(t)
	first := h.start(types.Grid{Columns: 10, Rows: 10})
	firstTicker := h.ticker()

	second := h.start(types.Grid{Columns: 12, Rows: 8})

	if first.ID() == second.ID() {
		t.Fatal("sessions must have distinct ids")
	}
	select {
	case <-first.Done():
	default:
		t.Fatal("previous session still running")
	}
	if !firstTicker.stopped.Load() {
		t.Error("previous ticker not cancelled")
	}

	f := h.step()
	if f.SessionID != second.ID() || f.Grid != (types.Grid{Columns: 12, Rows: 8}) {
		t.Errorf("frame from wrong session: %+v", f)
	}
}

func TestEngineDropsStaleTick(t *testing.T) {
	h := newHarness(t)
	first := h.start(types.Grid{Columns: 10, Rows: 10})
	h.start(types.Grid{Columns: 10, Rows: 10})

	if _, ok := h.engine.tick(first); ok {
		t.Fatal("tick for a replaced session must be refused")
	}
	if first.state.Tick() != 0 {
		t.Errorf("stale session advanced to tick %d", first.state.Tick())
	}
}

func TestEngineRejectsSmallGrid(t *testing.T) {
	h := newHarness(t)
	_, err := h.engine.Start(types.Grid{Columns: 2, Rows: 2})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if h.engine.Status() != Idle {
		t.Errorf("status = %s", h.engine.Status())
	}
	h.expectNoFrame()
}

func TestEngineSetDirectionBeforeStart(t *testing.T) {
	h := newHarness(t)
	h.engine.SetDirection(types.Up)
	h.engine.Stop()
	if h.engine.Status() != Idle {
		t.Errorf("status = %s", h.engine.Status())
	}
}

func TestEngineWithRealTicker(t *testing.T) {
	frames := make(chan Frame, 64)
	e := NewEngine(FrameFunc(func(f Frame) { frames <- f }), WithTickInterval(5*time.Millisecond), WithSeed(3))
	if _, err := e.Start(types.Grid{Columns: 26, Rows: 22}); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	var got []Frame
	for len(got) < 4 {
		select {
		case f := <-frames:
			got = append(got, f)
		case <-deadline:
			t.Fatalf("only %d frames arrived", len(got))
		}
	}
	e.Stop()

	for i := 1; i < len(got); i++ {
		if got[i].Tick != got[i-1].Tick+1 {
			t.Fatalf("frames out of order: %d then %d", got[i-1].Tick, got[i].Tick)
		}
	}

	drained := len(frames)
	time.Sleep(30 * time.Millisecond)
	if len(frames) != drained {
		t.Error("frames delivered after Stop returned")
	}
}
