package audio

import (
	"fmt"
	"sync"
)

// Recorder is a Player that logs every call, for tests.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) Play(t Track) { r.add(fmt.Sprintf("play %s", t)) }
func (r *Recorder) Pause(t Track) { r.add(fmt.Sprintf("pause %s", t)) }
func (r *Recorder) Collect() { r.add("collect") }
func (r *Recorder) Close() error {
	r.add("close")
	return nil
}

func (r *Recorder) add(call string) {
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
}

// Calls returns the recorded calls and clears the log.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.calls
	r.calls = nil
	return out
}
