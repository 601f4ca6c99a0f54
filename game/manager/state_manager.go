package manager

import "time"

// SessionStats is a summary of one game session. Nothing here outlives
// the session.
type SessionStats struct {
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Ticks      int           `json:"ticks"`
	FoodEaten  int           `json:"foodEaten"`
	Length     int           `json:"length"`
	PeakLength int           `json:"peakLength"`
	Cause      CollisionType `json:"cause"`
}

// Duration returns how long the session ran. A session that has not ended
// is measured up to now.
func (s SessionStats) Duration(now time.Time) time.Duration {
	end := s.EndTime
	if end.IsZero() {
		end = now
	}
	return end.Sub(s.StartTime)
}

// StateManager keeps the running counters of a session.
type StateManager struct {
	now   func() time.Time
	stats SessionStats
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		now: now,
		stats: SessionStats{
			StartTime:  now(),
			Length:     1,
			PeakLength: 1,
		},
	}
}

// RecordTick is called once per executed move.
func (sm *StateManager) RecordTick(length int) {
	sm.stats.Ticks++
	sm.stats.Length = length
	if length > sm.stats.PeakLength {
		sm.stats.PeakLength = length
	}
}

func (sm *StateManager) RecordMeal() {
	sm.stats.FoodEaten++
}

// RecordDeath closes the session summary.
func (sm *StateManager) RecordDeath(cause CollisionType) {
	sm.stats.Ticks++
	sm.stats.Cause = cause
	sm.stats.EndTime = sm.now()
}

// Close marks the end of a session that ended without a death.
func (sm *StateManager) Close() {
	if sm.stats.EndTime.IsZero() {
		sm.stats.EndTime = sm.now()
	}
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
