package engine

import (
	"sync"
	"time"
)

// ManualScheduler drives ticks from test code without wall-clock delay. At
// most one callback is armed at a time, matching how the loop schedules.
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
	armedID uint64
	seq     uint64

	// Delays records every requested delay in schedule order
	Delays []time.Duration
}

// NewManualScheduler creates a controllable scheduler for tests
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleOnce arms fn and records the requested delay
func (m *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := m.seq
	m.pending = fn
	m.armedID = id
	m.Delays = append(m.Delays, delay)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.armedID == id {
			m.pending = nil
			m.armedID = 0
		}
	}
}

// Fire runs the armed callback and reports whether one ran. The callback
// typically re-arms the scheduler, so tests loop over Fire to advance frames.
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	fn := m.pending
	m.pending = nil
	m.armedID = 0
	m.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Pending reports whether a callback is armed
func (m *ManualScheduler) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}
