package engine

import "time"

// Scheduler is the single timer primitive the loop uses: fire fn once after
// delay. The returned cancel stops a pending callback; cancelling after the
// callback fired is a no-op. No multi-shot timers, so loop control stays
// inside the tick itself.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules on the runtime timer heap
type TimerScheduler struct{}

// NewTimerScheduler creates the production scheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// ScheduleOnce fires fn once after delay on a timer goroutine
func (s *TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
