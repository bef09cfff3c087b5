package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine plays the bounce blip through the system speaker. Speaker init
// failure switches to silent mode instead of failing the host: the sim runs
// fine without audio.
type Engine struct {
	mu    sync.Mutex
	mixer *beep.Mixer

	initialized atomic.Bool
	silent      atomic.Bool
	muted       atomic.Bool

	// lastBlip throttles retrigger; many entities can bounce in one frame
	// and a 60 Hz blip stream is noise, not feedback
	lastBlip time.Time
}

// NewEngine creates an engine; Start opens the speaker
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Start opens the speaker and attaches the mixer. Returns nil even when the
// speaker cannot be opened; the engine just stays silent.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized.Load() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		e.silent.Store(true)
		e.initialized.Store(true)
		return nil
	}
	speaker.Play(e.mixer)
	e.initialized.Store(true)
	return nil
}

// Stop silences the mixer. beep has no speaker close; clearing the mixer
// drops all pending streamers.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized.Load() || e.silent.Load() {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}

// SetMuted toggles playback without touching the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// PlayBounce queues one blip, throttled to one per 50ms
func (e *Engine) PlayBounce() {
	if !e.initialized.Load() || e.silent.Load() || e.muted.Load() {
		return
	}

	e.mu.Lock()
	now := time.Now()
	if now.Sub(e.lastBlip) < 50*time.Millisecond {
		e.mu.Unlock()
		return
	}
	e.lastBlip = now
	e.mu.Unlock()

	speaker.Lock()
	e.mixer.Add(newBlip(sampleRate))
	speaker.Unlock()
}
