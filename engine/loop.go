package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/physics"
)

// State is the loop lifecycle: Idle -> Running -> Stopped. Stopped is
// terminal; a fresh Loop is required to run again.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

var (
	// ErrNotIdle reports Start on a loop that already left Idle
	ErrNotIdle = errors.New("loop is not idle")
)

// LoopConfig carries everything the loop needs at construction. No globals;
// the host threads one of these through explicitly.
type LoopConfig struct {
	FPS         int
	ArenaWidth  float64
	ArenaHeight float64
	Pairwise    physics.Pairwise // nil selects NoopPairwise
	OnBounce    func()           // fired at most once per tick with any edge hit
	OnStop      func(error)      // fired on transition to Stopped; nil error on clean Stop
	Logger      *zap.Logger      // nil selects the nop logger
}

// Loop drives the fixed-rate update-collision-render cycle over a fixed
// population of circles. Single execution context: collision, advance and
// render for one tick complete before the next tick is scheduled, so ticks
// never overlap.
type Loop struct {
	mu sync.Mutex

	circles  []*core.Circle
	sink     core.Sink
	sched    Scheduler
	pairwise physics.Pairwise

	arenaW, arenaH float64
	dt             float64       // Exactly 1/FPS; velocity math never sees scheduling jitter
	frame          time.Duration // 1000/FPS in whole ms; at 60 FPS this is 16 ms, so 60 frames span 960 ms of wall clock

	state  State
	cancel func()
	ticks  uint64
	err    error

	onBounce func()
	onStop   func(error)

	log *zap.Logger
}

// NewLoop validates the configuration and builds an Idle loop. The circle
// slice is owned by the loop from here on; population is fixed for its
// lifetime.
func NewLoop(circles []*core.Circle, sink core.Sink, sched Scheduler, cfg LoopConfig) (*Loop, error) {
	if sink == nil {
		return nil, fmt.Errorf("new loop: nil sink")
	}
	if sched == nil {
		return nil, fmt.Errorf("new loop: nil scheduler")
	}
	if cfg.FPS < 1 {
		return nil, fmt.Errorf("new loop: fps %d < 1", cfg.FPS)
	}
	if cfg.FPS > 1000 {
		return nil, fmt.Errorf("new loop: fps %d rounds the frame interval to zero", cfg.FPS)
	}
	if cfg.ArenaWidth <= 0 || cfg.ArenaHeight <= 0 {
		return nil, fmt.Errorf("new loop: arena %gx%g not positive", cfg.ArenaWidth, cfg.ArenaHeight)
	}
	pairwise := cfg.Pairwise
	if pairwise == nil {
		pairwise = physics.NoopPairwise
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		circles:  circles,
		sink:     sink,
		sched:    sched,
		pairwise: pairwise,
		arenaW:   cfg.ArenaWidth,
		arenaH:   cfg.ArenaHeight,
		dt:       1 / float64(cfg.FPS),
		frame:    time.Duration(1000/cfg.FPS) * time.Millisecond,
		onBounce: cfg.OnBounce,
		onStop:   cfg.OnStop,
		log:      log,
	}, nil
}

// FrameDuration returns the scheduled inter-tick interval
func (l *Loop) FrameDuration() time.Duration {
	return l.frame
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// Err returns the error that stopped the loop, nil before Stopped or after a
// clean Stop
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Start transitions Idle -> Running and schedules the first tick
// immediately. Any other starting state fails with ErrNotIdle.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateIdle {
		return fmt.Errorf("start from %s: %w", l.state, ErrNotIdle)
	}
	l.state = StateRunning
	l.log.Info("loop started",
		zap.Duration("frame", l.frame),
		zap.Float64("dt", l.dt),
		zap.Int("entities", len(l.circles)))
	l.cancel = l.sched.ScheduleOnce(0, l.tick)
	return nil
}

// Stop transitions to Stopped and cancels any pending tick. Idempotent. No
// tick executes after Stop returns; a callback already in flight observes
// Stopped and does no work.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.state == StateStopped {
		l.mu.Unlock()
		return
	}
	wasRunning := l.state == StateRunning
	l.state = StateStopped
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	onStop := l.onStop
	ticks := l.ticks
	l.mu.Unlock()

	l.log.Info("loop stopped", zap.Uint64("ticks", ticks))
	if wasRunning && onStop != nil {
		onStop(nil)
	}
}

// tick runs one frame: resolve, advance, render, reschedule. A panic from
// the sink or a strategy stops the loop with the error recorded rather than
// continuing with partial state.
func (l *Loop) tick() {
	l.mu.Lock()
	if l.state != StateRunning {
		l.mu.Unlock()
		return
	}

	var tickErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				tickErr = fmt.Errorf("tick %d: %v", l.ticks, r)
			}
		}()
		l.runTick()
	}()

	if tickErr != nil {
		l.state = StateStopped
		l.err = tickErr
		l.cancel = nil
		onStop := l.onStop
		l.mu.Unlock()

		l.log.Error("tick failed, loop stopped", zap.Error(tickErr))
		if onStop != nil {
			onStop(tickErr)
		}
		return
	}

	l.ticks++
	l.cancel = l.sched.ScheduleOnce(l.frame, l.tick)
	l.mu.Unlock()
}

// runTick holds the per-frame ordering contract: edge check, pairwise hook,
// then advance, per entity in collection order; render pass after all
// entities moved. Check-before-advance makes the reversed velocity take
// effect in the same frame.
func (l *Loop) runTick() {
	bounced := false
	for _, c := range l.circles {
		hitX, hitY := physics.ReflectEdges(c, l.arenaW, l.arenaH)
		bounced = bounced || hitX || hitY
		l.pairwise(c, l.circles)
		c.Advance(l.dt)
	}

	l.sink.Clear()
	for _, c := range l.circles {
		c.Draw(l.sink)
	}
	if p, ok := l.sink.(core.Presenter); ok {
		p.Present()
	}

	if bounced && l.onBounce != nil {
		l.onBounce()
	}
}
