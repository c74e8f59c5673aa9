package countdown

import (
	"context"
	"time"
)

// State tracks the engine lifecycle. The only transition is Running →
// Finished, taken on the first observation of an expired snapshot.
type State int

const (
	StateRunning State = iota
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Slot names the four display sinks written on every active tick.
type Slot string

const (
	SlotDays    Slot = "days"
	SlotHours   Slot = "hours"
	SlotMinutes Slot = "minutes"
	SlotSeconds Slot = "seconds"
)

// Sink receives the rendered output of the engine. SetSlot is called once
// per slot per active tick with a two-digit zero-padded value; Finish is
// called exactly once, when the countdown expires, and replaces the whole
// display region.
type Sink interface {
	SetSlot(slot Slot, value string)
	Finish(message string)
}

// Engine owns the fixed target instant and the countdown state machine.
// It replaces the ambient globals of a typical page-script countdown with
// a single instance holding explicit lifecycle state.
type Engine struct {
	target  time.Time
	message string
	clock   Clock
	period  time.Duration
	state   State
	cancel  context.CancelFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the time source. Used by tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithPeriod overrides the 1 s tick period. Used by tests.
func WithPeriod(d time.Duration) Option {
	return func(e *Engine) { e.period = d }
}

// NewEngine creates an engine counting down to target. The message is what
// the sink's terminal transition displays once the target passes.
func NewEngine(target time.Time, message string, opts ...Option) *Engine {
	e := &Engine{
		target:  target,
		message: message,
		clock:   SystemClock(),
		period:  time.Second,
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Target returns the fixed target instant.
func (e *Engine) Target() time.Time { return e.target }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Observe computes the snapshot for now and applies the one-way state
// transition. Once Finished, further observations keep reporting expired
// snapshots without reviving the countdown.
func (e *Engine) Observe(now time.Time) Snapshot {
	snap := ComputeRemaining(e.target, now)
	if snap.Expired && e.state == StateRunning {
		e.state = StateFinished
	}
	return snap
}

// Run drives the sink until the countdown expires or ctx is cancelled.
// The first tick fires immediately so the display never shows a blank
// second at startup; subsequent ticks arrive on a fixed 1 s cadence. On
// the first expired tick the schedule is cancelled, the sink's terminal
// transition fires once, and Run returns.
func (e *Engine) Run(ctx context.Context, sink Sink) error {
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	defer cancel()

	if done := e.tick(sink); done {
		return nil
	}

	ticker := time.NewTicker(e.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if done := e.tick(sink); done {
				return nil
			}
		}
	}
}

// Cancel stops a running engine without waiting for expiry. Safe to call
// when the engine was never started.
func (e *Engine) Cancel() {
	if e.cancel != nil {
		e.cancel()
	}
}

// tick performs one scheduler invocation: compute, then either render the
// four slots or fire the terminal transition. Returns true when the engine
// has reached its terminal state.
func (e *Engine) tick(sink Sink) bool {
	snap := e.Observe(e.clock.Now())
	if snap.Expired {
		sink.Finish(e.message)
		return true
	}
	sink.SetSlot(SlotDays, Pad2(snap.Days))
	sink.SetSlot(SlotHours, Pad2(snap.Hours))
	sink.SetSlot(SlotMinutes, Pad2(snap.Minutes))
	sink.SetSlot(SlotSeconds, Pad2(snap.Seconds))
	return false
}
