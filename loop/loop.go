// Package loop drives the per-frame update as an explicit, stoppable schedule.
//
// A Loop owns a Clock and a step function. Each Tick reads the clock and runs
// the step once; ticks never overlap. Run repeats ticks until the context is
// cancelled, Stop is called, or the close check reports true. Pacing to the
// display refresh is left to the step (e.g. a vsync'd buffer swap).
package loop

import (
	"context"
	"sync/atomic"
)

// State is the lifecycle state of a Loop.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Frame describes one tick.
type Frame struct {
	Index   uint64  // 0 for the first tick
	Elapsed float64 // seconds since the clock started
	Delta   float64 // seconds since the previous tick
}

// StepFunc runs the work of one frame.
type StepFunc func(Frame)

// Loop is a cooperative frame scheduler.
type Loop struct {
	clock       Clock
	step        StepFunc
	shouldClose func() bool

	state  atomic.Int32
	frames uint64
	last   Frame
}

// New creates an idle loop.
func New(clock Clock, step StepFunc) *Loop {
	return &Loop{clock: clock, step: step}
}

// SetCloseCheck installs a predicate polled before every tick in Run,
// e.g. the window close button.
func (l *Loop) SetCloseCheck(fn func() bool) {
	l.shouldClose = fn
}

// Tick runs a single frame. It returns false without running the step once
// the loop has stopped.
func (l *Loop) Tick() bool {
	if l.State() == StateStopped {
		return false
	}

	elapsed := l.clock.Elapsed()
	f := Frame{Index: l.frames, Elapsed: elapsed}
	if l.frames > 0 {
		f.Delta = elapsed - l.last.Elapsed
	}
	l.frames++
	l.last = f

	l.step(f)
	return true
}

// Run ticks until ctx is done, Stop is called, or the close check is true.
// It returns ctx.Err() on cancellation and nil otherwise. Running a stopped
// loop returns immediately.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil
	}
	defer l.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if l.State() == StateStopped {
			return nil
		}
		if l.shouldClose != nil && l.shouldClose() {
			return nil
		}
		l.Tick()
	}
}

// Stop ends the loop after the current tick. Safe to call from the step
// function or another goroutine, and more than once.
func (l *Loop) Stop() {
	l.state.Store(int32(StateStopped))
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Frames returns the number of ticks run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Last returns the most recent frame.
func (l *Loop) Last() Frame {
	return l.last
}
