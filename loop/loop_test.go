package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickReadsClock(t *testing.T) {
	clock := &ManualClock{}
	var frames []Frame
	l := New(clock, func(f Frame) { frames = append(frames, f) })

	clock.T = 0
	l.Tick()
	clock.Advance(0.5)
	l.Tick()
	clock.Advance(0.25)
	l.Tick()

	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	want := []Frame{
		{Index: 0, Elapsed: 0, Delta: 0},
		{Index: 1, Elapsed: 0.5, Delta: 0.5},
		{Index: 2, Elapsed: 0.75, Delta: 0.25},
	}
	for i, f := range frames {
		if f != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, f, want[i])
		}
	}
	if l.Last() != want[2] || l.Frames() != 3 {
		t.Errorf("unexpected last frame %+v / count %d", l.Last(), l.Frames())
	}
}

func TestStopFromStep(t *testing.T) {
	clock := &ManualClock{}
	var l *Loop
	count := 0
	l = New(clock, func(f Frame) {
		count++
		clock.Advance(1.0 / 60)
		if f.Index == 9 {
			l.Stop()
		}
	})

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 10 {
		t.Errorf("expected 10 ticks, got %d", count)
	}
	if l.State() != StateStopped {
		t.Errorf("expected stopped, got %v", l.State())
	}
	if l.Tick() {
		t.Error("expected Tick on stopped loop to be a no-op")
	}
	if count != 10 {
		t.Error("step ran after stop")
	}
}

func TestRunStopsOnCloseCheck(t *testing.T) {
	count := 0
	l := New(&ManualClock{}, func(Frame) { count++ })
	l.SetCloseCheck(func() bool { return count >= 3 })

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 ticks before close, got %d", count)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	l := New(&ManualClock{}, func(Frame) {
		count++
		if count == 5 {
			cancel()
		}
	})

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 ticks, got %d", count)
	}
	if l.State() != StateStopped {
		t.Errorf("expected stopped after cancel, got %v", l.State())
	}
}

func TestRunAfterStopReturnsImmediately(t *testing.T) {
	count := 0
	l := New(&ManualClock{}, func(Frame) { count++ })
	l.Stop()

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run on stopped loop did not return")
	}
	if count != 0 {
		t.Errorf("expected no ticks, got %d", count)
	}
}

func TestSystemClockStartsAtZero(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := &SystemClock{now: func() time.Time { return now }}

	if got := c.Elapsed(); got != 0 {
		t.Errorf("first reading = %f, want 0", got)
	}
	now = base.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); got != 1.5 {
		t.Errorf("elapsed = %f, want 1.5", got)
	}
}
