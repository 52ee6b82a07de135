package timer

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTimer() (*Timer, *fakeClock) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	return NewWithClock(c.now), c
}

func TestTimerStartAndTicks(t *testing.T) {
	tm, clock := newTimer()

	if tm.Ticks() != 0 {
		t.Errorf("Expected 0 ticks before start, got %v", tm.Ticks())
	}

	tm.Start()
	clock.advance(250 * time.Millisecond)
	if tm.Ticks() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", tm.Ticks())
	}
	if !tm.IsStarted() || tm.IsPaused() {
		t.Error("Expected started and not paused")
	}
}

func TestTimerPauseUnpause(t *testing.T) {
	tm, clock := newTimer()
	tm.Start()
	clock.advance(100 * time.Millisecond)

	tm.Pause()
	clock.advance(time.Second)
	if tm.Ticks() != 100*time.Millisecond {
		t.Errorf("Expected ticks frozen at 100ms, got %v", tm.Ticks())
	}
	if !tm.IsPaused() {
		t.Error("Expected paused")
	}

	tm.Unpause()
	clock.advance(50 * time.Millisecond)
	if tm.Ticks() != 150*time.Millisecond {
		t.Errorf("Expected 150ms after resume, got %v", tm.Ticks())
	}
}

func TestTimerStop(t *testing.T) {
	tm, clock := newTimer()
	tm.Start()
	clock.advance(time.Second)
	tm.Stop()

	if tm.Ticks() != 0 {
		t.Errorf("Expected 0 ticks after stop, got %v", tm.Ticks())
	}
	tm.Pause()
	if tm.IsPaused() {
		t.Error("Expected pause on a stopped timer to be ignored")
	}
}

func TestFPSCounterAverage(t *testing.T) {
	tm, clock := newTimer()
	c := NewFPSCounter(tm)

	if c.Average() != 0 {
		t.Errorf("Expected 0 before time passes, got %v", c.Average())
	}

	for i := 0; i < 120; i++ {
		c.Frame()
	}
	clock.advance(2 * time.Second)

	if got := c.Average(); math.Abs(got-60) > 1e-9 {
		t.Errorf("Expected 60 fps, got %v", got)
	}
	if c.Frames() != 120 {
		t.Errorf("Expected 120 frames, got %d", c.Frames())
	}
}

func TestFPSCounterDiscardsHugeAverages(t *testing.T) {
	tm, clock := newTimer()
	c := NewFPSCounter(tm)
	c.Frame()
	clock.advance(time.Nanosecond)

	if c.Average() != 0 {
		t.Errorf("Expected implausible average to read 0, got %v", c.Average())
	}
}
