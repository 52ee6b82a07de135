// Package timer provides a pausable stopwatch and a frame rate counter.
package timer

import "time"

// Timer measures elapsed time and can be paused.
type Timer struct {
	now func() time.Time

	start       time.Time
	pausedTicks time.Duration

	started bool
	paused  bool
}

// New creates a stopped timer reading the wall clock.
func New() *Timer {
	return NewWithClock(time.Now)
}

// NewWithClock creates a stopped timer reading now.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start starts or restarts the timer from zero.
func (t *Timer) Start() {
	t.started = true
	t.paused = false
	t.start = t.now()
	t.pausedTicks = 0
}

// Stop stops the timer; Ticks reads zero until the next Start.
func (t *Timer) Stop() {
	t.started = false
	t.paused = false
	t.pausedTicks = 0
}

// Pause freezes Ticks at its current value.
func (t *Timer) Pause() {
	if !t.started || t.paused {
		return
	}
	t.paused = true
	t.pausedTicks = t.now().Sub(t.start)
}

// Unpause resumes counting from the paused value.
func (t *Timer) Unpause() {
	if !t.started || !t.paused {
		return
	}
	t.paused = false
	t.start = t.now().Add(-t.pausedTicks)
	t.pausedTicks = 0
}

// Ticks returns the elapsed running time.
func (t *Timer) Ticks() time.Duration {
	if !t.started {
		return 0
	}
	if t.paused {
		return t.pausedTicks
	}
	return t.now().Sub(t.start)
}

func (t *Timer) IsStarted() bool { return t.started }

func (t *Timer) IsPaused() bool { return t.started && t.paused }

// maxFPS bounds the average; anything above it comes from a near-zero
// elapsed time on the first frame.
const maxFPS = 2000000

// FPSCounter averages frames over the running time of a timer.
type FPSCounter struct {
	timer  *Timer
	frames int
}

// NewFPSCounter starts counting with t.
func NewFPSCounter(t *Timer) *FPSCounter {
	t.Start()
	return &FPSCounter{timer: t}
}

// Frame records one presented frame.
func (c *FPSCounter) Frame() {
	c.frames++
}

// Frames returns the number of recorded frames.
func (c *FPSCounter) Frames() int {
	return c.frames
}

// Average returns frames per second since the counter started.
func (c *FPSCounter) Average() float64 {
	secs := c.timer.Ticks().Seconds()
	if secs <= 0 {
		return 0
	}
	avg := float64(c.frames) / secs
	if avg > maxFPS {
		return 0
	}
	return avg
}
