package core

import (
	"time"

	"github.com/benbjohnson/clock"
)

// UnsetMilliseconds is reported when no clock has been registered.
const UnsetMilliseconds float32 = -1.0

// Clock provides the elapsed time in milliseconds shown in log headers
type Clock interface {
	Milliseconds() float32
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() float32

// Milliseconds calls f
func (f ClockFunc) Milliseconds() float32 {
	return f()
}

// NopClock is the clock used before registration. It always reports
// UnsetMilliseconds.
type NopClock struct{}

// Milliseconds returns UnsetMilliseconds
func (NopClock) Milliseconds() float32 {
	return UnsetMilliseconds
}

// ElapsedClock reports the milliseconds elapsed since it was created.
type ElapsedClock struct {
	clock clock.Clock
	start time.Time
}

// NewElapsedClock starts measuring from c.Now(). A nil c uses the wall
// clock.
func NewElapsedClock(c clock.Clock) *ElapsedClock {
	if c == nil {
		c = clock.New()
	}
	return &ElapsedClock{clock: c, start: c.Now()}
}

// Milliseconds returns the time elapsed since construction
func (e *ElapsedClock) Milliseconds() float32 {
	return float32(float64(e.clock.Since(e.start)) / float64(time.Millisecond))
}
