// Package timer provides the countdown used to simulate asset loading.
package timer

import (
	"math"
	"time"
)

// DefaultDuration is the loading duration in seconds
const DefaultDuration = 3.0

// Countdown accumulates elapsed time toward a fixed target.
// Time is kept in whole nanoseconds so that deltas summing to the target
// finish it exactly. Once finished it stays finished; there is no auto-reset.
type Countdown struct {
	elapsed  time.Duration
	duration time.Duration
}

// NewCountdown creates a countdown with the given target duration (seconds).
// A non-positive duration yields a countdown that is finished immediately.
func NewCountdown(seconds float64) *Countdown {
	return &Countdown{duration: toDuration(seconds)}
}

// toDuration converts seconds to nanoseconds, rounding to the nearest one.
// Negative values become 0.
func toDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// Advance adds dt seconds of elapsed time. Negative values are treated as 0.
func (c *Countdown) Advance(dt float64) {
	c.elapsed += toDuration(dt)
}

// Finished reports whether elapsed >= duration
func (c *Countdown) Finished() bool {
	return c.elapsed >= c.duration
}

// Elapsed returns the accumulated time in seconds
func (c *Countdown) Elapsed() float64 { return c.elapsed.Seconds() }

// Duration returns the target duration in seconds
func (c *Countdown) Duration() float64 { return c.duration.Seconds() }
