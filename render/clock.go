package render

import "time"

// TimeSource supplies wall-clock readings to a FrameClock.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}

func SystemTime() TimeSource {
	return systemTime{}
}

// FrameClock measures the time between successive frames.
type FrameClock struct {
	source  TimeSource
	last    time.Time
	elapsed time.Duration
}

func NewFrameClock(source TimeSource) *FrameClock {
	return &FrameClock{source: source, last: source.Now()}
}

// Advance returns the seconds since the previous call, or since construction
// on the first call. A source that stalls or steps backwards yields 0, and the
// clock keeps its latest reading so the next forward step is not counted
// twice.
func (c *FrameClock) Advance() float32 {
	now := c.source.Now()
	delta := now.Sub(c.last)
	if delta <= 0 {
		return 0
	}
	c.last = now
	c.elapsed += delta
	return float32(delta.Seconds())
}

// Elapsed is the sum of every delta returned so far.
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsed
}
