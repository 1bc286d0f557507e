package core

// Throttle decides which scheduler frames run a simulation tick.
// With skip N it admits one frame and then drops the next N. Dropped frames
// are never made up later, so a tick never runs twice for one frame.
type Throttle struct {
	skip    int
	pending int
}

// NewThrottle returns a throttle dropping skip frames between ticks.
// Negative values are treated as zero.
func NewThrottle(skip int) *Throttle {
	if skip < 0 {
		skip = 0
	}
	return &Throttle{skip: skip}
}

// Allow is called once per scheduler frame.
func (t *Throttle) Allow() bool {
	if t.pending > 0 {
		t.pending--
		return false
	}
	t.pending = t.skip
	return true
}

// Skip returns the configured number of dropped frames.
func (t *Throttle) Skip() int {
	return t.skip
}
