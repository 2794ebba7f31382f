package game

// Clock gates state advancement to a fixed cadence. It accumulates frame
// time and releases at most one step per check, consuming exactly one
// period's worth when it fires.
type Clock struct {
	Period float64 // seconds per step
	acc    float64
}

func NewClock(period float64) Clock {
	return Clock{Period: period}
}

// Tick adds dt to the accumulator and reports whether a step is due.
// A backlog larger than one period is not drained in a single call;
// callers see one step per check.
func (c *Clock) Tick(dt float64) bool {
	c.acc += dt
	if c.acc < c.Period {
		return false
	}
	c.acc -= c.Period
	return true
}
