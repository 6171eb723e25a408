package progress

import "time"

// Throttler rate-limits progress emission by wall-clock time. The minimum
// interval is a configuration value: interactive consumers want short
// intervals for smooth rendering, machine consumers want longer ones to
// reduce parsing load.
type Throttler struct {
	interval time.Duration
	last     time.Time
}

func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Allow reports whether an event may be emitted at now, and records the
// emission time when it may.
func (t *Throttler) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset clears the emission history, e.g. at a pass boundary.
func (t *Throttler) Reset() {
	t.last = time.Time{}
}
