package tsid

import "time"

// Clock supplies the generator's view of wall-clock time. Injecting a Clock
// makes generation deterministic in tests; see pkg/tsidtest.
type Clock interface {
	Now() time.Time
}

// RealClock reads time.Now.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time {
	return time.Now()
}
