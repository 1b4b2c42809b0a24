package kernel

import "time"

// Clock supplies the current time to every state-changing operation.
// Injecting it instead of calling time.Now directly keeps timestamps
// deterministic in tests.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock that reads the system wall clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current wall-clock time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a Clock that always returns the same instant.
// Intended for tests that need deterministic timestamps.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a Clock pinned to the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant.UTC()}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
