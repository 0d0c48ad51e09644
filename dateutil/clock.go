package dateutil

import "time"

// Clock abstracts the wall clock so callers can supply deterministic time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

var (
	_ Clock = SystemClock{}
	_ Clock = FixedClock{}
)

// CurrentYear returns the calendar year of clock.Now() in the clock's
// location. A nil clock reads the system clock.
func CurrentYear(clock Clock) int {
	if clock == nil {
		clock = SystemClock{}
	}
	return clock.Now().Year()
}
