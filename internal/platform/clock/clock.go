package clock

import "time"

// Clock is the single source of wall time. The timer's rehydration math and
// the focus log both go through it so tests can substitute fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock reports real time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
