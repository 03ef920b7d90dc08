package clock

import (
	"time"

	"braidr/shared/timezone"
)

// Clock abstracts "now" so future-date checks stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type appClock struct{}

// Now implements Clock using the application timezone.
func (appClock) Now() time.Time {
	return timezone.Now()
}

func New() Clock {
	return appClock{}
}

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
