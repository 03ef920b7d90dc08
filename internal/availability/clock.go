// Package availability computes offerable appointment slots and interval
// conflicts for a stylist's day. It works on plain values already fetched by
// the caller and never touches a database, so every computation is
// deterministic and repeatable.
package availability

import (
	"fmt"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// ParseClock converts a zero-padded 24-hour "HH:MM" string into minutes since
// midnight.
func ParseClock(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}

	hours, err := parseTwoDigits(value[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}

	minutes, err := parseTwoDigits(value[3:])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}

	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", value)
	}

	return hours*minutesPerHour + minutes, nil
}

// FormatClock converts minutes since midnight back into "HH:MM", zero-padded.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

func parseTwoDigits(s string) (int, error) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, fmt.Errorf("non-digit in %q", s)
	}

	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}
