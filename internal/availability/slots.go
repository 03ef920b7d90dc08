package availability

// DefaultStepMinutes is the grid granularity candidate start times are
// generated at.
const DefaultStepMinutes = 30

// Interval is a half-open [Start, End) range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap: a booking ending at 12:00 never blocks a slot
// starting at 12:00.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// WorkingHours describes one weekday of a stylist's schedule.
type WorkingHours struct {
	IsOpen      bool
	OpenMinute  int
	CloseMinute int
}

// Slot is a candidate start time, flagged rather than omitted when taken so
// callers can render disabled entries.
type Slot struct {
	StartTime string `json:"start_time"`
	Available bool   `json:"available"`
}

// Conflicts reports whether the candidate interval overlaps any busy interval.
func Conflicts(busy []Interval, candidate Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}

	return false
}

// Slots generates the full candidate grid for a day: every start time from
// opening up to the last one whose service still fits before closing, stepped
// by stepMinutes. A closed day, a non-positive duration or step, or a window
// too small for the service all yield an empty grid.
func Slots(hours WorkingHours, busy []Interval, durationMinutes, stepMinutes int) []Slot {
	slots := []Slot{}

	if !hours.IsOpen || durationMinutes <= 0 || stepMinutes <= 0 {
		return slots
	}

	last := hours.CloseMinute - durationMinutes

	for start := hours.OpenMinute; start <= last; start += stepMinutes {
		candidate := Interval{Start: start, End: start + durationMinutes}

		slots = append(slots, Slot{
			StartTime: FormatClock(start),
			Available: !Conflicts(busy, candidate),
		})
	}

	return slots
}
