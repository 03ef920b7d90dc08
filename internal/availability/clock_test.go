package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"braidr/internal/availability"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "09:00", want: 540},
		{name: "afternoon", value: "17:30", want: 1050},
		{name: "last minute", value: "23:59", want: 1439},
		{name: "missing padding", value: "9:00", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "12:60", wantErr: true},
		{name: "wrong separator", value: "12.30", wantErr: true},
		{name: "letters", value: "ab:cd", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := availability.ParseClock(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", availability.FormatClock(0))
	assert.Equal(t, "09:00", availability.FormatClock(540))
	assert.Equal(t, "09:05", availability.FormatClock(545))
	assert.Equal(t, "17:30", availability.FormatClock(1050))
}

func TestClockRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 7 {
		formatted := availability.FormatClock(minutes)
		parsed, err := availability.ParseClock(formatted)

		assert.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}
