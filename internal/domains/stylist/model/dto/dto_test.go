package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braidr/internal/domains/stylist/model"
	"braidr/internal/domains/stylist/model/dto"
)

func TestPutWorkingHoursRequest_ToModels(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		req := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 0, IsOpen: false},
				{Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "17:00"},
				{Weekday: 2, IsOpen: true, StartTime: "10:30", EndTime: "18:30"},
			},
		}

		hours, err := req.ToModels("stylist-1", "admin-1")

		require.NoError(t, err)
		require.Len(t, hours, 3)

		assert.False(t, hours[0].IsOpen)
		assert.Zero(t, hours[0].OpenMinute)
		assert.Zero(t, hours[0].CloseMinute)

		assert.True(t, hours[1].IsOpen)
		assert.Equal(t, 540, hours[1].OpenMinute)
		assert.Equal(t, 1020, hours[1].CloseMinute)

		assert.Equal(t, 630, hours[2].OpenMinute)
		assert.Equal(t, 1110, hours[2].CloseMinute)

		for _, hour := range hours {
			assert.Equal(t, "stylist-1", hour.StylistID)
			assert.NotEmpty(t, hour.ID)
		}
	})

	t.Run("duplicate weekday", func(t *testing.T) {
		req := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "17:00"},
				{Weekday: 1, IsOpen: false},
			},
		}

		_, err := req.ToModels("stylist-1", "admin-1")

		assert.Error(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		req := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 1, IsOpen: true, StartTime: "17:00", EndTime: "09:00"},
			},
		}

		_, err := req.ToModels("stylist-1", "admin-1")

		assert.Error(t, err)
	})

	t.Run("zero length window", func(t *testing.T) {
		req := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "09:00"},
			},
		}

		_, err := req.ToModels("stylist-1", "admin-1")

		assert.Error(t, err)
	})

	t.Run("open day without times", func(t *testing.T) {
		req := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 1, IsOpen: true},
			},
		}

		_, err := req.ToModels("stylist-1", "admin-1")

		assert.Error(t, err)
	})
}

func TestWorkingHourResponse_FromModel(t *testing.T) {
	open := dto.WorkingHourResponse{}
	open.FromModel(model.WorkingHour{Weekday: 3, IsOpen: true, OpenMinute: 540, CloseMinute: 1020})

	assert.Equal(t, 3, open.Weekday)
	assert.True(t, open.IsOpen)
	assert.Equal(t, "09:00", open.StartTime)
	assert.Equal(t, "17:00", open.EndTime)

	closed := dto.WorkingHourResponse{}
	closed.FromModel(model.WorkingHour{Weekday: 0, IsOpen: false, OpenMinute: 540, CloseMinute: 1020})

	assert.False(t, closed.IsOpen)
	assert.Empty(t, closed.StartTime)
	assert.Empty(t, closed.EndTime)
}
