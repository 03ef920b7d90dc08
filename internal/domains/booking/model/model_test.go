package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"braidr/internal/domains/booking/model"
	"braidr/shared/constant"
)

func TestCanTransition_AllowedPairs(t *testing.T) {
	allowed := []struct {
		role string
		from string
		to   string
	}{
		{constant.RoleCustomer, model.StatusPending, model.StatusCancelled},
		{constant.RoleCustomer, model.StatusConfirmed, model.StatusCancelled},
		{constant.RoleStylist, model.StatusPending, model.StatusConfirmed},
		{constant.RoleStylist, model.StatusPending, model.StatusCancelled},
		{constant.RoleStylist, model.StatusConfirmed, model.StatusInProgress},
		{constant.RoleStylist, model.StatusConfirmed, model.StatusCancelled},
		{constant.RoleStylist, model.StatusInProgress, model.StatusCompleted},
		{constant.RoleStylist, model.StatusInProgress, model.StatusCancelled},
	}

	for _, tt := range allowed {
		assert.True(t, model.CanTransition(tt.role, tt.from, tt.to),
			"%s should move %s -> %s", tt.role, tt.from, tt.to)
	}
}

// Every (role, from, to) triple absent from the allowed set must be rejected.
func TestCanTransition_Completeness(t *testing.T) {
	statuses := []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusInProgress,
		model.StatusCompleted,
		model.StatusCancelled,
	}

	allowed := map[[3]string]bool{
		{constant.RoleCustomer, model.StatusPending, model.StatusCancelled}:    true,
		{constant.RoleCustomer, model.StatusConfirmed, model.StatusCancelled}:  true,
		{constant.RoleStylist, model.StatusPending, model.StatusConfirmed}:     true,
		{constant.RoleStylist, model.StatusPending, model.StatusCancelled}:     true,
		{constant.RoleStylist, model.StatusConfirmed, model.StatusInProgress}:  true,
		{constant.RoleStylist, model.StatusConfirmed, model.StatusCancelled}:   true,
		{constant.RoleStylist, model.StatusInProgress, model.StatusCompleted}:  true,
		{constant.RoleStylist, model.StatusInProgress, model.StatusCancelled}:  true,
	}

	for _, role := range []string{constant.RoleCustomer, constant.RoleStylist} {
		for _, from := range statuses {
			for _, to := range statuses {
				want := allowed[[3]string{role, from, to}]

				assert.Equal(t, want, model.CanTransition(role, from, to),
					"%s moving %s -> %s", role, from, to)
			}
		}
	}
}

func TestCanTransition_AdminActsAsStylist(t *testing.T) {
	assert.True(t, model.CanTransition(constant.RoleAdmin, model.StatusPending, model.StatusConfirmed))
	assert.True(t, model.CanTransition(constant.RoleAdmin, model.StatusInProgress, model.StatusCompleted))
	assert.False(t, model.CanTransition(constant.RoleAdmin, model.StatusCompleted, model.StatusPending))
}

func TestCanTransition_UnknownRole(t *testing.T) {
	assert.False(t, model.CanTransition("visitor", model.StatusPending, model.StatusCancelled))
	assert.False(t, model.CanTransition("", model.StatusPending, model.StatusCancelled))
}

func TestIsReschedulable(t *testing.T) {
	assert.True(t, model.IsReschedulable(model.StatusPending))
	assert.True(t, model.IsReschedulable(model.StatusConfirmed))
	assert.False(t, model.IsReschedulable(model.StatusInProgress))
	assert.False(t, model.IsReschedulable(model.StatusCompleted))
	assert.False(t, model.IsReschedulable(model.StatusCancelled))
}

func TestBlockingStatuses(t *testing.T) {
	blocking := model.BlockingStatuses()

	assert.ElementsMatch(t, []string{model.StatusPending, model.StatusConfirmed, model.StatusInProgress}, blocking)
	assert.NotContains(t, blocking, model.StatusCompleted)
	assert.NotContains(t, blocking, model.StatusCancelled)
}

func TestBooking_IsParty(t *testing.T) {
	booking := model.Booking{StylistID: "stylist-1", CustomerID: "customer-1"}

	assert.True(t, booking.IsParty("stylist-1"))
	assert.True(t, booking.IsParty("customer-1"))
	assert.False(t, booking.IsParty("someone-else"))
}

func TestBooking_Interval(t *testing.T) {
	booking := model.Booking{StartMinute: 600, EndMinute: 720}
	interval := booking.Interval()

	assert.Equal(t, 600, interval.Start)
	assert.Equal(t, 720, interval.End)
}
