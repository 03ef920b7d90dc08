package model

import (
	"slices"
	"time"

	"braidr/internal/availability"
	"braidr/shared/constant"
	"braidr/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldStylistID   = "stylist_id"
	FieldCustomerID  = "customer_id"
	FieldServiceID   = "service_id"
	FieldBookingDate = "booking_date"
	FieldStartMinute = "start_minute"
	FieldEndMinute   = "end_minute"
	FieldStatus      = "status"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID          string    `db:"id"`
	StylistID   string    `db:"stylist_id"`
	CustomerID  string    `db:"customer_id"`
	ServiceID   string    `db:"service_id"`
	BookingDate time.Time `db:"booking_date"`
	StartMinute int       `db:"start_minute"`
	EndMinute   int       `db:"end_minute"`
	Status      string    `db:"status"`
	model.Metadata
}

// Interval is the booking's half-open occupied range of the day.
func (b Booking) Interval() availability.Interval {
	return availability.Interval{Start: b.StartMinute, End: b.EndMinute}
}

// IsParty reports whether the actor is the booking's customer or stylist.
func (b Booking) IsParty(actorID string) bool {
	return actorID == b.CustomerID || actorID == b.StylistID
}

// BlockingStatuses are the statuses that occupy a stylist's time. Completed
// and cancelled bookings never block.
func BlockingStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInProgress}
}

// IsReschedulable reports whether a booking in the given status may move to a
// new date or time.
func IsReschedulable(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// transitions is the status state machine keyed by actor role. Completed and
// cancelled are terminal for everyone.
var transitions = map[string]map[string][]string{
	constant.RoleCustomer: {
		StatusPending:   {StatusCancelled},
		StatusConfirmed: {StatusCancelled},
	},
	constant.RoleStylist: {
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
	},
}

// CanTransition reports whether the role may move a booking from one status to
// another. Admins act with the stylist's permissions.
func CanTransition(role, from, to string) bool {
	if role == constant.RoleAdmin {
		role = constant.RoleStylist
	}

	return slices.Contains(transitions[role][from], to)
}
