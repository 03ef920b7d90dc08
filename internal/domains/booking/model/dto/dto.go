package dto

import (
	"time"

	"github.com/google/uuid"

	"braidr/internal/availability"
	"braidr/internal/domains/booking/model"
	"braidr/shared"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	gModel "braidr/shared/model"
	"braidr/shared/timezone"
)

type GetSlotsRequest struct {
	StylistID string `json:"stylist_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Date      string `json:"date"       validate:"required,dateonly"`
}

type CreateBookingRequest struct {
	StylistID   string `json:"stylist_id"   validate:"required"`
	ServiceID   string `json:"service_id"   validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,dateonly"`
	StartTime   string `json:"start_time"   validate:"required,hhmm"`
}

func (c *CreateBookingRequest) ToModel(customerID string, durationMinutes int) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.DateOnlyFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	start, err := availability.ParseClock(c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		StylistID:   c.StylistID,
		CustomerID:  customerID,
		ServiceID:   c.ServiceID,
		BookingDate: bookingDate,
		StartMinute: start,
		EndMinute:   start + durationMinutes,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}, nil
}

type RescheduleBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"required,dateonly"`
	StartTime   string `json:"start_time"   validate:"required,hhmm"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	StylistID       string `json:"stylist_id"`
	CustomerID      string `json:"customer_id"`
	ServiceID       string `json:"service_id"`
	BookingDate     string `json:"booking_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.StylistID = model.StylistID
	r.CustomerID = model.CustomerID
	r.ServiceID = model.ServiceID
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.StartTime = availability.FormatClock(model.StartMinute)
	r.EndTime = availability.FormatClock(model.EndMinute)
	r.DurationMinutes = model.EndMinute - model.StartMinute
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type GetSlotsResponse struct {
	StylistID string              `json:"stylist_id"`
	ServiceID string              `json:"service_id"`
	Date      string              `json:"date"`
	Slots     []availability.Slot `json:"slots"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingRescheduled   = "booking.rescheduled"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload published to the booking lifecycle topic.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	StylistID   string    `json:"stylist_id"`
	CustomerID  string    `json:"customer_id"`
	ServiceID   string    `json:"service_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		StylistID:   booking.StylistID,
		CustomerID:  booking.CustomerID,
		ServiceID:   booking.ServiceID,
		BookingDate: booking.BookingDate.Format(constant.DateOnlyFormat),
		StartTime:   availability.FormatClock(booking.StartMinute),
		EndTime:     availability.FormatClock(booking.EndMinute),
		Status:      booking.Status,
		OccurredAt:  timezone.Now(),
	}
}
