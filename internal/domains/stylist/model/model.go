package model

import (
	"braidr/internal/availability"
	"braidr/shared/model"
)

const (
	TableName  = "stylists"
	EntityName = "stylist"

	FieldID          = "id"
	FieldDisplayName = "display_name"
	FieldIsAvailable = "is_available"

	HoursTableName  = "stylist_working_hours"
	HoursEntityName = "working_hour"

	FieldStylistID = "stylist_id"
	FieldWeekday   = "weekday"
)

type Stylist struct {
	ID          string `db:"id"`
	DisplayName string `db:"display_name"`
	Bio         string `db:"bio"`
	IsAvailable bool   `db:"is_available"`
	model.Metadata
}

// WorkingHour is one weekday of a stylist's schedule. Weekday follows
// time.Weekday (Sunday = 0). Minutes are offsets since midnight.
type WorkingHour struct {
	ID          string `db:"id"`
	StylistID   string `db:"stylist_id"`
	Weekday     int    `db:"weekday"`
	IsOpen      bool   `db:"is_open"`
	OpenMinute  int    `db:"open_minute"`
	CloseMinute int    `db:"close_minute"`
	model.Metadata
}

// ToWindow converts the row into the availability engine's input shape.
func (w WorkingHour) ToWindow() availability.WorkingHours {
	return availability.WorkingHours{
		IsOpen:      w.IsOpen,
		OpenMinute:  w.OpenMinute,
		CloseMinute: w.CloseMinute,
	}
}
