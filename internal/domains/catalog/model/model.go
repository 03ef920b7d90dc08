package model

import (
	"braidr/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldStylistID       = "stylist_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldActive          = "active"
)

type Service struct {
	ID              string `db:"id"`
	StylistID       string `db:"stylist_id"`
	Name            string `db:"name"`
	DurationMinutes int    `db:"duration_minutes"`
	PriceCents      int    `db:"price_cents"`
	Active          bool   `db:"active"`
	model.Metadata
}
