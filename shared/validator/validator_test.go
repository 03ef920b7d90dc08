package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"braidr/shared/validator"
)

type createBookingBody struct {
	StylistID string `json:"stylist_id" validate:"required,uuid4"`
	ServiceID string `json:"service_id" validate:"required,uuid4"`
	Date      string `json:"date"       validate:"required,dateonly"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := `{
		"stylist_id": "8f8e0a3c-5f2e-4b43-9a53-1f8a33bfc012",
		"service_id": "f0b4f6e2-43b3-4f4b-8d3c-2f4f2b6f8a10",
		"date": "2026-09-01",
		"start_time": "09:30"
	}`

	req := createBookingBody{}
	err := validator.Validate(strings.NewReader(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, "09:30", req.StartTime)
}

func TestValidate_InvalidJSON(t *testing.T) {
	req := createBookingBody{}
	err := validator.Validate(strings.NewReader("{not json"), &req)

	assert.Error(t, err)
}

func TestValidateVar_Clock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:00", wantErr: false},
		{name: "valid evening", value: "17:30", wantErr: false},
		{name: "not zero padded", value: "9:00", wantErr: true},
		{name: "out of range hour", value: "25:00", wantErr: true},
		{name: "missing minutes", value: "09", wantErr: true},
		{name: "trailing garbage", value: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "hhmm")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar_DateOnly(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-09-01", "dateonly"))
	assert.Error(t, validator.ValidateVar("09/01/2026", "dateonly"))
	assert.Error(t, validator.ValidateVar("2026-13-40", "dateonly"))
}
