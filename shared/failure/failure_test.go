package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"braidr/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("time slot is already booked"), code: http.StatusConflict},
		{name: "NotAvailable", err: failure.NotAvailable("stylist is not accepting bookings"), code: http.StatusConflict},
		{name: "InvalidTransition", err: failure.InvalidTransition("completed bookings cannot change"), code: http.StatusBadRequest},
		{name: "Forbidden", err: failure.Forbidden("not a party to this booking"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", failure.Conflict("overlap"))

	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, got)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
