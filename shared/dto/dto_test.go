package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"braidr/shared/constant"
	"braidr/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		want           dto.QueryParams
	}{
		{
			name:           "all params present",
			url:            "/v1/bookings?page=2&limit=25&sort_by=booking_date&sort_dir=asc",
			defaultRequest: true,
			want:           dto.QueryParams{Page: 2, Limit: 25, SortBy: "booking_date", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			url:            "/v1/bookings",
			defaultRequest: true,
			want:           dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "no defaults requested",
			url:            "/v1/bookings",
			defaultRequest: false,
			want:           dto.QueryParams{},
		},
		{
			name:           "invalid values ignored",
			url:            "/v1/bookings?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			want:           dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, tt.defaultRequest)

			assert.Equal(t, tt.want, q)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "stylist_id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.stylist_id = :stylist_id",
			wantArgs:  map[string]any{"stylist_id": "s-1"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:      "less for interval overlap",
			filter:    dto.Filter{ArgName: "slot_end", Field: "start_minute", Value: 660, Operator: dto.FilterOperatorLess},
			wantWhere: "start_minute < :slot_end",
			wantArgs:  map[string]any{"slot_end": 660},
		},
		{
			name:      "greater for interval overlap",
			filter:    dto.Filter{ArgName: "slot_start", Field: "end_minute", Value: 600, Operator: dto.FilterOperatorGreater},
			wantWhere: "end_minute > :slot_start",
			wantArgs:  map[string]any{"slot_start": 600},
		},
		{
			name:      "not eq",
			filter:    dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorNotEq},
			wantWhere: "id != :id",
			wantArgs:  map[string]any{"id": "b-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "stylist_id", Value: "s-1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: []string{"pending", "confirmed", "in_progress"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(stylist_id = :stylist_id AND status IN (:status_0, :status_1, :status_2) )", where)
	assert.Len(t, args, 4)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
