package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"braidr/shared"
	"braidr/shared/constant"
	"braidr/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 50, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status string `db:"status"`
		Bio    string `db:"bio"`
		Skip   string
	}

	fields := shared.TransformFields(update{Status: "confirmed", Skip: "nope"}, "actor-1")

	assert.Equal(t, "confirmed", fields["status"])
	assert.NotContains(t, fields, "bio")
	assert.Equal(t, "actor-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "slots:stylist-1:2026-09-01", shared.BuildCacheKey("slots", "stylist-1", "2026-09-01"))
}

func TestBuildCacheKeyWithQuery_Deterministic(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "booking_date", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "stylist_id", Value: "s-1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "booking:gets")
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	got := shared.ConvertStringToBool("true")
	if assert.NotNil(t, got) {
		assert.True(t, *got)
	}
}
