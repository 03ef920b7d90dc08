package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"braidr/config"
	"braidr/infras/otel/mocks"
	stylistMocks "braidr/internal/domains/stylist/mocks"
	"braidr/internal/domains/stylist/model"
	"braidr/internal/domains/stylist/model/dto"
	"braidr/internal/domains/stylist/service"
	cacheMocks "braidr/shared/cache/mocks"
	"braidr/shared/constant"
	"braidr/shared/failure"
)

func newStylistService(t *testing.T) (service.Stylist, *stylistMocks.MockStylist, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := stylistMocks.NewMockStylist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestStylistService_Create(t *testing.T) {
	svc, mockRepo, _ := newStylistService(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyActorID, "admin-1")

	res, err := svc.Create(ctx, dto.CreateStylistRequest{DisplayName: "Amara", Bio: "Box braids specialist"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Amara", res.DisplayName)
	assert.True(t, res.IsAvailable)
}

func TestStylistService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newStylistService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Stylist{ID: "stylist-1", DisplayName: "Amara", IsAvailable: true}, nil)

		res, err := svc.Get(context.Background(), "stylist-1")

		require.NoError(t, err)
		assert.Equal(t, "stylist-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newStylistService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Stylist{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStylistService_Update(t *testing.T) {
	t.Run("toggle availability off", func(t *testing.T) {
		svc, mockRepo, _ := newStylistService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Contains(t, fields, model.FieldIsAvailable)

				return nil
			})

		off := false
		ctx := context.WithValue(context.Background(), constant.ContextKeyActorID, "stylist-1")

		err := svc.Update(ctx, dto.UpdateStylistRequest{IsAvailable: &off}, "stylist-1")

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newStylistService(t)

		err := svc.Update(context.Background(), dto.UpdateStylistRequest{}, "stylist-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newStylistService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateStylistRequest{DisplayName: "New"}, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStylistService_GetWorkingHours(t *testing.T) {
	svc, mockRepo, mockCache := newStylistService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().GetWorkingHours(gomock.Any(), "stylist-1").
		Return([]model.WorkingHour{
			{StylistID: "stylist-1", Weekday: 1, IsOpen: true, OpenMinute: 540, CloseMinute: 1020},
			{StylistID: "stylist-1", Weekday: 2, IsOpen: false},
		}, nil)

	res, err := svc.GetWorkingHours(context.Background(), "stylist-1")

	require.NoError(t, err)
	require.Len(t, res.Hours, 2)
	assert.Equal(t, "09:00", res.Hours[0].StartTime)
	assert.Equal(t, "17:00", res.Hours[0].EndTime)
	assert.False(t, res.Hours[1].IsOpen)
}

func TestStylistService_PutWorkingHours(t *testing.T) {
	req := dto.PutWorkingHoursRequest{
		Hours: []dto.WorkingHourEntry{
			{Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "17:00"},
		},
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyActorID, "stylist-1")

	t.Run("successful replace", func(t *testing.T) {
		svc, mockRepo, _ := newStylistService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().ReplaceWorkingHours(gomock.Any(), "stylist-1", gomock.Any()).Return(nil)

		res, err := svc.PutWorkingHours(ctx, req, "stylist-1")

		require.NoError(t, err)
		require.Len(t, res.Hours, 1)
		assert.Equal(t, "09:00", res.Hours[0].StartTime)
	})

	t.Run("stylist not found", func(t *testing.T) {
		svc, mockRepo, _ := newStylistService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.PutWorkingHours(ctx, req, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("malformed window", func(t *testing.T) {
		svc, mockRepo, _ := newStylistService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		bad := dto.PutWorkingHoursRequest{
			Hours: []dto.WorkingHourEntry{
				{Weekday: 1, IsOpen: true, StartTime: "17:00", EndTime: "09:00"},
			},
		}

		_, err := svc.PutWorkingHours(ctx, bad, "stylist-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
