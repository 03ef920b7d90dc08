package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"braidr/config"
	kafkaMocks "braidr/infras/kafka/mocks"
	"braidr/infras/otel/mocks"
	bookingMocks "braidr/internal/domains/booking/mocks"
	"braidr/internal/domains/booking/model"
	"braidr/internal/domains/booking/model/dto"
	"braidr/internal/domains/booking/service"
	catalogMocks "braidr/internal/domains/catalog/mocks"
	catalogModel "braidr/internal/domains/catalog/model"
	stylistMocks "braidr/internal/domains/stylist/mocks"
	stylistModel "braidr/internal/domains/stylist/model"
	cacheMocks "braidr/shared/cache/mocks"
	"braidr/shared/clock"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	"braidr/shared/failure"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	repo     *bookingMocks.MockBooking
	stylists *stylistMocks.MockStylist
	catalog  *catalogMocks.MockService
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		stylists: stylistMocks.NewMockStylist(ctrl),
		catalog:  catalogMocks.NewMockService(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		producer: kafkaMocks.NewMockClient(ctrl),
	}

	// Event publishing and cache invalidation run on detached goroutines, so
	// expectations for them cannot be counted deterministically.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.SlotStepMinutes = 30

	svc := service.New(m.repo, m.stylists, m.catalog, cfg, m.cache, m.producer, clock.Fixed{Instant: testNow}, mocks.NewOtel())

	return svc, m
}

func actorContext(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyActorID, id)

	return context.WithValue(ctx, constant.ContextKeyActorRole, role)
}

func openStylist() stylistModel.Stylist {
	return stylistModel.Stylist{ID: "stylist-1", DisplayName: "Amara", IsAvailable: true}
}

func hourService() catalogModel.Service {
	return catalogModel.Service{
		ID:              "service-1",
		StylistID:       "stylist-1",
		Name:            "Box braids",
		DurationMinutes: 60,
		PriceCents:      12000,
		Active:          true,
	}
}

func TestBookingService_GetAvailableSlots(t *testing.T) {
	req := dto.GetSlotsRequest{
		StylistID: "stylist-1",
		ServiceID: "service-1",
		Date:      "2026-03-02",
	}

	t.Run("grid around an existing booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.stylists.EXPECT().GetWorkingHour(gomock.Any(), "stylist-1", 1).
			Return(stylistModel.WorkingHour{StylistID: "stylist-1", Weekday: 1, IsOpen: true, OpenMinute: 540, CloseMinute: 1020}, nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").
			Return([]model.Booking{
				{ID: "busy-1", StylistID: "stylist-1", StartMinute: 600, EndMinute: 720, Status: model.StatusConfirmed},
			}, nil)

		res, err := svc.GetAvailableSlots(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, res.Slots, 15)

		byStart := map[string]bool{}
		for _, slot := range res.Slots {
			byStart[slot.StartTime] = slot.Available
		}

		assert.True(t, byStart["09:00"])
		assert.False(t, byStart["09:30"])
		assert.False(t, byStart["10:00"])
		assert.False(t, byStart["11:30"])
		assert.True(t, byStart["12:00"])
		assert.True(t, byStart["16:00"])
	})

	t.Run("closed day yields no slots", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.stylists.EXPECT().GetWorkingHour(gomock.Any(), "stylist-1", 1).
			Return(stylistModel.WorkingHour{}, nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").
			Return(nil, nil)

		res, err := svc.GetAvailableSlots(context.Background(), req)

		require.NoError(t, err)
		assert.Empty(t, res.Slots)
	})

	t.Run("cache hit skips collaborators", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.GetAvailableSlots(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown stylist", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stylistModel.Stylist{}, nil)

		_, err := svc.GetAvailableSlots(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		StylistID:   "stylist-1",
		ServiceID:   "service-1",
		BookingDate: "2026-03-02",
		StartTime:   "10:00",
	}

	ctx := actorContext("customer-1", constant.RoleCustomer)

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").Return(nil, nil)
		m.repo.EXPECT().InsertGuarded(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, "customer-1", booking.CustomerID)
				assert.Equal(t, 600, booking.StartMinute)
				assert.Equal(t, 660, booking.EndMinute)

				return nil
			})

		res, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "11:00", res.EndTime)
		assert.Equal(t, 60, res.DurationMinutes)
	})

	t.Run("past date rejected", func(t *testing.T) {
		svc, _ := newBookingService(t)

		past := req
		past.BookingDate = "2026-02-01"

		_, err := svc.Create(ctx, past)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("start earlier today rejected", func(t *testing.T) {
		svc, _ := newBookingService(t)

		today := req
		today.BookingDate = "2026-03-01"
		today.StartTime = "09:00"

		_, err := svc.Create(ctx, today)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stylist not accepting bookings", func(t *testing.T) {
		svc, m := newBookingService(t)

		closed := openStylist()
		closed.IsAvailable = false

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.True(t, strings.HasPrefix(err.Error(), "not available:"))
	})

	t.Run("inactive service", func(t *testing.T) {
		svc, m := newBookingService(t)

		inactive := hourService()
		inactive.Active = false

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("service belongs to another stylist", func(t *testing.T) {
		svc, m := newBookingService(t)

		other := hourService()
		other.StylistID = "stylist-2"

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("overlap detected before persisting", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").
			Return([]model.Booking{
				{ID: "busy-1", StartMinute: 630, EndMinute: 690, Status: model.StatusConfirmed},
			}, nil)

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("constraint violation surfaces as conflict", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").Return(nil, nil)
		m.repo.EXPECT().InsertGuarded(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("the requested time overlaps an existing booking"))

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("touching booking does not conflict", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.stylists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openStylist(), nil)
		m.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hourService(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "").
			Return([]model.Booking{
				{ID: "busy-1", StartMinute: 540, EndMinute: 600, Status: model.StatusConfirmed},
				{ID: "busy-2", StartMinute: 660, EndMinute: 720, Status: model.StatusPending},
			}, nil)
		m.repo.EXPECT().InsertGuarded(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})
}

func existingBooking() model.Booking {
	return model.Booking{
		ID:          "booking-1",
		StylistID:   "stylist-1",
		CustomerID:  "customer-1",
		ServiceID:   "service-1",
		BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMinute: 600,
		EndMinute:   720,
		Status:      model.StatusPending,
	}
}

func TestBookingService_Reschedule(t *testing.T) {
	ctx := actorContext("customer-1", constant.RoleCustomer)

	t.Run("successful reschedule keeps duration and status", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "booking-1").Return(nil, nil)
		m.repo.EXPECT().RescheduleGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "2026-03-03", res.BookingDate)
		assert.Equal(t, "09:00", res.StartTime)
		assert.Equal(t, "11:00", res.EndTime)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("moving onto its own current slot succeeds", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "booking-1").Return(nil, nil)
		m.repo.EXPECT().RescheduleGuarded(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-02", StartTime: "10:00"}, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "10:00", res.StartTime)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("actor is not a party", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)

		stranger := actorContext("customer-9", constant.RoleCustomer)

		_, err := svc.Reschedule(stranger, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("completed booking cannot move", func(t *testing.T) {
		svc, m := newBookingService(t)

		done := existingBooking()
		done.Status = model.StatusCompleted

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(done, nil)

		_, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.True(t, strings.HasPrefix(err.Error(), "invalid transition:"))
	})

	t.Run("in progress booking cannot move", func(t *testing.T) {
		svc, m := newBookingService(t)

		busy := existingBooking()
		busy.Status = model.StatusInProgress

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(busy, nil)

		_, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("past target date rejected", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)

		_, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-02-01", StartTime: "09:00"}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("target slot taken", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().FindBlocking(gomock.Any(), "stylist-1", gomock.Any(), "booking-1").
			Return([]model.Booking{
				{ID: "busy-1", StartMinute: 560, EndMinute: 620, Status: model.StatusConfirmed},
			}, nil)

		_, err := svc.Reschedule(ctx, dto.RescheduleBookingRequest{BookingDate: "2026-03-03", StartTime: "09:00"}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_TransitionStatus(t *testing.T) {
	t.Run("stylist confirms pending booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		ctx := actorContext("stylist-1", constant.RoleStylist)

		res, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusConfirmed}, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("customer cannot start their own booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)

		ctx := actorContext("customer-1", constant.RoleCustomer)

		_, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusInProgress}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.True(t, strings.HasPrefix(err.Error(), "invalid transition:"))
	})

	t.Run("customer cancels pending booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		ctx := actorContext("customer-1", constant.RoleCustomer)

		res, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusCancelled}, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
	})

	t.Run("terminal status never moves", func(t *testing.T) {
		svc, m := newBookingService(t)

		done := existingBooking()
		done.Status = model.StatusCancelled

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(done, nil)

		ctx := actorContext("stylist-1", constant.RoleStylist)

		_, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusPending}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("actor is not a party", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)

		ctx := actorContext("stylist-9", constant.RoleStylist)

		_, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusConfirmed}, "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("admin acts with stylist permissions", func(t *testing.T) {
		svc, m := newBookingService(t)

		started := existingBooking()
		started.Status = model.StatusInProgress

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(started, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		ctx := actorContext("admin-1", constant.RoleAdmin)

		res, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusCompleted}, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
	})

	t.Run("update error propagates", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		ctx := actorContext("stylist-1", constant.RoleStylist)

		_, err := svc.TransitionStatus(ctx, dto.TransitionBookingRequest{Status: model.StatusConfirmed}, "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache miss reads from repository", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingBooking(), nil)

		res, err := svc.Get(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "12:00", res.EndTime)
		assert.Equal(t, 120, res.DurationMinutes)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{existingBooking()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Bookings, 1)
}
