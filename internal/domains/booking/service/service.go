package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"braidr/config"
	"braidr/infras/kafka"
	"braidr/infras/otel"
	"braidr/internal/availability"
	"braidr/internal/domains/booking/model"
	"braidr/internal/domains/booking/model/dto"
	"braidr/internal/domains/booking/repository"
	catalogModel "braidr/internal/domains/catalog/model"
	catalogRepo "braidr/internal/domains/catalog/repository"
	stylistModel "braidr/internal/domains/stylist/model"
	stylistRepo "braidr/internal/domains/stylist/repository"
	"braidr/shared"
	"braidr/shared/cache"
	"braidr/shared/clock"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	"braidr/shared/failure"
	"braidr/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	GetAvailableSlots(ctx context.Context, req dto.GetSlotsRequest) (dto.GetSlotsResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id string) (dto.BookingResponse, error)
	TransitionStatus(ctx context.Context, req dto.TransitionBookingRequest, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	stylistRepo stylistRepo.Stylist
	catalogRepo catalogRepo.Service
	cfg         *config.Config
	cache       cache.RedisCache
	producer    kafka.Client
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	stylistRepo stylistRepo.Stylist,
	catalogRepo catalogRepo.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	producer kafka.Client,
	clock clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		stylistRepo: stylistRepo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		cache:       cache,
		producer:    producer,
		clock:       clock,
		otel:        otel,
	}
}

// GetAvailableSlots computes the candidate grid for a stylist, service and
// date. Every candidate is returned, flagged available or not, so callers can
// render taken slots as disabled.
func (s *serviceImpl) GetAvailableSlots(ctx context.Context, req dto.GetSlotsRequest) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyBookingSlots, req.StylistID, req.ServiceID, req.Date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	if _, err = s.getStylist(ctx, req.StylistID); err != nil {
		return res, err
	}

	service, err := s.getActiveService(ctx, req.ServiceID, req.StylistID)
	if err != nil {
		return res, err
	}

	hours, err := s.stylistRepo.GetWorkingHour(ctx, req.StylistID, int(date.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get working hours")

		return res, fmt.Errorf("failed to get working hours: %w", err)
	}

	busy, err := s.findBusyIntervals(ctx, req.StylistID, date, constant.Empty)
	if err != nil {
		return res, err
	}

	res = dto.GetSlotsResponse{
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     availability.Slots(hours.ToWindow(), busy, service.DurationMinutes, s.cfg.Booking.SlotStepMinutes),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

// Create books a stylist's service for the acting customer. The pre-check here
// gives fast feedback; the repository repeats it under a per-stylist-day lock
// so concurrent creates cannot both slip through.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyActorID).(string)

	date, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if err = s.ensureFuture(date, start); err != nil {
		return res, err
	}

	stylist, err := s.getStylist(ctx, req.StylistID)
	if err != nil {
		return res, err
	}

	if !stylist.IsAvailable {
		return res, failure.NotAvailable("stylist is not accepting bookings") //nolint:wrapcheck
	}

	service, err := s.getActiveService(ctx, req.ServiceID, req.StylistID)
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(customerID, service.DurationMinutes)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) //nolint:wrapcheck
	}

	if err = s.ensureNoConflict(ctx, booking, constant.Empty); err != nil {
		return res, err
	}

	if err = s.repo.InsertGuarded(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	s.afterWrite(ctx, booking, dto.EventBookingCreated)

	res.FromModel(booking)

	return res, nil
}

// Reschedule moves a pending or confirmed booking to a new date and start
// time. The booking's own row is excluded from conflict checks so moving a
// booking onto its current time succeeds.
func (s *serviceImpl) Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getParticipantBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.IsReschedulable(booking.Status) {
		return res, failure.InvalidTransition(fmt.Sprintf("a %s booking cannot be rescheduled", booking.Status)) //nolint:wrapcheck
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if err = s.ensureFuture(date, start); err != nil {
		return res, err
	}

	duration := booking.EndMinute - booking.StartMinute

	moved := booking
	moved.BookingDate = date
	moved.StartMinute = start
	moved.EndMinute = start + duration

	if err = s.ensureNoConflict(ctx, moved, booking.ID); err != nil {
		return res, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyActorID).(string)
	fields := map[string]any{
		model.FieldBookingDate:   moved.BookingDate,
		model.FieldStartMinute:   moved.StartMinute,
		model.FieldEndMinute:     moved.EndMinute,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	if err = s.repo.RescheduleGuarded(ctx, moved, fields); err != nil {
		log.Error().Err(err).Msg("failed to reschedule booking")

		return res, err //nolint:wrapcheck
	}

	s.afterWrite(ctx, moved, dto.EventBookingRescheduled)

	res.FromModel(moved)

	return res, nil
}

// TransitionStatus applies the role-keyed status state machine.
func (s *serviceImpl) TransitionStatus(ctx context.Context, req dto.TransitionBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.TransitionStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getParticipantBooking(ctx, id)
	if err != nil {
		return res, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyActorID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyActorRole).(string)

	if !model.CanTransition(actorRole, booking.Status, req.Status) {
		return res, failure.InvalidTransition( //nolint:wrapcheck
			fmt.Sprintf("%s may not move a booking from %s to %s", actorRole, booking.Status, req.Status))
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to transition booking status")

		return res, fmt.Errorf("failed to transition booking status: %w", err)
	}

	booking.Status = req.Status

	s.afterWrite(ctx, booking, dto.EventBookingStatusChanged)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

// getParticipantBooking loads a booking and verifies the actor is one of its
// parties. Admins may act on any booking.
func (s *serviceImpl) getParticipantBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return booking, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyActorID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyActorRole).(string)

	if actorRole != constant.RoleAdmin && !booking.IsParty(actorID) {
		return booking, failure.Forbidden("you are not a party to this booking") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getStylist(ctx context.Context, id string) (stylistModel.Stylist, error) {
	stylist, err := s.stylistRepo.Get(ctx, shared.FilterByID(id, stylistModel.FieldID, stylistModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stylist")

		return stylist, fmt.Errorf("failed to get stylist: %w", err)
	}

	if stylist.ID == constant.Empty {
		return stylist, failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	return stylist, nil
}

func (s *serviceImpl) getActiveService(ctx context.Context, serviceID, stylistID string) (catalogModel.Service, error) {
	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty || !service.Active || service.StylistID != stylistID {
		return service, failure.NotFound("service not found") //nolint:wrapcheck
	}

	return service, nil
}

// ensureFuture rejects proposed start instants at or before the injected
// clock's now.
func (s *serviceImpl) ensureFuture(date time.Time, startMinute int) error {
	startAt := time.Date(
		date.Year(), date.Month(), date.Day(),
		startMinute/60, startMinute%60, 0, 0,
		timezone.GetLocation(),
	)

	if !startAt.After(s.clock.Now()) {
		return failure.BadRequestFromString("booking must start in the future") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) findBusyIntervals(ctx context.Context, stylistID string, date time.Time, excludeID string) ([]availability.Interval, error) {
	blocking, err := s.repo.FindBlocking(ctx, stylistID, date, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocking bookings")

		return nil, fmt.Errorf("failed to get blocking bookings: %w", err)
	}

	busy := make([]availability.Interval, len(blocking))
	for i, b := range blocking {
		busy[i] = b.Interval()
	}

	return busy, nil
}

func (s *serviceImpl) ensureNoConflict(ctx context.Context, booking model.Booking, excludeID string) error {
	busy, err := s.findBusyIntervals(ctx, booking.StylistID, booking.BookingDate, excludeID)
	if err != nil {
		return err
	}

	if availability.Conflicts(busy, booking.Interval()) {
		return failure.Conflict("the requested time overlaps an existing booking") //nolint:wrapcheck
	}

	return nil
}

// afterWrite publishes the lifecycle event and drops derived caches once a
// booking write has committed.
func (s *serviceImpl) afterWrite(ctx context.Context, booking model.Booking, eventType string) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.NewBookingEvent(eventType, booking)
		message := kafka.Message{Key: booking.ID, Value: event}

		if err := s.producer.SendMessages(c, constant.KafkaTopicBookingEvents, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingSlots)
	}()
}
