package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"braidr/config"
	"braidr/infras/otel"
	"braidr/internal/domains/stylist/model"
	"braidr/internal/domains/stylist/model/dto"
	"braidr/internal/domains/stylist/repository"
	"braidr/shared"
	"braidr/shared/cache"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	"braidr/shared/failure"
)

const (
	cacheGetStylist    = "stylist:get"
	cacheGetAllStylist = "stylist:gets"
	cacheCountStylist  = "stylist:count"
	cacheGetHours      = "stylist:hours"
)

type Stylist interface {
	Create(ctx context.Context, req dto.CreateStylistRequest) (dto.StylistResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStylistsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StylistResponse, error)
	Update(ctx context.Context, req dto.UpdateStylistRequest, id string) error
	Delete(ctx context.Context, id string) error
	GetWorkingHours(ctx context.Context, id string) (dto.GetWorkingHoursResponse, error)
	PutWorkingHours(ctx context.Context, req dto.PutWorkingHoursRequest, id string) (dto.GetWorkingHoursResponse, error)
}

type serviceImpl struct {
	repo  repository.Stylist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Stylist, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stylist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStylistRequest) (res dto.StylistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyActorID).(string)

	stylist := req.ToModel(user)
	if err = s.repo.Insert(ctx, stylist); err != nil {
		log.Error().Err(err).Msg("failed to create stylist")

		return res, fmt.Errorf("failed to create stylist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStylist)
		shared.InvalidateCaches(c, s.cache, cacheCountStylist)
	}()

	res.FromModel(stylist)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStylistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStylist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stylists")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stylists")

		return res, fmt.Errorf("failed to count stylists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stylists")

		return res, fmt.Errorf("failed to get stylists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stylists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStylist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stylists")

		return res, fmt.Errorf("failed to count stylists: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stylist count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StylistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStylist, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stylist")

		return res, nil
	}

	stylist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stylist")

		return res, fmt.Errorf("failed to get stylist: %w", err)
	}

	if stylist.ID == constant.Empty {
		return res, failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	res.FromModel(stylist)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stylist to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStylistRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateStylistRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyActorID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stylist exists")

		return fmt.Errorf("failed to check if stylist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update stylist")

		return fmt.Errorf("failed to update stylist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStylist, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete stylist from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStylist)
		shared.InvalidateCaches(c, s.cache, cacheCountStylist)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingSlots)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stylist exists")

		return fmt.Errorf("failed to check if stylist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete stylist")

		return fmt.Errorf("failed to delete stylist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStylist, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete stylist from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStylist)
		shared.InvalidateCaches(c, s.cache, cacheCountStylist)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingSlots)
	}()

	return nil
}

func (s *serviceImpl) GetWorkingHours(ctx context.Context, id string) (res dto.GetWorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.GetWorkingHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHours, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for working hours")

		return res, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stylist exists")

		return res, fmt.Errorf("failed to check if stylist exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	hours, err := s.repo.GetWorkingHours(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get working hours")

		return res, fmt.Errorf("failed to get working hours: %w", err)
	}

	res.FromModels(id, hours)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save working hours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) PutWorkingHours(ctx context.Context, req dto.PutWorkingHoursRequest, id string) (res dto.GetWorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stylist.PutWorkingHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyActorID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stylist exists")

		return res, fmt.Errorf("failed to check if stylist exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("stylist not found") //nolint:wrapcheck
	}

	hours, err := req.ToModels(id, user)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.ReplaceWorkingHours(ctx, id, hours); err != nil {
		log.Error().Err(err).Msg("failed to replace working hours")

		return res, fmt.Errorf("failed to replace working hours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHours, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete working hours from cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingSlots)
	}()

	res.FromModels(id, hours)

	return res, nil
}
