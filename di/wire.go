//go:build wireinject
// +build wireinject

package di

import (
	"braidr/config"
	"braidr/infras/jwt"
	"braidr/infras/kafka"
	"braidr/infras/otel"
	"braidr/infras/postgres"
	"braidr/infras/redis"
	"braidr/permissions"
	"braidr/shared/cache"
	"braidr/shared/clock"
	"braidr/transport/http"
	"braidr/transport/http/middleware"
	"braidr/transport/http/router"

	bookingHandler "braidr/internal/handlers/booking"
	catalogHandler "braidr/internal/handlers/catalog"
	stylistHandler "braidr/internal/handlers/stylist"

	bookingRepository "braidr/internal/domains/booking/repository"
	bookingService "braidr/internal/domains/booking/service"
	catalogRepository "braidr/internal/domains/catalog/repository"
	catalogService "braidr/internal/domains/catalog/service"
	stylistRepository "braidr/internal/domains/stylist/repository"
	stylistService "braidr/internal/domains/stylist/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	clock.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var stylistDomain = wire.NewSet(
	stylistRepository.New,
	stylistService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	stylistDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	stylistHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
