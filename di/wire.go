//go:build wireinject
// +build wireinject

package di

import (
	"realty/config"
	"realty/infras/kafka"
	"realty/infras/otel"
	"realty/infras/postgres"
	"realty/infras/redis"
	"realty/infras/sendgrid"
	"realty/infras/twilio"
	"realty/shared/cache"
	"realty/transport/http"
	"realty/transport/http/middleware"
	"realty/transport/http/router"

	notificationService "realty/internal/domains/notification/service"
	reminderService "realty/internal/domains/reminder/service"
	viewingEvent "realty/internal/domains/viewing/event"
	viewingRepository "realty/internal/domains/viewing/repository"
	viewingService "realty/internal/domains/viewing/service"

	reminderHandler "realty/internal/handlers/reminder"
	viewingHandler "realty/internal/handlers/viewing"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	sendgrid.New,
	twilio.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var viewingDomain = wire.NewSet(
	viewingRepository.New,
	viewingEvent.New,
	viewingService.New,
)

var reminderDomain = wire.NewSet(
	reminderService.New,
	NewScheduler,
)

var domains = wire.NewSet(
	notificationDomain,
	viewingDomain,
	reminderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	viewingHandler.New,
	reminderHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		wire.Struct(new(http.Resources), "*"),
		http.New,
	)

	return &http.HTTP{}, nil
}
