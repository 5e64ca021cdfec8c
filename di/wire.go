//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"todos/config"
	"todos/infras/awsclient"
	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/infras/s3"
	"todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"

	authorizerDomain "todos/internal/domains/authorizer"
	todoEvent "todos/internal/domains/todo/event"
	todoRepository "todos/internal/domains/todo/repository"
	todoService "todos/internal/domains/todo/service"
	authorizerHandler "todos/internal/handlers/authorizer"
	todoHandler "todos/internal/handlers/todo"
)

var infrastructures = wire.NewSet(
	otel.New,
	awsclient.LoadConfig,
	s3.New,
	jwt.New,
	jwt.NewExtractor,
	provideKafkaClient,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoEvent.NewPublisher,
	todoService.New,
)

var authorizerDomainSet = wire.NewSet(
	authorizerDomain.New,
)

var domains = wire.NewSet(
	todoDomain,
	authorizerDomainSet,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	authorizerHandler.New,
	router.New,
)

func InitializeService(ctx context.Context, cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
