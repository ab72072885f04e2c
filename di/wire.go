//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"todolist/config"
	"todolist/infras/jwt"
	"todolist/infras/kafka"
	"todolist/infras/metrics"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/infras/redis"
	authService "todolist/internal/domains/auth/service"
	subTodoRepository "todolist/internal/domains/subtodo/repository"
	subTodoService "todolist/internal/domains/subtodo/service"
	todoRepository "todolist/internal/domains/todo/repository"
	todoService "todolist/internal/domains/todo/service"
	userRepository "todolist/internal/domains/user/repository"
	userService "todolist/internal/domains/user/service"
	authHandler "todolist/internal/handlers/auth"
	subTodoHandler "todolist/internal/handlers/subtodo"
	todoHandler "todolist/internal/handlers/todo"
	"todolist/permissions"
	"todolist/shared/cache"
	"todolist/shared/event"
	"todolist/transport/http"
	"todolist/transport/http/cookie"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.New,
	wire.Struct(new(http.Resources), "*"),
)

var middlewares = wire.NewSet(
	cookie.New,
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var subTodoDomain = wire.NewSet(
	subTodoRepository.New,
	subTodoService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	todoDomain,
	subTodoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	todoHandler.New,
	subTodoHandler.New,
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
