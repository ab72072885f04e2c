package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"todolist/config"
	_ "todolist/docs" // registers the swagger document
	"todolist/infras/kafka"
	"todolist/infras/metrics"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/infras/redis"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/transport/http/middleware"
	"todolist/transport/http/response"
	"todolist/transport/http/router"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthStatusOK    = "OK"
)

var (
	errRouteNotFound    = failure.NotFound("route not found")
	errMethodNotAllowed = &failure.Failure{Code: http.StatusMethodNotAllowed, Message: "method not allowed"}
)

// Resources are closed once the server has drained.
type Resources struct {
	DB    *postgres.Connection
	Redis *goRedis.Client
	Kafka kafka.Client
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	App        middleware.AppMiddleware
	Auth       middleware.Auth
	Metrics    *metrics.Metrics
	Otel       otel.Otel
	Resources  Resources
	state      atomic.Int32
	handler    http.Handler
	server     *http.Server
	setupOnce  sync.Once
	shutdownCh chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	auth middleware.Auth,
	metrics *metrics.Metrics,
	otel otel.Otel,
	resources Resources,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		App:        app,
		Auth:       auth,
		Metrics:    metrics,
		Otel:       otel,
		Resources:  resources,
		shutdownCh: make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve blocks until the server has shut down.
func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.shutdownCh
}

// Adaptor exposes the routes as a plain handler for serverless entrypoints.
func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.handler.ServeHTTP
}

// ServeHTTP implements http.Handler.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Adaptor()(w, r)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	if h.Config.App.CORS.Enable {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	r.Use(h.App.Tracing, h.App.Metrics, h.App.RateLimit())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, errMethodNotAllowed)
	})

	r.Get("/health", h.health)

	if h.Config.Metrics.Enable {
		r.Handle("/metrics", h.Metrics.Handler())
	}

	if !h.Config.IsProduction() {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(h.Auth.Authenticate, h.Auth.RequireUser)
		h.Router.SetupRoutes(api)
	})

	h.handler = r
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, healthStatusOK)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.shutdownCh)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(0)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown drains in-flight requests within timeout, then releases the backing resources.
func (h *HTTP) shutdown(timeout time.Duration) {
	ctx := context.Background()

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to drain HTTP server")
		}
	}

	if h.Resources.Kafka != nil {
		if err := h.Resources.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka writer")
		}
	}

	if h.Resources.Redis != nil {
		if err := redis.Close(h.Resources.Redis); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if h.Resources.DB != nil {
		if err := h.Resources.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connections")
		}
	}

	if err := h.Otel.Shutdown(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
