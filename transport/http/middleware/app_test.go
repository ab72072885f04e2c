package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"todolist/infras/metrics"
	otelMocks "todolist/infras/otel/mocks"
	cacheMocks "todolist/shared/cache/mocks"
	"todolist/transport/http/middleware"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	cfg := testConfig()
	m := metrics.New(cfg)
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)), m)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.Metrics)
	router.Get("/api/todos/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Handle("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/api/todos/{id}",status="418"} 2`)
	assert.False(t, strings.Contains(body, `route="/api/todos/a"`))
}

func TestRequestID_EchoesHeader(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
