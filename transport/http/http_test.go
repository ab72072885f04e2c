package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"todolist/config"
	"todolist/infras/metrics"
	otelMocks "todolist/infras/otel/mocks"
	authMocks "todolist/internal/domains/auth/service/mocks"
	subTodoMocks "todolist/internal/domains/subtodo/service/mocks"
	todoDto "todolist/internal/domains/todo/model/dto"
	todoMocks "todolist/internal/domains/todo/service/mocks"
	userMocks "todolist/internal/domains/user/service/mocks"
	authHandler "todolist/internal/handlers/auth"
	subTodoHandler "todolist/internal/handlers/subtodo"
	todoHandler "todolist/internal/handlers/todo"
	"todolist/permissions"
	cacheMocks "todolist/shared/cache/mocks"
	"todolist/transport/http/cookie"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"
)

type server struct {
	http  *HTTP
	todos *todoMocks.MockTodo
}

func newServer(t *testing.T) server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.App.Name = "todolist"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowCredentials = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}
	cfg.Cookie.Name = "token"
	cfg.Metrics.Enable = true
	cfg.Metrics.Namespace = "todolist"

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()
	m := metrics.New(cfg)
	jar := cookie.New(cfg)
	authService := authMocks.NewMockAuth(ctrl)
	todos := todoMocks.NewMockTodo(ctrl)

	routes := router.New(router.DomainHandlers{
		Auth:    authHandler.New(authService, userMocks.NewMockUser(ctrl), jar, otl),
		Todo:    todoHandler.New(todos, otl),
		SubTodo: subTodoHandler.New(subTodoMocks.NewMockSubTodo(ctrl), otl),
	})

	h := New(
		cfg,
		routes,
		middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(ctrl), m),
		middleware.NewAuthMiddleware(authService, jar, permissions.Get(), m, otl),
		m,
		otl,
		Resources{},
	)

	return server{http: h, todos: todos}
}

func (s server) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.http.Adaptor()(rec, req)

	return rec
}

func TestHTTP_Health(t *testing.T) {
	s := newServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	s.http.setState(ServerStateInGracePeriod)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestHTTP_UnknownRoute(t *testing.T) {
	rec := newServer(t).do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, rec.Body.String())
}

func TestHTTP_ApiRoutesAreGuarded(t *testing.T) {
	s := newServer(t)
	s.todos.EXPECT().GetAllTodos(gomock.Any()).Return([]todoDto.TodoResponse{}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/todos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())

	rec = s.do(httptest.NewRequest(http.MethodPost, "/api/todos", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"login required"}`, rec.Body.String())

	rec = s.do(httptest.NewRequest(http.MethodDelete, "/api/subtodos/s1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_CORSAllowsConfiguredOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := newServer(t).do(req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestHTTP_MetricsAndSwagger(t *testing.T) {
	s := newServer(t)

	s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `todolist_http_requests_total{method="GET",route="/health",status="200"} 1`)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/todos/{id}/check")
}
