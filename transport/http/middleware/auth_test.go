package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"todolist/config"
	"todolist/infras/metrics"
	otelMocks "todolist/infras/otel/mocks"
	authMocks "todolist/internal/domains/auth/service/mocks"
	"todolist/permissions"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/transport/http/cookie"
	"todolist/transport/http/middleware"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cookie.Name = "token"
	cfg.Cookie.SameSite = "lax"
	cfg.Metrics.Enable = true
	cfg.Metrics.Namespace = "test"
	cfg.App.Name = "todolist"

	return cfg
}

// newAuthRouter mounts a protected and a public route behind both auth middlewares.
// Handlers echo the resolved user id.
func newAuthRouter(t *testing.T, authService *authMocks.MockAuth) http.Handler {
	t.Helper()

	cfg := testConfig()
	auth := middleware.NewAuthMiddleware(authService, cookie.New(cfg), permissions.Get(), metrics.New(cfg), otelMocks.NewOtel())

	echo := func(w http.ResponseWriter, r *http.Request) {
		principal, _ := identity.FromContext(r.Context())
		_, _ = w.Write([]byte(principal.UserID))
	}

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		api.Use(auth.Authenticate, auth.RequireUser)
		api.Route("/todos", func(todos chi.Router) {
			todos.Get("/", echo)
			todos.Post("/", echo)
			todos.Get("/{id}", echo)
			todos.Patch("/{id}/check", echo)
		})
	})

	return router
}

func TestAuth_AnonymousCanReachPublicRoutes(t *testing.T) {
	router := newAuthRouter(t, authMocks.NewMockAuth(gomock.NewController(t)))

	for _, path := range []string{"/api/todos", "/api/todos/t1"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Body.String())
	}
}

func TestAuth_AnonymousIsRejectedOnProtectedRoutes(t *testing.T) {
	router := newAuthRouter(t, authMocks.NewMockAuth(gomock.NewController(t)))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/todos"},
		{http.MethodPatch, "/api/todos/t1/check"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"login required"}`, rec.Body.String())
		})
	}
}

func TestAuth_CookieTokenResolvesPrincipal(t *testing.T) {
	authService := authMocks.NewMockAuth(gomock.NewController(t))
	authService.EXPECT().Authenticate(gomock.Any(), "from-cookie").Return(identity.Principal{UserID: "u1", Username: "jane"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	rec := httptest.NewRecorder()
	newAuthRouter(t, authService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestAuth_BearerHeaderIsTheFallback(t *testing.T) {
	authService := authMocks.NewMockAuth(gomock.NewController(t))
	authService.EXPECT().Authenticate(gomock.Any(), "from-header").Return(identity.Principal{UserID: "u2"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer from-header")

	rec := httptest.NewRecorder()
	newAuthRouter(t, authService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2", rec.Body.String())
}

func TestAuth_InvalidTokenContinuesAnonymously(t *testing.T) {
	authService := authMocks.NewMockAuth(gomock.NewController(t))
	authService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (identity.Principal, error) {
			return identity.Principal{}, failure.Unauthorized("token has expired")
		}).Times(2)

	router := newAuthRouter(t, authService)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "stale"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "stale"})

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StaleCookieFallsBackToBearerHeader(t *testing.T) {
	authService := authMocks.NewMockAuth(gomock.NewController(t))
	gomock.InOrder(
		authService.EXPECT().Authenticate(gomock.Any(), "revoked").Return(identity.Principal{}, failure.Unauthorized("token has been revoked")),
		authService.EXPECT().Authenticate(gomock.Any(), "from-header").Return(identity.Principal{UserID: "u2"}, nil),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "revoked"})
	req.Header.Set("Authorization", "Bearer from-header")

	rec := httptest.NewRecorder()
	newAuthRouter(t, authService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2", rec.Body.String())
}

func TestAuth_SameTokenInCookieAndHeaderIsCheckedOnce(t *testing.T) {
	authService := authMocks.NewMockAuth(gomock.NewController(t))
	authService.EXPECT().Authenticate(gomock.Any(), "same").Return(identity.Principal{}, failure.Unauthorized("invalid token")).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "same"})
	req.Header.Set("Authorization", "Bearer same")

	rec := httptest.NewRecorder()
	newAuthRouter(t, authService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
