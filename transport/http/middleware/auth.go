package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"todolist/infras/jwt"
	"todolist/infras/metrics"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/service"
	"todolist/permissions"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/transport/http/cookie"
	"todolist/transport/http/response"
)

// Auth resolves the caller and guards routes that need a signed-in user.
type Auth interface {
	// Authenticate attaches the principal of a valid token. It never rejects a request.
	Authenticate(next http.Handler) http.Handler
	// RequireUser answers 401 for anonymous callers on routes not marked skip.
	RequireUser(next http.Handler) http.Handler
}

type authImpl struct {
	authService service.Auth
	cookie      cookie.Token
	permission  *permissions.PermissionData
	metrics     *metrics.Metrics
	otel        otel.Otel
}

func NewAuthMiddleware(
	authService service.Auth,
	cookie cookie.Token,
	permission *permissions.PermissionData,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Auth {
	return &authImpl{
		authService: authService,
		cookie:      cookie,
		permission:  permission,
		metrics:     metrics,
		otel:        otel,
	}
}

// tokens lists the cookie token first, then the bearer header, skipping empty and repeated values.
func (m *authImpl) tokens(request *http.Request) []string {
	tokens := make([]string, 0, 2)

	if token := m.cookie.Read(request); token != "" {
		tokens = append(tokens, token)
	}

	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err == nil && token != "" && !slices.Contains(tokens, token) {
		tokens = append(tokens, token)
	}

	return tokens
}

// Authenticate resolves the first usable token. A stale cookie does not hide a valid bearer header.
func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tokens := m.tokens(request)
		if len(tokens) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, "auth.middleware")

		var err error

		for _, token := range tokens {
			var principal identity.Principal

			principal, err = m.authService.Authenticate(ctx, token)
			if err != nil {
				continue
			}

			scope.SetAttribute("user.id", principal.UserID)
			scope.End()
			m.metrics.CountAuth(metrics.AuthOutcomeAuthenticated)

			next.ServeHTTP(writer, request.WithContext(identity.WithPrincipal(request.Context(), principal)))

			return
		}

		scope.TraceError(err)
		scope.End()
		m.metrics.CountAuth(metrics.AuthOutcomeRejected)
		log.Warn().Err(err).Str("path", request.URL.Path).Msg("ignoring unusable token")

		next.ServeHTTP(writer, request)
	})
}

func (m *authImpl) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, ok := identity.FromContext(request.Context()); ok {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil || m.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		rctx := chi.RouteContext(request.Context())
		if rctx == nil || rctx.Routes == nil {
			next.ServeHTTP(writer, request)

			return
		}

		path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
		if path == "" {
			// unknown routes fall through to the 404/405 handlers
			next.ServeHTTP(writer, request)

			return
		}

		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}

		if m.permission.FindPermissions(path, request.Method).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		response.WithError(writer, failure.LoginRequired)
	})
}
