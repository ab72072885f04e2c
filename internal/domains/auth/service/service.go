package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"todolist/infras/jwt"
	"todolist/infras/metrics"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/model/dto"
	userDto "todolist/internal/domains/user/model/dto"
	userService "todolist/internal/domains/user/service"
	"todolist/shared"
	"todolist/shared/cache"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/shared/timezone"
)

const (
	msgInvalidToken = "invalid token"
	msgExpiredToken = "token has expired"
	msgRevokedToken = "token has been revoked"
	msgUnknownUser  = "user no longer exists"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, principal identity.Principal) error
	Authenticate(ctx context.Context, token string) (identity.Principal, error)
	CurrentUser(ctx context.Context, principal *identity.Principal) (*userDto.UserResponse, error)
}

type serviceImpl struct {
	userService userService.User
	jwtService  jwt.JWT
	cache       cache.RedisCache
	metrics     *metrics.Metrics
	otel        otel.Otel
}

func New(userService userService.User, jwt jwt.JWT, cache cache.RedisCache, metrics *metrics.Metrics, otel otel.Otel) Auth {
	return &serviceImpl{
		userService: userService,
		jwtService:  jwt,
		cache:       cache,
		metrics:     metrics,
		otel:        otel,
	}
}

func revokedKey(tokenID string) string {
	return shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.metrics.CountAuth(metrics.AuthOutcomeLoginFailed)
		log.Warn().Str("username", req.Username).Msg("login attempt rejected")

		return res, err
	}

	token, err := s.jwtService.Generate(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	s.metrics.CountAuth(metrics.AuthOutcomeLogin)
	res.FromToken(token)

	return res, nil
}

// Logout deny-lists the token id until the token would have expired anyway.
func (s *serviceImpl) Logout(ctx context.Context, principal identity.Principal) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	remaining := int(time.Until(principal.ExpiresAt).Seconds())
	if principal.TokenID == "" || remaining <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, revokedKey(principal.TokenID), principal.UserID, remaining); err != nil {
		log.Error().Err(err).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.metrics.CountAuth(metrics.AuthOutcomeLogout)
	log.Info().Str("user_id", principal.UserID).Msg("user logged out")

	return nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, token string) (principal identity.Principal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.Validate(token)
	if errors.Is(err, jwt.ErrExpiredToken) {
		return principal, failure.Unauthorized(msgExpiredToken)
	}

	if err != nil {
		return principal, failure.Unauthorized(msgInvalidToken)
	}

	revoked, err := s.cache.Exists(ctx, revokedKey(claims.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check token deny-list")

		return principal, fmt.Errorf("failed to check token deny-list: %w", err)
	}

	if revoked {
		return principal, failure.Unauthorized(msgRevokedToken)
	}

	user, err := s.userService.FindByUsername(ctx, claims.Username)
	if failure.GetCode(err) == http.StatusNotFound {
		return principal, failure.Unauthorized(msgUnknownUser)
	}

	if err != nil {
		return principal, err
	}

	if user.ID != claims.Subject {
		return principal, failure.Unauthorized(msgInvalidToken)
	}

	principal = identity.Principal{
		UserID:   user.ID,
		Username: user.Username,
		TokenID:  claims.ID,
	}

	if claims.ExpiresAt != nil {
		principal.ExpiresAt = timezone.ToAppTime(claims.ExpiresAt.Time)
	}

	return principal, nil
}

// CurrentUser returns nil without error for an anonymous caller.
func (s *serviceImpl) CurrentUser(ctx context.Context, principal *identity.Principal) (res *userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if principal == nil {
		return nil, nil
	}

	user, err := s.userService.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
