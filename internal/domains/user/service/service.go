package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"todolist/config"
	"todolist/infras/otel"
	"todolist/internal/domains/user/model"
	"todolist/internal/domains/user/model/dto"
	"todolist/internal/domains/user/repository"
	"todolist/shared"
	"todolist/shared/cache"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	"todolist/shared/password"
	gRepo "todolist/shared/repository"
)

const (
	cacheByUsername = "username"
	cacheByID       = "id"

	msgUsernameTaken = "username already exists"
	msgEmailTaken    = "email already exists"
	msgUserNotFound  = "user not found"
	msgUnknownUser   = "user does not exist"
	msgWrongPassword = "password does not match"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, username, plain string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (dto.UserResponse, error)
	FindByID(ctx context.Context, id string) (dto.UserResponse, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterBy(field, value string) gDto.FilterGroup {
	return shared.FilterByID(value, field, model.TableName)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	exists, err := s.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return res, err
	}

	if exists {
		return res, failure.Conflict(msgUsernameTaken)
	}

	if req.Email != nil {
		exists, err = s.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return res, err
		}

		if exists {
			return res, failure.Conflict(msgEmailTaken)
		}
	}

	if err = password.CheckPolicy(req.Password); err != nil {
		return res, failure.BadRequest(err)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		if gRepo.ViolatedConstraint(err) == model.ConstraintEmail {
			return res, failure.Conflict(msgEmailTaken)
		}

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(msgUsernameTaken)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, username, plain string) (user model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err = s.repo.Get(ctx, filterBy(model.FieldUsername, username))
	if errors.Is(err, gRepo.ErrNotFound) {
		return user, failure.BadRequestFromString(msgUnknownUser)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	err = password.Verify(plain, user.Password)
	if errors.Is(err, password.ErrInvalidPassword) {
		return model.User{}, failure.BadRequestFromString(msgWrongPassword)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to verify password")

		return model.User{}, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

func (s *serviceImpl) FindByUsername(ctx context.Context, username string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByUsername")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.find(ctx, model.FieldUsername, username)
}

func (s *serviceImpl) FindByID(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.find(ctx, model.FieldID, id)
}

func (s *serviceImpl) find(ctx context.Context, field, value string) (res dto.UserResponse, err error) {
	cacheKey := shared.BuildCacheKey(constant.CacheKeyUser, cacheKeyPart(field), value)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, filterBy(field, value))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(msgUserNotFound)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func cacheKeyPart(field string) string {
	if field == model.FieldUsername {
		return cacheByUsername
	}

	return cacheByID
}

func (s *serviceImpl) ExistsByUsername(ctx context.Context, username string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExistsByUsername")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.Exist(ctx, filterBy(model.FieldUsername, username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if username exists")

		return false, fmt.Errorf("failed to check if username exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) ExistsByEmail(ctx context.Context, email string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExistsByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.Exist(ctx, filterBy(model.FieldEmail, email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}
