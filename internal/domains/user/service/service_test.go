package service_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"todolist/config"
	otelMocks "todolist/infras/otel/mocks"
	"todolist/internal/domains/user/model"
	"todolist/internal/domains/user/model/dto"
	repoMocks "todolist/internal/domains/user/repository/mocks"
	"todolist/internal/domains/user/service"
	cacheMocks "todolist/shared/cache/mocks"
	"todolist/shared/failure"
	"todolist/shared/password"
	gRepo "todolist/shared/repository"
)

type fixture struct {
	repo  *repoMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return fixture{
		repo:  repo,
		cache: cache,
		svc:   service.New(repo, cfg, cache, otelMocks.NewOtel()),
	}
}

func strPtr(s string) *string { return &s }

func uniqueViolation(constraint string) error {
	return fmt.Errorf("failed to insert data (user): %w", &pq.Error{Code: "23505", Constraint: constraint})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
			assert.Equal(t, "jane", u.Username)
			assert.NotEqual(t, "secret!pw", u.Password)
			assert.NoError(t, password.Verify("secret!pw", u.Password))
			assert.Equal(t, u.ID, u.CreatedBy)

			return nil
		})

		res, err := f.svc.Register(ctx, dto.RegisterRequest{Username: " jane ", Password: "secret!pw", Email: strPtr("jane@example.com")})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "jane", res.Username)
		assert.Equal(t, "jane@example.com", *res.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: "secret!pw"})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "username already exists", failure.GetMessage(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
		)

		_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: "secret!pw", Email: strPtr("jane@example.com")})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "email already exists", failure.GetMessage(err))
	})

	t.Run("blank email skips the email check", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
			assert.Nil(t, u.Email)

			return nil
		})

		_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: "secret!pw", Email: strPtr("  ")})
		require.NoError(t, err)
	})

	passwords := []struct {
		password string
		message  string
	}{
		{"   ", "password is required"},
		{"SECRET!PW", "password must contain a lowercase letter"},
		{"secretpw", "password must contain a special character"},
	}

	for _, tc := range passwords {
		t.Run("policy "+tc.message, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

			_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: tc.password})
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tc.message, failure.GetMessage(err))
		})
	}

	t.Run("insert race maps to conflict", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation(model.ConstraintUsername))

		_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: "secret!pw"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "username already exists", failure.GetMessage(err))
	})

	t.Run("email race reports the email", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation(model.ConstraintEmail))

		_, err := f.svc.Register(ctx, dto.RegisterRequest{Username: "jane", Password: "secret!pw", Email: strPtr("jane@example.com")})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "email already exists", failure.GetMessage(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := password.Hash("secret!pw")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u1", Username: "jane", Password: hash}, nil)

		user, err := f.svc.Login(ctx, "jane", "secret!pw")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u1", Username: "jane", Password: hash}, nil)

		user, err := f.svc.Login(ctx, "jane", "other!pw")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "password does not match", failure.GetMessage(err))
		assert.Empty(t, user.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, gRepo.ErrNotFound)

		_, err := f.svc.Login(ctx, "ghost", "secret!pw")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "user does not exist", failure.GetMessage(err))
	})

	t.Run("database failure stays internal", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, assert.AnError)

		_, err := f.svc.Login(ctx, "jane", "secret!pw")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestFindByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "user:username:jane", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v any) error {
			v.(*dto.UserResponse).ID = "u1"

			return nil
		})

		res, err := f.svc.FindByUsername(ctx, "jane")
		require.NoError(t, err)
		assert.Equal(t, "u1", res.ID)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		f := newFixture(t)
		saved := make(chan struct{})

		f.cache.EXPECT().Get(gomock.Any(), "user:username:jane", gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u1", Username: "jane"}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "user:username:jane", gomock.Any(), 60).DoAndReturn(func(context.Context, string, any, int) error {
			close(saved)

			return nil
		})

		res, err := f.svc.FindByUsername(ctx, "jane")
		require.NoError(t, err)
		assert.Equal(t, "u1", res.ID)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("user was not cached")
		}
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, gRepo.ErrNotFound)

		_, err := f.svc.FindByUsername(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "user not found", failure.GetMessage(err))
	})
}

func TestFindByID_UsesIDCacheKey(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "user:id:u1", gomock.Any()).Return(nil)

	_, err := f.svc.FindByID(context.Background(), "u1")
	require.NoError(t, err)
}

func TestExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	exists, err := f.svc.ExistsByUsername(ctx, "jane")
	require.NoError(t, err)
	assert.True(t, exists)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, assert.AnError)
	_, err = f.svc.ExistsByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, assert.AnError)
}
