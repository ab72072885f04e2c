package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todolist/config"
)

func newTestService(expireMin int) JWT {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "todolist"
	cfg.JWT.ExpireMin = expireMin

	return New(cfg)
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(1440)

	token, err := svc.Generate("user-1", "jane")
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.NotEmpty(t, token.TokenID)
	assert.Equal(t, int64(86400), token.ExpiresIn)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, time.Minute)

	claims, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, token.TokenID, claims.ID)
}

func TestService_Validate(t *testing.T) {
	svc := newTestService(60)

	other := &Service{secret: []byte("other-secret"), issuer: "todolist", expireMin: 60}
	foreign, err := other.Generate("user-1", "jane")
	require.NoError(t, err)

	expired := &Service{secret: []byte("test-secret"), issuer: "todolist", expireMin: -10}
	old, err := expired.Generate("user-1", "jane")
	require.NoError(t, err)

	wrongIssuer := &Service{secret: []byte("test-secret"), issuer: "someone-else", expireMin: 60}
	issued, err := wrongIssuer.Generate("user-1", "jane")
	require.NoError(t, err)

	noUsername, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "token-1",
			Issuer:    "todolist",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: ErrInvalidToken},
		{name: "signed with another secret", token: foreign.AccessToken, wantErr: ErrInvalidToken},
		{name: "expired", token: old.AccessToken, wantErr: ErrExpiredToken},
		{name: "wrong issuer", token: issued.AccessToken, wantErr: ErrInvalidToken},
		{name: "missing username", token: noUsername, wantErr: ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = ExtractTokenFromHeader("Bearer   ")
	assert.Error(t, err)
}
