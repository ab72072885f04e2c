package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"todolist/config"
	"todolist/shared/timezone"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header is required")
)

const bearerPrefix = "Bearer "

// Claims represents the JWT claims structure. Subject carries the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token is a signed access token and its lifetime.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenID     string    `json:"-"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"-"`
}

// JWT issues and verifies HS256 access tokens.
type JWT interface {
	Generate(userID, username string) (*Token, error)
	Validate(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	secret    []byte
	issuer    string
	expireMin int
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.JWT.Issuer,
		expireMin: cfg.JWT.ExpireMin,
	}
}

// Generate signs a token for the user valid for JWT_EXPIRE_MIN minutes.
func (s *Service) Generate(userID, username string) (*Token, error) {
	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.expireMin) * time.Minute)
	tokenID := uuid.NewString()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   userID,
			ID:        tokenID,
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		AccessToken: signedToken,
		TokenID:     tokenID,
		ExpiresIn:   int64(s.expireMin * 60),
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate validates and parses a JWT token
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Username == "" || claims.ID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return strings.TrimSpace(token), nil
}
