// Package identity carries the authenticated caller through a request context.
package identity

import (
	"context"
	"time"
)

type contextKey struct{}

// Principal is the caller resolved from a valid, non-revoked token.
type Principal struct {
	UserID    string
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, principal)
}

// FromContext returns the principal stored by WithPrincipal, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(contextKey{}).(Principal)

	return principal, ok
}
