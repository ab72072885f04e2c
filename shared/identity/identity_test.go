package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"todolist/shared/identity"
)

func TestPrincipalRoundTrip(t *testing.T) {
	_, ok := identity.FromContext(context.Background())
	assert.False(t, ok)

	ctx := identity.WithPrincipal(context.Background(), identity.Principal{UserID: "u1", Username: "jane"})

	principal, ok := identity.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", principal.UserID)
	assert.Equal(t, "jane", principal.Username)
}
