package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"todolist/shared/password"
)

func TestCheckPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "whitespace only", password: "   ", wantErr: password.ErrEmptyPassword},
		{name: "no lowercase", password: "ABC123!", wantErr: password.ErrMissingLowercase},
		{name: "no special character", password: "abc123", wantErr: password.ErrMissingSpecial},
		{name: "lowercase checked before special", password: "ABC123", wantErr: password.ErrMissingLowercase},
		{name: "backslash counts as special", password: `abc\`, wantErr: nil},
		{name: "quote counts as special", password: `abc"`, wantErr: nil},
		{name: "valid", password: "secret!pass", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.CheckPolicy(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckPolicy_Messages(t *testing.T) {
	assert.Equal(t, "password must contain a lowercase letter", password.CheckPolicy("ABC!").Error())
	assert.Equal(t, "password must contain a special character", password.CheckPolicy("abc").Error())
}

func TestHash(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	hash, err := password.Hash("secret!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret!pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("secret!pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "secret!pass", hash: hash},
		{name: "mismatch", password: "wrong!pass", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "secret!pass", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "secret!pass", hash: "not-a-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
