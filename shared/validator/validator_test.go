package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"todolist/shared/failure"
	"todolist/shared/validator"
)

type titleRequest struct {
	Title string `json:"title" validate:"notblank,max=255"`
}

type registerRequest struct {
	Username string  `json:"username" validate:"required,username,max=50"`
	Password string  `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	email := "jane@example.com"
	badEmail := "not-an-email"

	tests := []struct {
		name    string
		data    *registerRequest
		wantMsg string
	}{
		{name: "valid", data: &registerRequest{Username: "jane", Password: "secret!", Email: &email}},
		{name: "valid without email", data: &registerRequest{Username: "jane", Password: "secret!"}},
		{name: "missing username", data: &registerRequest{Password: "secret!"}, wantMsg: "username is required"},
		{name: "username with space", data: &registerRequest{Username: "ja ne", Password: "secret!"}, wantMsg: "username must not contain whitespace"},
		{name: "invalid email", data: &registerRequest{Username: "jane", Password: "secret!", Email: &badEmail}, wantMsg: "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		want     string
		wantErr  bool
	}{
		{name: "valid title", jsonBody: `{"title":"Buy milk"}`, want: "Buy milk"},
		{name: "blank title", jsonBody: `{"title":"   "}`, wantErr: true},
		{name: "missing title", jsonBody: `{}`, wantErr: true},
		{name: "malformed JSON", jsonBody: `{"title":}`, wantErr: true},
		{name: "title too long", jsonBody: `{"title":"` + strings.Repeat("a", 256) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data titleRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, data.Title)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("jane", "required,username"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("   ", "notblank"))
	assert.NoError(t, validator.ValidateVar("jane@example.com", "email"))
	assert.Error(t, validator.ValidateVar("jane", "email"))
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "upper bound", err: validator.ValidateStruct(&titleRequest{Title: strings.Repeat("a", 256)}), wantMsg: "title must be less than or equal to 255"},
		{name: "bare value uuid", err: validator.ValidateVar("42", "uuid"), wantMsg: "value must be a valid UUID"},
		{name: "bare value required", err: validator.ValidateVar("", "required"), wantMsg: "value is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, failure.GetMessage(tt.err))
		})
	}
}
