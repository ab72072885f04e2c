package dto

import (
	"todolist/infras/jwt"
)

const MessageLoginSuccess = "login successful"

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *LoginResponse) FromToken(token *jwt.Token) {
	l.Message = MessageLoginSuccess
	l.AccessToken = token.AccessToken
	l.ExpiresIn = token.ExpiresIn
}
