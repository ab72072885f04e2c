package model

import "todolist/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	ConstraintUsername = "users_username_key"
	ConstraintEmail    = "users_email_key"
)

type User struct {
	ID       string  `db:"id"`
	Username string  `db:"username"`
	Email    *string `db:"email"`
	Password string  `db:"password"`
	model.Metadata
}
