package dto

import (
	"strings"

	"github.com/google/uuid"
	"todolist/internal/domains/user/model"
	gDto "todolist/shared/dto"
	gModel "todolist/shared/model"
	"todolist/shared/timezone"
)

type RegisterRequest struct {
	Username string  `json:"username"        validate:"required,notblank,username,max=50"`
	Password string  `json:"password"        validate:"required,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
}

// Normalize trims the username and drops an empty email so it is stored as NULL.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)

	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email == "" {
			r.Email = nil
		} else {
			r.Email = &email
		}
	}
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.User {
	id := uuid.NewString()

	return model.User{
		ID:       id,
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(timezone.Now(), id),
	}
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
