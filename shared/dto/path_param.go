package dto

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/validator"
)

// PathID returns the {id} route parameter. Ids are UUID columns, so anything else never reaches the database.
func PathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		return "", failure.InvalidIDParam
	}

	return id, nil
}
