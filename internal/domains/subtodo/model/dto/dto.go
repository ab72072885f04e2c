package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"todolist/internal/domains/subtodo/model"
	gDto "todolist/shared/dto"
	gModel "todolist/shared/model"
)

type CreateSubTodoRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

type UpdateSubTodoRequest struct {
	Title string `db:"title" json:"title" validate:"required,notblank,max=255"`
}

// NewSubTodo builds an unchecked sub-todo under todoID with a trimmed title.
func NewSubTodo(todoID, title, actor string, now time.Time) model.SubTodo {
	return model.SubTodo{
		ID:       uuid.NewString(),
		TodoID:   todoID,
		Title:    strings.TrimSpace(title),
		Checked:  false,
		Metadata: gModel.NewMetadata(now, actor),
	}
}

type SubTodoResponse struct {
	ID      string `json:"id"`
	TodoID  string `json:"todo_id"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
	gDto.Metadata
}

func (r *SubTodoResponse) FromModel(model model.SubTodo) {
	r.ID = model.ID
	r.TodoID = model.TodoID
	r.Title = model.Title
	r.Checked = model.Checked
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.SubTodo) []SubTodoResponse {
	res := make([]SubTodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
