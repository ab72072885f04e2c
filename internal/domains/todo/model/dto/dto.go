package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	subTodoDto "todolist/internal/domains/subtodo/model/dto"
	"todolist/internal/domains/todo/model"
	"todolist/shared"
	gDto "todolist/shared/dto"
	gModel "todolist/shared/model"
)

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

type UpdateTodoRequest struct {
	Title string `db:"title" json:"title" validate:"required,notblank,max=255"`
}

// NewTodo builds an unchecked todo owned by userID with a trimmed title.
func NewTodo(userID, title string, now time.Time) model.Todo {
	return model.Todo{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(title),
		Checked:  false,
		UserID:   userID,
		Metadata: gModel.NewMetadata(now, userID),
	}
}

type OwnerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type TodoResponse struct {
	ID       string                       `json:"id"`
	Title    string                       `json:"title"`
	Checked  bool                         `json:"checked"`
	User     OwnerResponse                `json:"user"`
	SubTodos []subTodoDto.SubTodoResponse `json:"sub_todos"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo, subTodos []subTodoDto.SubTodoResponse) {
	r.ID = model.ID
	r.Title = model.Title
	r.Checked = model.Checked
	r.User = OwnerResponse{ID: model.UserID, Username: model.OwnerUsername}
	r.Metadata.FromModel(model.Metadata)

	r.SubTodos = subTodos
	if r.SubTodos == nil {
		r.SubTodos = []subTodoDto.SubTodoResponse{}
	}
}

// FromModels pairs each todo with its sub-todos from subTodos, keyed by todo id.
func FromModels(models []model.Todo, subTodos map[string][]subTodoDto.SubTodoResponse) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, subTodos[mod.ID])
	}

	return res
}

type TodoPageResponse struct {
	Todos     []TodoResponse `json:"todos"`
	Page      int            `json:"page"`
	Size      int            `json:"size"`
	TotalData int            `json:"total_data"`
	TotalPage int            `json:"total_page"`
}

func NewTodoPageResponse(todos []TodoResponse, page gDto.PageRequest, totalData int) TodoPageResponse {
	if todos == nil {
		todos = []TodoResponse{}
	}

	return TodoPageResponse{
		Todos:     todos,
		Page:      page.Page,
		Size:      page.Size,
		TotalData: totalData,
		TotalPage: shared.CalculateTotalPage(totalData, page.Size),
	}
}
