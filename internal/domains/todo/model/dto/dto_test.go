package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	subTodoDto "todolist/internal/domains/subtodo/model/dto"
	"todolist/internal/domains/todo/model"
	"todolist/internal/domains/todo/model/dto"
	gDto "todolist/shared/dto"
	gModel "todolist/shared/model"
)

func TestNewTodo(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	todo := dto.NewTodo("u1", "  Buy milk  ", now)

	assert.NotEmpty(t, todo.ID, "expected ID to be generated")
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Checked)
	assert.Equal(t, "u1", todo.UserID)
	assert.Equal(t, "u1", todo.CreatedBy)
	assert.Equal(t, now, todo.CreatedAt)
}

func TestTodoResponse_FromModel(t *testing.T) {
	todo := model.Todo{
		ID:            "t1",
		Title:         "Buy milk",
		Checked:       true,
		UserID:        "u1",
		OwnerUsername: "jane",
		Metadata:      gModel.NewMetadata(time.Now(), "u1"),
	}

	var res dto.TodoResponse
	res.FromModel(todo, nil)

	assert.Equal(t, "t1", res.ID)
	assert.True(t, res.Checked)
	assert.Equal(t, dto.OwnerResponse{ID: "u1", Username: "jane"}, res.User)
	assert.NotNil(t, res.SubTodos, "sub_todos must encode as an empty array")
	assert.NotEmpty(t, res.CreatedAt)
}

func TestFromModels(t *testing.T) {
	todos := []model.Todo{{ID: "t1"}, {ID: "t2"}}
	subTodos := map[string][]subTodoDto.SubTodoResponse{
		"t2": {{ID: "s1", TodoID: "t2"}},
	}

	res := dto.FromModels(todos, subTodos)

	assert.Len(t, res, 2)
	assert.Empty(t, res[0].SubTodos)
	assert.Len(t, res[1].SubTodos, 1)
}

func TestNewTodoPageResponse(t *testing.T) {
	page := dto.NewTodoPageResponse(nil, gDto.PageRequest{Page: 1, Size: 10}, 25)

	assert.NotNil(t, page.Todos)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 25, page.TotalData)
	assert.Equal(t, 3, page.TotalPage)
}
