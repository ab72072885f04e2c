package model

import "todolist/shared/model"

const (
	TableName  = "sub_todos"
	EntityName = "sub_todo"

	FieldID      = "id"
	FieldTodoID  = "todo_id"
	FieldTitle   = "title"
	FieldChecked = "checked"
)

type SubTodo struct {
	ID      string `db:"id"`
	TodoID  string `db:"todo_id"`
	Title   string `db:"title"`
	Checked bool   `db:"checked"`
	model.Metadata
}
