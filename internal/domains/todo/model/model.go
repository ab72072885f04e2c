package model

import "todolist/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID      = "id"
	FieldTitle   = "title"
	FieldChecked = "checked"
	FieldUserID  = "user_id"
)

// Todo carries its owner's username, read through GetJoinQuery.
type Todo struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Checked       bool   `db:"checked"`
	UserID        string `db:"user_id"`
	OwnerUsername string `db:"owner_username" table:"users" column:"username"`
	model.Metadata
}

func (Todo) GetJoinQuery() string {
	return "JOIN users ON users.id = todos.user_id"
}

// OwnedBy reports whether userID owns the todo.
func (t Todo) OwnedBy(userID string) bool {
	return userID != "" && t.UserID == userID
}
