package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todolist/infras/otel/mocks"
	"todolist/infras/postgres/memdb"
	"todolist/shared"
	"todolist/shared/dto"
	"todolist/shared/model"
	"todolist/shared/repository"
)

type account struct {
	ID       string  `db:"id"`
	Username string  `db:"username"`
	Email    *string `db:"email"`
	Password string  `db:"password"`
	model.Metadata
}

type task struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Checked   bool   `db:"checked"`
	UserID    string `db:"user_id"`
	OwnerName string `db:"owner_name" table:"users" column:"username"`
	model.Metadata
}

func (task) GetJoinQuery() string {
	return "JOIN users ON users.id = todos.user_id"
}

func newRepos(t *testing.T) (repository.Repository[account], repository.Repository[task]) {
	t.Helper()

	conn := memdb.New(t)
	o := mocks.NewOtel()

	return repository.NewRepository[account]("user", "users", "id", conn, o),
		repository.NewRepository[task]("todo", "todos", "id", conn, o)
}

func TestRepository_InsertColumnsSkipJoinedColumns(t *testing.T) {
	_, tasks := newRepos(t)

	assert.Equal(t,
		[]string{"id", "title", "checked", "user_id", "created_at", "modified_at", "created_by", "modified_by"},
		tasks.InsertColumns,
	)
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	users, tasks := newRepos(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, users.Insert(ctx, account{ID: "u1", Username: "jane", Password: "hash", Metadata: model.NewMetadata(now, "u1")}))

	exists, err := users.Exist(ctx, shared.FilterByID("jane", "username", "users"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.Exist(ctx, shared.FilterByID("john", "username", "users"))
	require.NoError(t, err)
	assert.False(t, exists)

	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, tasks.Insert(ctx, task{
			ID:       title,
			Title:    title,
			UserID:   "u1",
			Metadata: model.NewMetadata(now.Add(time.Duration(i)*time.Minute), "u1"),
		}))
	}

	got, err := tasks.Get(ctx, shared.FilterByID("second", "id", "todos"))
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)
	assert.Equal(t, "jane", got.OwnerName)
	assert.False(t, got.Checked)
	assert.True(t, got.CreatedAt.Equal(now.Add(time.Minute)))

	_, err = tasks.Get(ctx, shared.FilterByID("missing", "id", "todos"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	page, err := tasks.GetAll(ctx, dto.QueryParams{Page: 1, Limit: 2, SortBy: "created_at", SortDir: dto.SortDirDesc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, "second", page[1].Title)

	page, err = tasks.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2, SortBy: "created_at", SortDir: dto.SortDirDesc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)

	count, err := tasks.Count(ctx, shared.FilterByID("u1", "user_id", "todos"))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, tasks.Update(ctx, map[string]any{"checked": true, "title": "renamed"}, shared.FilterByID("first", "id", "todos")))

	got, err = tasks.Get(ctx, shared.FilterByID("first", "id", "todos"))
	require.NoError(t, err)
	assert.True(t, got.Checked)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, tasks.Delete(ctx, shared.FilterByIDs([]string{"first", "second"}, "id", "todos")))

	all, err := tasks.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "third", all[0].ID)
}

func TestRepository_EmptyResultIsNotNil(t *testing.T) {
	_, tasks := newRepos(t)

	all, err := tasks.GetAll(context.Background(), dto.QueryParams{}, shared.FilterByIDs(nil, "id", "todos"))
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestRepository_RequiresFilterForDestructiveWrites(t *testing.T) {
	_, tasks := newRepos(t)
	ctx := context.Background()

	assert.Error(t, tasks.Delete(ctx, dto.FilterGroup{}))
	assert.Error(t, tasks.Update(ctx, map[string]any{"checked": true}, dto.FilterGroup{}))
}

func TestRepository_TxVariants(t *testing.T) {
	ctx := context.Background()
	conn := memdb.New(t)
	o := mocks.NewOtel()
	users := repository.NewRepository[account]("user", "users", "id", conn, o)
	tasks := repository.NewRepository[task]("todo", "todos", "id", conn, o)
	now := time.Now().UTC()

	require.NoError(t, users.Insert(ctx, account{ID: "u1", Username: "jane", Password: "hash", Metadata: model.NewMetadata(now, "u1")}))

	err := conn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := tasks.InsertTx(ctx, tx, task{ID: "t1", Title: "t1", UserID: "u1", Metadata: model.NewMetadata(now, "u1")}); err != nil {
			return err
		}

		return tasks.UpdateTx(ctx, tx, map[string]any{"checked": true}, shared.FilterByID("t1", "id", "todos"))
	})
	require.NoError(t, err)

	got, err := tasks.Get(ctx, shared.FilterByID("t1", "id", "todos"))
	require.NoError(t, err)
	assert.True(t, got.Checked)

	err = conn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := tasks.DeleteTx(ctx, tx, shared.FilterByID("t1", "id", "todos")); err != nil {
			return err
		}

		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	exists, err := tasks.Exist(ctx, shared.FilterByID("t1", "id", "todos"))
	require.NoError(t, err)
	assert.True(t, exists, "rolled back delete must keep the row")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, repository.IsUniqueViolation(assert.AnError))
}

func TestViolatedConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.Equal(t, "users_email_key", repository.ViolatedConstraint(err))
	assert.Empty(t, repository.ViolatedConstraint(&pq.Error{Code: "23503", Constraint: "todos_user_id_fkey"}))
	assert.Empty(t, repository.ViolatedConstraint(assert.AnError))
}
