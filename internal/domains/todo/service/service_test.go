package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"todolist/infras/otel/mocks"
	postgresMocks "todolist/infras/postgres/mocks"
	subTodoDto "todolist/internal/domains/subtodo/model/dto"
	subTodoMocks "todolist/internal/domains/subtodo/service/mocks"
	"todolist/internal/domains/todo/model"
	todoRepoMocks "todolist/internal/domains/todo/repository/mocks"
	"todolist/internal/domains/todo/service"
	userDto "todolist/internal/domains/user/model/dto"
	userMocks "todolist/internal/domains/user/service/mocks"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/event"
	eventMocks "todolist/shared/event/mocks"
	"todolist/shared/failure"
	gRepo "todolist/shared/repository"
)

type fixture struct {
	repo       *todoRepoMocks.MockTodo
	subTodos   *subTodoMocks.MockSubTodo
	users      *userMocks.MockUser
	transactor *postgresMocks.MockTransactor
	publisher  *eventMocks.MockPublisher
	svc        service.Todo
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:       todoRepoMocks.NewMockTodo(ctrl),
		subTodos:   subTodoMocks.NewMockSubTodo(ctrl),
		users:      userMocks.NewMockUser(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.subTodos, f.users, f.transactor, f.publisher, mocks.NewOtel())

	return f
}

// runTx runs the transaction body without a real database.
func (f fixture) runTx() {
	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	})
}

var owned = model.Todo{ID: "t1", Title: "Buy milk", UserID: "owner", OwnerUsername: "jane"}

func TestTodoService_CreateTodo(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name:  "successful creation",
			title: " Buy milk ",
			setupMock: func(f fixture) {
				f.users.EXPECT().FindByID(gomock.Any(), "owner").Return(userDto.UserResponse{ID: "owner", Username: "jane"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, todo model.Todo) error {
					assert.Equal(t, "Buy milk", todo.Title)
					assert.False(t, todo.Checked)
					assert.Equal(t, "owner", todo.UserID)

					return nil
				})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name:      "blank title",
			title:     " \t ",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "title is required",
		},
		{
			name:  "missing owner",
			title: "Buy milk",
			setupMock: func(f fixture) {
				f.users.EXPECT().FindByID(gomock.Any(), "owner").Return(userDto.UserResponse{}, failure.NotFound("user not found"))
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "user not found",
		},
		{
			name:  "repository error",
			title: "Buy milk",
			setupMock: func(f fixture) {
				f.users.EXPECT().FindByID(gomock.Any(), "owner").Return(userDto.UserResponse{ID: "owner", Username: "jane"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CreateTodo(context.Background(), "owner", tt.title)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, failure.GetMessage(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Buy milk", res.Title)
			assert.False(t, res.Checked)
			assert.Equal(t, "jane", res.User.Username)
			assert.Empty(t, res.SubTodos)
		})
	}
}

func TestTodoService_ToggleCheck(t *testing.T) {
	t.Run("cascades the new state to sub-todos", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		f.runTx()
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, true, fields[model.FieldChecked])

			return nil
		})
		f.subTodos.EXPECT().ToggleAllSubTodosByTodoID(gomock.Any(), gomock.Any(), "t1", true, "owner").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt event.Event) {
			assert.Equal(t, constant.EventTodoChecked, evt.Type)
			require.NotNil(t, evt.Checked)
			assert.True(t, *evt.Checked)
		})

		checked := owned
		checked.Checked = true
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checked, nil)
		f.subTodos.EXPECT().ListByTodoIDs(gomock.Any(), []string{"t1"}).Return(map[string][]subTodoDto.SubTodoResponse{
			"t1": {{ID: "s1", TodoID: "t1", Checked: true}},
		}, nil)

		res, err := f.svc.ToggleCheck(context.Background(), "owner", "t1")
		require.NoError(t, err)
		assert.True(t, res.Checked)
		require.Len(t, res.SubTodos, 1)
		assert.True(t, res.SubTodos[0].Checked)
	})

	t.Run("cascade failure aborts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		f.runTx()
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.subTodos.EXPECT().ToggleAllSubTodosByTodoID(gomock.Any(), gomock.Any(), "t1", true, "owner").Return(assert.AnError)

		_, err := f.svc.ToggleCheck(context.Background(), "owner", "t1")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("non-owner", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)

		_, err := f.svc.ToggleCheck(context.Background(), "intruder", "t1")
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "only the owner can check this todo", failure.GetMessage(err))
	})

	t.Run("missing todo", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Todo{}, gRepo.ErrNotFound)

		_, err := f.svc.ToggleCheck(context.Background(), "owner", "t1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTodoService_UpdateTodoTitle(t *testing.T) {
	tests := []struct {
		name      string
		actor     string
		title     string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:  "owner renames",
			actor: "owner",
			title: " Buy oat milk ",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "Buy oat milk", fields[model.FieldTitle])

					return nil
				})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

				renamed := owned
				renamed.Title = "Buy oat milk"
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(renamed, nil)
				f.subTodos.EXPECT().ListByTodoIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:      "blank title",
			actor:     "owner",
			title:     "",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "non-owner",
			actor: "intruder",
			title: "x",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.UpdateTodoTitle(context.Background(), tt.actor, "t1", tt.title)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Buy oat milk", res.Title)
			assert.NotNil(t, res.SubTodos)
		})
	}
}

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Run("children before parent", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		f.runTx()
		gomock.InOrder(
			f.subTodos.EXPECT().DeleteAllByTodoID(gomock.Any(), gomock.Any(), "t1").Return(nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		require.NoError(t, f.svc.DeleteTodo(context.Background(), "owner", "t1"))
	})

	t.Run("non-owner", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)

		err := f.svc.DeleteTodo(context.Background(), "intruder", "t1")
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "only the owner can delete this todo", failure.GetMessage(err))
	})
}

func TestTodoService_GetTodos(t *testing.T) {
	t.Run("anonymous caller gets an empty list", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.GetTodos(context.Background(), "")
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)

		page, err := f.svc.GetTodosPage(context.Background(), "", gDto.PageRequest{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Todos)
		assert.Equal(t, 0, page.TotalPage)
	})

	t.Run("owner list includes sub-todos", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Todo, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Todo{owned}, nil
		})
		f.subTodos.EXPECT().ListByTodoIDs(gomock.Any(), []string{"t1"}).Return(map[string][]subTodoDto.SubTodoResponse{
			"t1": {{ID: "s1"}},
		}, nil)

		res, err := f.svc.GetTodos(context.Background(), "owner")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Len(t, res[0].SubTodos, 1)
	})
}

func TestTodoService_GetAllTodosPage(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(25, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Todo, error) {
		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 10, params.Limit)

		return []model.Todo{owned}, nil
	})
	f.subTodos.EXPECT().ListByTodoIDs(gomock.Any(), gomock.Any()).Return(map[string][]subTodoDto.SubTodoResponse{}, nil)

	page, err := f.svc.GetAllTodosPage(context.Background(), gDto.PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 25, page.TotalData)
	assert.Equal(t, 3, page.TotalPage)
	assert.Len(t, page.Todos, 1)
}

func TestTodoService_FindByID(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Todo{}, gRepo.ErrNotFound)

	_, err := f.svc.FindByID(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "todo not found", failure.GetMessage(err))
}
