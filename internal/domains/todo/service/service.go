package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	subTodoService "todolist/internal/domains/subtodo/service"
	"todolist/internal/domains/todo/model"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/repository"
	userService "todolist/internal/domains/user/service"
	"todolist/shared"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/event"
	"todolist/shared/failure"
	gRepo "todolist/shared/repository"
	"todolist/shared/timezone"
)

const (
	msgTitleRequired  = "title is required"
	msgTodoNotFound   = "todo not found"
	msgNotOwnerCheck  = "only the owner can check this todo"
	msgNotOwnerUpdate = "only the owner can update this todo"
	msgNotOwnerDelete = "only the owner can delete this todo"
)

type Todo interface {
	CreateTodo(ctx context.Context, userID, title string) (dto.TodoResponse, error)
	GetTodos(ctx context.Context, userID string) ([]dto.TodoResponse, error)
	GetTodosPage(ctx context.Context, userID string, page gDto.PageRequest) (dto.TodoPageResponse, error)
	GetAllTodos(ctx context.Context) ([]dto.TodoResponse, error)
	GetAllTodosPage(ctx context.Context, page gDto.PageRequest) (dto.TodoPageResponse, error)
	FindByID(ctx context.Context, id string) (dto.TodoResponse, error)
	ToggleCheck(ctx context.Context, actorID, id string) (dto.TodoResponse, error)
	UpdateTodoTitle(ctx context.Context, actorID, id, title string) (dto.TodoResponse, error)
	DeleteTodo(ctx context.Context, actorID, id string) error
}

type serviceImpl struct {
	repo       repository.Todo
	subTodos   subTodoService.SubTodo
	users      userService.User
	transactor postgres.Transactor
	publisher  event.Publisher
	otel       otel.Otel
}

func New(
	repo repository.Todo,
	subTodos subTodoService.SubTodo,
	users userService.User,
	transactor postgres.Transactor,
	publisher event.Publisher,
	otel otel.Otel,
) Todo {
	return &serviceImpl{
		repo:       repo,
		subTodos:   subTodos,
		users:      users,
		transactor: transactor,
		publisher:  publisher,
		otel:       otel,
	}
}

var newestFirst = gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func byOwner(userID string) gDto.FilterGroup {
	return shared.FilterByID(userID, model.FieldUserID, model.TableName)
}

func (s *serviceImpl) CreateTodo(ctx context.Context, userID, title string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(title) == "" {
		return res, failure.BadRequestFromString(msgTitleRequired)
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return res, err
	}

	todo := dto.NewTodo(owner.ID, title, timezone.Now())

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	todo.OwnerUsername = owner.Username

	s.publish(ctx, constant.EventTodoCreated, todo.ID, userID, nil)
	res.FromModel(todo, nil)

	return res, nil
}

// GetTodos lists the user's todos, newest first. An anonymous caller owns nothing.
func (s *serviceImpl) GetTodos(ctx context.Context, userID string) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodos")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" {
		return []dto.TodoResponse{}, nil
	}

	return s.list(ctx, newestFirst, byOwner(userID))
}

func (s *serviceImpl) GetTodosPage(ctx context.Context, userID string, page gDto.PageRequest) (res dto.TodoPageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodosPage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" {
		return dto.NewTodoPageResponse(nil, page, 0), nil
	}

	return s.page(ctx, page, byOwner(userID))
}

func (s *serviceImpl) GetAllTodos(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllTodos")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, newestFirst, gDto.FilterGroup{})
}

func (s *serviceImpl) GetAllTodosPage(ctx context.Context, page gDto.PageRequest) (res dto.TodoPageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllTodosPage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, page, gDto.FilterGroup{})
}

func (s *serviceImpl) FindByID(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	subTodos, err := s.subTodos.ListByTodoIDs(ctx, []string{todo.ID})
	if err != nil {
		return res, err
	}

	res.FromModel(todo, subTodos[todo.ID])

	return res, nil
}

// ToggleCheck flips the todo and overwrites every sub-todo with the new state in one transaction.
func (s *serviceImpl) ToggleCheck(ctx context.Context, actorID, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleCheck")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.owned(ctx, actorID, id, msgNotOwnerCheck)
	if err != nil {
		return res, err
	}

	checked := !todo.Checked
	fields := shared.StampFields(map[string]any{model.FieldChecked: checked}, actorID)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, byID(id)); err != nil {
			log.Error().Err(err).Msg("failed to toggle todo")

			return fmt.Errorf("failed to toggle todo: %w", err)
		}

		return s.subTodos.ToggleAllSubTodosByTodoID(ctx, tx, id, checked, actorID) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, constant.EventTodoChecked, id, actorID, &checked)

	return s.FindByID(ctx, id)
}

func (s *serviceImpl) UpdateTodoTitle(ctx context.Context, actorID, id, title string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTodoTitle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return res, failure.BadRequestFromString(msgTitleRequired)
	}

	if _, err = s.owned(ctx, actorID, id, msgNotOwnerUpdate); err != nil {
		return res, err
	}

	fields := shared.TransformFields(dto.UpdateTodoRequest{Title: title}, actorID)

	if err = s.repo.Update(ctx, fields, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	s.publish(ctx, constant.EventTodoUpdated, id, actorID, nil)

	return s.FindByID(ctx, id)
}

// DeleteTodo removes the sub-todos and then the todo in one transaction.
func (s *serviceImpl) DeleteTodo(ctx context.Context, actorID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.owned(ctx, actorID, id, msgNotOwnerDelete); err != nil {
		return err
	}

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.subTodos.DeleteAllByTodoID(ctx, tx, id); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.repo.DeleteTx(ctx, tx, byID(id)); err != nil {
			log.Error().Err(err).Msg("failed to delete todo")

			return fmt.Errorf("failed to delete todo: %w", err)
		}

		return nil
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.publish(ctx, constant.EventTodoDeleted, id, actorID, nil)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.repo.Get(ctx, byID(id))
	if errors.Is(err, gRepo.ErrNotFound) {
		return todo, failure.NotFound(msgTodoNotFound)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return todo, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

func (s *serviceImpl) owned(ctx context.Context, actorID, id, forbidden string) (model.Todo, error) {
	todo, err := s.get(ctx, id)
	if err != nil {
		return todo, err
	}

	if !todo.OwnedBy(actorID) {
		log.Warn().Str("actor_id", actorID).Str("todo_id", id).Msg("todo change by non-owner rejected")

		return todo, failure.Forbidden(forbidden)
	}

	return todo, nil
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.TodoResponse, error) {
	todos, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return s.withSubTodos(ctx, todos)
}

func (s *serviceImpl) page(ctx context.Context, page gDto.PageRequest, filter gDto.FilterGroup) (res dto.TodoPageResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	todos, err := s.list(ctx, page.ToQueryParams(), filter)
	if err != nil {
		return res, err
	}

	return dto.NewTodoPageResponse(todos, page, total), nil
}

func (s *serviceImpl) withSubTodos(ctx context.Context, todos []model.Todo) ([]dto.TodoResponse, error) {
	ids := make([]string, len(todos))
	for i, todo := range todos {
		ids[i] = todo.ID
	}

	subTodos, err := s.subTodos.ListByTodoIDs(ctx, ids)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return dto.FromModels(todos, subTodos), nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType, todoID, actorID string, checked *bool) {
	s.publisher.Publish(ctx, event.Event{
		Type:    eventType,
		TodoID:  todoID,
		ActorID: actorID,
		Checked: checked,
	})
}
