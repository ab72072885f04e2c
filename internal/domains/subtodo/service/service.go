package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"todolist/infras/otel"
	"todolist/internal/domains/subtodo/model"
	"todolist/internal/domains/subtodo/model/dto"
	"todolist/internal/domains/subtodo/repository"
	todoModel "todolist/internal/domains/todo/model"
	todoRepository "todolist/internal/domains/todo/repository"
	"todolist/shared"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/event"
	"todolist/shared/failure"
	gRepo "todolist/shared/repository"
	"todolist/shared/timezone"
)

const (
	msgTitleRequired   = "title is required"
	msgTodoNotFound    = "todo not found"
	msgSubTodoNotFound = "sub-todo not found"
	msgNotOwner        = "only the owner can modify this todo's sub-todos"
)

type SubTodo interface {
	GetSubTodos(ctx context.Context, todoID string) ([]dto.SubTodoResponse, error)
	ListByTodoIDs(ctx context.Context, todoIDs []string) (map[string][]dto.SubTodoResponse, error)
	CreateSubTodo(ctx context.Context, actorID, todoID, title string) (dto.SubTodoResponse, error)
	ToggleCheck(ctx context.Context, actorID, id string) (dto.SubTodoResponse, error)
	UpdateSubTodoTitle(ctx context.Context, actorID, id, title string) (dto.SubTodoResponse, error)
	DeleteSubTodo(ctx context.Context, actorID, id string) error
	ToggleAllSubTodosByTodoID(ctx context.Context, tx *sqlx.Tx, todoID string, checked bool, actorID string) error
	DeleteAllByTodoID(ctx context.Context, tx *sqlx.Tx, todoID string) error
}

type serviceImpl struct {
	repo      repository.SubTodo
	todoRepo  todoRepository.Todo
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.SubTodo, todoRepo todoRepository.Todo, publisher event.Publisher, otel otel.Otel) SubTodo {
	return &serviceImpl{
		repo:      repo,
		todoRepo:  todoRepo,
		publisher: publisher,
		otel:      otel,
	}
}

// oldestFirst keeps sub-todos in the order they were added.
var oldestFirst = gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func byTodoID(todoID string) gDto.FilterGroup {
	return shared.FilterByID(todoID, model.FieldTodoID, model.TableName)
}

func (s *serviceImpl) GetSubTodos(ctx context.Context, todoID string) (res []dto.SubTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSubTodos")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.todoRepo.Exist(ctx, shared.FilterByID(todoID, todoModel.FieldID, todoModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return nil, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exists {
		return nil, failure.NotFound(msgTodoNotFound)
	}

	models, err := s.repo.GetAll(ctx, oldestFirst, byTodoID(todoID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-todos")

		return nil, fmt.Errorf("failed to get sub-todos: %w", err)
	}

	return dto.FromModels(models), nil
}

// ListByTodoIDs loads the sub-todos of several todos in one query.
func (s *serviceImpl) ListByTodoIDs(ctx context.Context, todoIDs []string) (res map[string][]dto.SubTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByTodoIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make(map[string][]dto.SubTodoResponse, len(todoIDs))
	if len(todoIDs) == 0 {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, oldestFirst, shared.FilterByIDs(todoIDs, model.FieldTodoID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-todos")

		return nil, fmt.Errorf("failed to get sub-todos: %w", err)
	}

	for _, mod := range models {
		var sub dto.SubTodoResponse
		sub.FromModel(mod)
		res[mod.TodoID] = append(res[mod.TodoID], sub)
	}

	return res, nil
}

func (s *serviceImpl) CreateSubTodo(ctx context.Context, actorID, todoID, title string) (res dto.SubTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSubTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(title) == "" {
		return res, failure.BadRequestFromString(msgTitleRequired)
	}

	if err = s.checkOwner(ctx, actorID, todoID); err != nil {
		return res, err
	}

	sub := dto.NewSubTodo(todoID, title, actorID, timezone.Now())

	if err = s.repo.Insert(ctx, sub); err != nil {
		log.Error().Err(err).Msg("failed to create sub-todo")

		return res, fmt.Errorf("failed to create sub-todo: %w", err)
	}

	s.publish(ctx, constant.EventSubTodoCreated, sub, actorID, nil)
	res.FromModel(sub)

	return res, nil
}

func (s *serviceImpl) ToggleCheck(ctx context.Context, actorID, id string) (res dto.SubTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleCheck")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sub, err := s.ownedSubTodo(ctx, actorID, id)
	if err != nil {
		return res, err
	}

	fields := shared.StampFields(map[string]any{model.FieldChecked: !sub.Checked}, actorID)

	if err = s.repo.Update(ctx, fields, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to toggle sub-todo")

		return res, fmt.Errorf("failed to toggle sub-todo: %w", err)
	}

	sub.Checked = !sub.Checked
	applyStamp(&sub, fields, actorID)

	s.publish(ctx, constant.EventSubTodoChecked, sub, actorID, &sub.Checked)
	res.FromModel(sub)

	return res, nil
}

func (s *serviceImpl) UpdateSubTodoTitle(ctx context.Context, actorID, id, title string) (res dto.SubTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSubTodoTitle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return res, failure.BadRequestFromString(msgTitleRequired)
	}

	sub, err := s.ownedSubTodo(ctx, actorID, id)
	if err != nil {
		return res, err
	}

	fields := shared.TransformFields(dto.UpdateSubTodoRequest{Title: title}, actorID)

	if err = s.repo.Update(ctx, fields, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update sub-todo")

		return res, fmt.Errorf("failed to update sub-todo: %w", err)
	}

	sub.Title = title
	applyStamp(&sub, fields, actorID)

	s.publish(ctx, constant.EventSubTodoUpdated, sub, actorID, nil)
	res.FromModel(sub)

	return res, nil
}

func (s *serviceImpl) DeleteSubTodo(ctx context.Context, actorID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSubTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sub, err := s.ownedSubTodo(ctx, actorID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete sub-todo")

		return fmt.Errorf("failed to delete sub-todo: %w", err)
	}

	s.publish(ctx, constant.EventSubTodoDeleted, sub, actorID, nil)

	return nil
}

// ToggleAllSubTodosByTodoID overwrites the checked state of every sub-todo of todoID within tx.
func (s *serviceImpl) ToggleAllSubTodosByTodoID(ctx context.Context, tx *sqlx.Tx, todoID string, checked bool, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleAllSubTodosByTodoID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := shared.StampFields(map[string]any{model.FieldChecked: checked}, actorID)

	if err = s.repo.UpdateTx(ctx, tx, fields, byTodoID(todoID)); err != nil {
		log.Error().Err(err).Msg("failed to toggle sub-todos")

		return fmt.Errorf("failed to toggle sub-todos: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteAllByTodoID(ctx context.Context, tx *sqlx.Tx, todoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAllByTodoID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.DeleteTx(ctx, tx, byTodoID(todoID)); err != nil {
		log.Error().Err(err).Msg("failed to delete sub-todos")

		return fmt.Errorf("failed to delete sub-todos: %w", err)
	}

	return nil
}

func (s *serviceImpl) ownedSubTodo(ctx context.Context, actorID, id string) (model.SubTodo, error) {
	sub, err := s.repo.Get(ctx, byID(id))
	if errors.Is(err, gRepo.ErrNotFound) {
		return sub, failure.NotFound(msgSubTodoNotFound)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-todo")

		return sub, fmt.Errorf("failed to get sub-todo: %w", err)
	}

	return sub, s.checkOwner(ctx, actorID, sub.TodoID)
}

func (s *serviceImpl) checkOwner(ctx context.Context, actorID, todoID string) error {
	todo, err := s.todoRepo.Get(ctx, shared.FilterByID(todoID, todoModel.FieldID, todoModel.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFound(msgTodoNotFound)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return fmt.Errorf("failed to get todo: %w", err)
	}

	if !todo.OwnedBy(actorID) {
		log.Warn().Str("actor_id", actorID).Str("todo_id", todoID).Msg("sub-todo change by non-owner rejected")

		return failure.Forbidden(msgNotOwner)
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, sub model.SubTodo, actorID string, checked *bool) {
	s.publisher.Publish(ctx, event.Event{
		Type:      eventType,
		TodoID:    sub.TodoID,
		SubTodoID: sub.ID,
		ActorID:   actorID,
		Checked:   checked,
	})
}

func applyStamp(sub *model.SubTodo, fields map[string]any, actorID string) {
	if modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time); ok {
		sub.ModifiedAt = modifiedAt
	}

	sub.ModifiedBy = actorID
}
