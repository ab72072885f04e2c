package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/internal/domains/subtodo/model"
	gDto "todolist/shared/dto"
	gRepo "todolist/shared/repository"
)

type SubTodo interface {
	Insert(ctx context.Context, model model.SubTodo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SubTodo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SubTodo, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SubTodo]
}

func New(db *postgres.Connection, otel otel.Otel) SubTodo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SubTodo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
