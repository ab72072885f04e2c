package subtodo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"todolist/infras/otel"
	"todolist/internal/domains/subtodo/model/dto"
	"todolist/internal/domains/subtodo/service"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/shared/validator"
	"todolist/transport/http/response"
)

const messageSubTodoDeleted = "sub-todo deleted"

type Handler struct {
	service service.SubTodo
	otel    otel.Otel
}

func New(service service.SubTodo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the sub-todo routes. GET and POST take the parent todo id, the rest the sub-todo id.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/subtodos", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetSubTodos)
		routerGroup.Post("/{id}", handler.CreateSubTodo)
		routerGroup.Patch("/{id}", handler.UpdateSubTodo)
		routerGroup.Patch("/{id}/check", handler.ToggleCheck)
		routerGroup.Delete("/{id}", handler.DeleteSubTodo)
	})
}

// GetSubTodos lists the sub-todos of a todo, oldest first.
// @Summary List sub-todos of a todo
// @Tags SubTodo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {array} dto.SubTodoResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/subtodos/{id} [get]
func (handler *Handler) GetSubTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubTodos")
	defer scope.End()

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	subTodos, err := handler.service.GetSubTodos(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sub-todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subTodos)
}

// CreateSubTodo adds a sub-todo to a todo owned by the caller.
// @Summary Create a sub-todo
// @Tags SubTodo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.CreateSubTodoRequest true "Create Sub-Todo Request"
// @Success 201 {object} dto.SubTodoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/subtodos/{id} [post]
// @Security CookieAuth
func (handler *Handler) CreateSubTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubTodo")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	req := dto.CreateSubTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	subTodo, err := handler.service.CreateSubTodo(ctx, principal.UserID, id, req.Title)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create sub-todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, subTodo)
}

// UpdateSubTodo changes a sub-todo title.
// @Summary Update a sub-todo title
// @Tags SubTodo
// @Accept json
// @Produce json
// @Param id path string true "Sub-Todo ID"
// @Param request body dto.UpdateSubTodoRequest true "Update Sub-Todo Request"
// @Success 200 {object} dto.SubTodoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/subtodos/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdateSubTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubTodo")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	req := dto.UpdateSubTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	subTodo, err := handler.service.UpdateSubTodoTitle(ctx, principal.UserID, id, req.Title)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update sub-todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subTodo)
}

// ToggleCheck flips a single sub-todo. The parent todo is left as is.
// @Summary Toggle a sub-todo
// @Tags SubTodo
// @Produce json
// @Param id path string true "Sub-Todo ID"
// @Success 200 {object} dto.SubTodoResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/subtodos/{id}/check [patch]
// @Security CookieAuth
func (handler *Handler) ToggleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleCheck")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	subTodo, err := handler.service.ToggleCheck(ctx, principal.UserID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle sub-todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subTodo)
}

// DeleteSubTodo removes a sub-todo.
// @Summary Delete a sub-todo
// @Tags SubTodo
// @Produce json
// @Param id path string true "Sub-Todo ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/subtodos/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeleteSubTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSubTodo")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err = handler.service.DeleteSubTodo(ctx, principal.UserID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete sub-todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageSubTodoDeleted)
}
