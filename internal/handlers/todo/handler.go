package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"todolist/infras/otel"
	"todolist/internal/domains/todo/model/dto"
	"todolist/internal/domains/todo/service"
	"todolist/shared/constant"
	gDto "todolist/shared/dto"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/shared/validator"
	"todolist/transport/http/response"
)

const messageTodoDeleted = "todo deleted"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/my", handler.GetMyTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Patch("/{id}", handler.UpdateTodo)
		routerGroup.Patch("/{id}/check", handler.ToggleCheck)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos lists every todo, newest first.
// @Summary List all todos
// @Description Without page or size the whole list is returned as an array, otherwise one page.
// @Tags Todo
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {array} dto.TodoResponse "dto.TodoPageResponse when page or size is given"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	page := gDto.PageRequest{}

	paged, err := page.FromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	var res any
	if paged {
		res, err = handler.service.GetAllTodosPage(ctx, page)
	} else {
		res, err = handler.service.GetAllTodos(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMyTodos lists the caller's todos. Anonymous callers get an empty result.
// @Summary List my todos
// @Tags Todo
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {array} dto.TodoResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/my [get]
// @Security CookieAuth
func (handler *Handler) GetMyTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyTodos")
	defer scope.End()

	page := gDto.PageRequest{}

	paged, err := page.FromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	principal, _ := identity.FromContext(ctx)

	var res any
	if paged {
		res, err = handler.service.GetTodosPage(ctx, principal.UserID, page)
	} else {
		res, err = handler.service.GetTodos(ctx, principal.UserID)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTodoByID retrieves a todo item by its ID.
// @Summary Get a todo item by ID
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.FindByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.TodoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [post]
// @Security CookieAuth
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.CreateTodo(ctx, principal.UserID, req.Title)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + principal.UserID)

	response.WithJSON(w, http.StatusCreated, todo)
}

// UpdateTodo changes the title of a todo owned by the caller.
// @Summary Update a todo title
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	principal, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.LoginRequired)

		return
	}

	req := dto.UpdateTodoRequest{}

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

	todo, err := handler.service.UpdateTodoTitle(ctx, principal.UserID, id, req.Title)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// ToggleCheck flips a todo and applies the new state to all of its sub-todos.
// @Summary Toggle a todo
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id}/check [patch]
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

	todo, err := handler.service.ToggleCheck(ctx, principal.UserID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes a todo and its sub-todos.
// @Summary Delete a todo
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
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

	if err = handler.service.DeleteTodo(ctx, principal.UserID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageTodoDeleted)
}
