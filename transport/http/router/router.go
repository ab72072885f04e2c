package router

import (
	"github.com/go-chi/chi/v5"
	"todolist/internal/handlers/auth"
	"todolist/internal/handlers/subtodo"
	"todolist/internal/handlers/todo"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Todo    todo.Handler
	SubTodo subtodo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes registers every domain under the given group, which the server mounts at /api.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
	r.DomainHandlers.SubTodo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
