package router

import (
	"github.com/go-chi/chi/v5"

	"todos/internal/handlers/authorizer"
	"todos/internal/handlers/todo"
)

type DomainHandlers struct {
	Authorizer authorizer.Handler
	Todo       todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Authorizer.Router(routerGroup)
		r.DomainHandlers.Todo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
