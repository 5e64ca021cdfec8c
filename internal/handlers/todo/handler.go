package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/service"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/validator"
	"todos/transport/http/middleware"
	"todos/transport/http/response"
)

type Handler struct {
	service    service.Todo
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Todo, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{todoId}", handler.GetTodo)
		routerGroup.Patch("/{todoId}", handler.UpdateTodo)
		routerGroup.Delete("/{todoId}", handler.DeleteTodo)
		routerGroup.Post("/{todoId}/attachment", handler.IssueAttachmentURL)
	})
}

func fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	if failure.IsServerError(err) {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	response.WithError(writer, err)
}

// GetTodos lists the caller's todo items.
// @Summary List todo items
// @Description List every todo item owned by the authenticated caller.
// @Tags Todo
// @Produce json
// @Success 200 {object} dto.GetTodosResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos [get]
// @Security BearerAuth
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		fail(writer, scope, err, "failed to list todos")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a todo item owned by the caller. It starts not done and without an attachment.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos [post]
// @Security BearerAuth
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		fail(writer, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		fail(writer, scope, err, "failed to create todo")

		return
	}

	scope.AddEvent("todo created")

	response.WithJSON(writer, http.StatusCreated, dto.ItemResponse{Item: res})
}

// GetTodo returns a single todo item.
// @Summary Get a todo item
// @Tags Todo
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [get]
// @Security BearerAuth
func (handler *Handler) GetTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamTodoID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		fail(writer, scope, err, "failed to get todo")

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.ItemResponse{Item: res})
}

// UpdateTodo replaces the name, due date and completion flag of a todo item.
// @Summary Update a todo item
// @Tags Todo
// @Accept json
// @Produce json
// @Param todoId path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} dto.EmptyResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamTodoID)
	req := dto.UpdateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		fail(writer, scope, err, "failed to update todo")

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.EmptyResponse{})
}

// DeleteTodo removes a todo item and its attachment.
// @Summary Delete a todo item
// @Tags Todo
// @Param todoId path string true "Todo ID"
// @Success 204
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamTodoID)

	if err := handler.service.Delete(ctx, id); err != nil {
		fail(writer, scope, err, "failed to delete todo")

		return
	}

	response.WithNoContent(writer)
}

// IssueAttachmentURL returns a short lived upload URL for the todo's attachment.
// @Summary Issue an attachment upload URL
// @Description The returned URL accepts a single PUT of the file body until it expires.
// @Tags Todo
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.UploadURLResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId}/attachment [post]
// @Security BearerAuth
func (handler *Handler) IssueAttachmentURL(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueAttachmentURL")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamTodoID)

	res, err := handler.service.IssueAttachmentURL(ctx, id)
	if err != nil {
		fail(writer, scope, err, "failed to issue attachment url")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
