package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/infras/s3"
	"todos/internal/domains/todo/event"
	"todos/internal/domains/todo/guard"
	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/repository"
	"todos/shared/constant"
	"todos/shared/failure"
)

const MessageEmptyName = "the todo name cannot be empty"

type Todo interface {
	List(ctx context.Context) (dto.GetTodosResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) error
	Delete(ctx context.Context, id string) error
	IssueAttachmentURL(ctx context.Context, id string) (dto.UploadURLResponse, error)
}

type serviceImpl struct {
	repo      repository.Todo
	storage   s3.S3
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Todo, storage s3.S3, publisher event.Publisher, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		otel:      otel,
	}
}

// caller returns the authenticated subject placed in the context by the auth
// middleware.
func caller(ctx context.Context) (string, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return "", failure.Unauthorized("missing identity") //nolint:wrapcheck
	}

	return user, nil
}

// authorize resolves the caller's own item by primary key first. Only a miss
// falls back to the lookup by id alone, so a stranger gets Forbidden rather
// than NotFound and an owner never waits on the todo index.
func (s *serviceImpl) authorize(ctx context.Context, user, id string) (model.Todo, error) {
	todo, found, err := s.repo.Get(ctx, user, id)
	if err == nil && !found {
		todo, found, err = s.repo.Find(ctx, id)
	}

	if err != nil {
		log.Error().Err(err).Str("todo_id", id).Msg("failed to get todo")

		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	decision := guard.Check(todo.UserID, user, found)
	if err := decision.Err(); err != nil {
		log.Info().Str("todo_id", id).Str("user_id", user).Stringer("decision", decision).Msg("todo access refused")

		return model.Todo{}, err //nolint:wrapcheck
	}

	return todo, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return res, err
	}

	todos, err := s.repo.ListByOwner(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to list todos")

		return res, fmt.Errorf("failed to list todos: %w", err)
	}

	res.FromModels(todos)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.repo.Create(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	scope.SetAttribute("todo_id", todo.TodoID)
	s.publisher.Publish(ctx, event.New(event.Created, user, todo.TodoID))

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return res, err
	}

	todo, err := s.authorize(ctx, user, id)
	if err != nil {
		return res, err
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" {
		return failure.BadRequestFromString(MessageEmptyName) //nolint:wrapcheck
	}

	if _, err = s.authorize(ctx, user, id); err != nil {
		return err
	}

	if err = s.repo.UpdateFields(ctx, user, id, req.ToUpdate()); err != nil {
		log.Error().Err(err).Str("todo_id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	s.publisher.Publish(ctx, event.New(event.Updated, user, id))

	return nil
}

// Delete removes the item and then, best effort, its uploaded blob.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return err
	}

	todo, err := s.authorize(ctx, user, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, user, id); err != nil {
		log.Error().Err(err).Str("todo_id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if todo.HasAttachment() {
		if cleanupErr := s.storage.DeleteObject(ctx, s3.ObjectKey(id)); cleanupErr != nil {
			log.Warn().Err(cleanupErr).Str("todo_id", id).Msg("attachment left behind")
		}
	}

	s.publisher.Publish(ctx, event.New(event.Deleted, user, id))

	return nil
}

func (s *serviceImpl) IssueAttachmentURL(ctx context.Context, id string) (res dto.UploadURLResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueAttachmentURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := caller(ctx)
	if err != nil {
		return res, err
	}

	if _, err = s.authorize(ctx, user, id); err != nil {
		return res, err
	}

	attachment, err := s.storage.IssueUploadURL(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("todo_id", id).Msg("failed to issue upload url")

		return res, fmt.Errorf("failed to issue upload url: %w", err)
	}

	if err = s.repo.SetAttachmentURL(ctx, user, id, attachment.AttachmentURL); err != nil {
		log.Error().Err(err).Str("todo_id", id).Msg("failed to record attachment url")

		return res, fmt.Errorf("failed to record attachment url: %w", err)
	}

	s.publisher.Publish(ctx, event.New(event.AttachmentIssued, user, id))

	res.UploadURL = attachment.UploadURL

	return res, nil
}
