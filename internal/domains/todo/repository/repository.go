package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/dynamodb"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/infras/redis"
	"todos/internal/domains/todo/model"
	"todos/shared/constant"
)

// ErrStore marks a failure of the backing store. It is never used for a
// missing item: absence is reported through the found flag of Get and Find.
var ErrStore = errors.New("item store failure")

const (
	otelAttrUserID = "user_id"
	otelAttrTodoID = "todo_id"
	otelAttrDriver = "driver"
)

// Todo persists todo items keyed by (owner, todo id). Every call is a single
// store operation; there are no conditional writes, so concurrent updates to
// the same item are last-writer-wins.
type Todo interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error)
	Get(ctx context.Context, ownerID, todoID string) (model.Todo, bool, error)
	// Find locates an item by id alone so ownership can be decided against the
	// stored owner rather than assumed from the caller.
	Find(ctx context.Context, todoID string) (model.Todo, bool, error)
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	UpdateFields(ctx context.Context, ownerID, todoID string, update model.Update) error
	SetAttachmentURL(ctx context.Context, ownerID, todoID, url string) error
	Delete(ctx context.Context, ownerID, todoID string) error
}

// New opens the driver selected by STORE_DRIVER and wraps it with tracing and
// error classification.
func New(ctx context.Context, cfg *config.Config, awsCfg aws.Config, otel otel.Otel) (Todo, error) {
	var (
		driver Todo
		err    error
	)

	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		driver = NewDynamoDB(dynamodb.New(cfg, awsCfg), cfg.Store.TableName, cfg.Store.IndexName, cfg.Store.TodoIndexName)
	case config.StoreDriverPostgres:
		var conn *postgres.Connection

		conn, err = postgres.New(cfg)
		if err == nil {
			driver = NewPostgres(conn)
		}
	case config.StoreDriverRedis:
		client, redisErr := redis.New(ctx, cfg)
		if redisErr == nil {
			driver = NewRedis(client)
		}

		err = redisErr
	case config.StoreDriverMemory:
		driver = NewMemory()
	default:
		err = fmt.Errorf("%w: %s", config.ErrUnknownStoreDriver, cfg.Store.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}

	log.Info().Str(otelAttrDriver, cfg.Store.Driver).Msg("Item store initialized")

	return Wrap(driver, cfg.Store.Driver, otel), nil
}

type repositoryImpl struct {
	driver Todo
	name   string
	otel   otel.Otel
}

// Wrap decorates a raw driver. Driver errors come back wrapped in ErrStore and
// are logged with the operation and item identifiers.
func Wrap(driver Todo, name string, otel otel.Otel) Todo {
	return &repositoryImpl{
		driver: driver,
		name:   name,
		otel:   otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, op, ownerID, todoID string) (context.Context, otel.Scope) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, op))

	attrs := map[string]any{otelAttrDriver: r.name}
	if ownerID != "" {
		attrs[otelAttrUserID] = ownerID
	}

	if todoID != "" {
		attrs[otelAttrTodoID] = todoID
	}

	scope.SetAttributes(attrs)

	return ctx, scope
}

func (r *repositoryImpl) fail(op, ownerID, todoID string, err error) error {
	log.Error().
		Err(err).
		Str(otelAttrDriver, r.name).
		Str(otelAttrUserID, ownerID).
		Str(otelAttrTodoID, todoID).
		Msgf("failed to %s todo", op)

	return fmt.Errorf("%w: failed to %s todo: %w", ErrStore, op, err)
}

func (r *repositoryImpl) ListByOwner(ctx context.Context, ownerID string) (todos []model.Todo, err error) {
	ctx, scope := r.scope(ctx, "ListByOwner", ownerID, "")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err = r.driver.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, r.fail("list", ownerID, "", err)
	}

	scope.SetAttribute("count", len(todos))

	return todos, nil
}

func (r *repositoryImpl) Get(ctx context.Context, ownerID, todoID string) (todo model.Todo, found bool, err error) {
	ctx, scope := r.scope(ctx, "Get", ownerID, todoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, found, err = r.driver.Get(ctx, ownerID, todoID)
	if err != nil {
		return model.Todo{}, false, r.fail("get", ownerID, todoID, err)
	}

	return todo, found, nil
}

func (r *repositoryImpl) Find(ctx context.Context, todoID string) (todo model.Todo, found bool, err error) {
	ctx, scope := r.scope(ctx, "Find", "", todoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, found, err = r.driver.Find(ctx, todoID)
	if err != nil {
		return model.Todo{}, false, r.fail("find", "", todoID, err)
	}

	return todo, found, nil
}

func (r *repositoryImpl) Create(ctx context.Context, todo model.Todo) (created model.Todo, err error) {
	ctx, scope := r.scope(ctx, "Create", todo.UserID, todo.TodoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err = r.driver.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, r.fail("create", todo.UserID, todo.TodoID, err)
	}

	return created, nil
}

func (r *repositoryImpl) UpdateFields(ctx context.Context, ownerID, todoID string, update model.Update) (err error) {
	ctx, scope := r.scope(ctx, "UpdateFields", ownerID, todoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.driver.UpdateFields(ctx, ownerID, todoID, update); err != nil {
		return r.fail("update", ownerID, todoID, err)
	}

	return nil
}

func (r *repositoryImpl) SetAttachmentURL(ctx context.Context, ownerID, todoID, url string) (err error) {
	ctx, scope := r.scope(ctx, "SetAttachmentURL", ownerID, todoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.driver.SetAttachmentURL(ctx, ownerID, todoID, url); err != nil {
		return r.fail("set attachment url of", ownerID, todoID, err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, ownerID, todoID string) (err error) {
	ctx, scope := r.scope(ctx, "Delete", ownerID, todoID)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.driver.Delete(ctx, ownerID, todoID); err != nil {
		return r.fail("delete", ownerID, todoID, err)
	}

	return nil
}
