package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todos/infras/postgres"
	"todos/internal/domains/todo/model"
)

const (
	postgresTable   = "todos"
	postgresColumns = "user_id, todo_id, name, due_date, created_at, done, attachment_url"
)

var (
	queryListByOwner = fmt.Sprintf(
		"SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at", postgresColumns, postgresTable)
	queryGet = fmt.Sprintf(
		"SELECT %s FROM %s WHERE user_id = $1 AND todo_id = $2", postgresColumns, postgresTable)
	queryFind = fmt.Sprintf(
		"SELECT %s FROM %s WHERE todo_id = $1 LIMIT 1", postgresColumns, postgresTable)
	// Create is an unconditional put: an existing row with the same key is replaced.
	queryUpsert = fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (:user_id, :todo_id, :name, :due_date, :created_at, :done, :attachment_url) "+
			"ON CONFLICT (user_id, todo_id) DO UPDATE SET name = EXCLUDED.name, due_date = EXCLUDED.due_date, "+
			"created_at = EXCLUDED.created_at, done = EXCLUDED.done, attachment_url = EXCLUDED.attachment_url",
		postgresTable, postgresColumns)
	queryUpdateFields = fmt.Sprintf(
		"UPDATE %s SET name = $1, due_date = $2, done = $3 WHERE user_id = $4 AND todo_id = $5", postgresTable)
	querySetAttachment = fmt.Sprintf(
		"UPDATE %s SET attachment_url = $1 WHERE user_id = $2 AND todo_id = $3", postgresTable)
	queryDelete = fmt.Sprintf(
		"DELETE FROM %s WHERE user_id = $1 AND todo_id = $2", postgresTable)
)

type postgresImpl struct {
	db *postgres.Connection
}

// NewPostgres stores items in the todos table created by the migrations under
// migrations/postgres.
func NewPostgres(db *postgres.Connection) Todo {
	return &postgresImpl{db: db}
}

func (p *postgresImpl) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	todos := []model.Todo{}

	if err := p.db.Read.SelectContext(ctx, &todos, queryListByOwner, ownerID); err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}

	return todos, nil
}

func (p *postgresImpl) Get(ctx context.Context, ownerID, todoID string) (model.Todo, bool, error) {
	return p.get(ctx, queryGet, ownerID, todoID)
}

func (p *postgresImpl) Find(ctx context.Context, todoID string) (model.Todo, bool, error) {
	return p.get(ctx, queryFind, todoID)
}

func (p *postgresImpl) get(ctx context.Context, query string, args ...any) (model.Todo, bool, error) {
	var todo model.Todo

	err := p.db.Read.GetContext(ctx, &todo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, false, nil
	}

	if err != nil {
		return model.Todo{}, false, fmt.Errorf("select todo: %w", err)
	}

	return todo, true, nil
}

func (p *postgresImpl) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if _, err := p.db.Write.NamedExecContext(ctx, queryUpsert, todo); err != nil {
		return model.Todo{}, fmt.Errorf("insert todo: %w", err)
	}

	return todo, nil
}

func (p *postgresImpl) UpdateFields(ctx context.Context, ownerID, todoID string, update model.Update) error {
	_, err := p.db.Write.ExecContext(ctx, queryUpdateFields, update.Name, update.DueDate, update.Done, ownerID, todoID)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	return nil
}

func (p *postgresImpl) SetAttachmentURL(ctx context.Context, ownerID, todoID, url string) error {
	if _, err := p.db.Write.ExecContext(ctx, querySetAttachment, url, ownerID, todoID); err != nil {
		return fmt.Errorf("update attachment url: %w", err)
	}

	return nil
}

func (p *postgresImpl) Delete(ctx context.Context, ownerID, todoID string) error {
	if _, err := p.db.Write.ExecContext(ctx, queryDelete, ownerID, todoID); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	return nil
}
