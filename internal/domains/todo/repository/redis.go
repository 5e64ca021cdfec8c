package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	goRedis "github.com/redis/go-redis/v9"

	"todos/internal/domains/todo/model"
)

const (
	redisKeyPrefix   = "todos:"
	redisOwnerPrefix = "todo-owner:"
)

type redisImpl struct {
	client goRedis.UniversalClient
}

// NewRedis keeps one hash per owner: field todoId, value the JSON encoded item.
// A string key per todo records its owner for Find.
func NewRedis(client goRedis.UniversalClient) Todo {
	return &redisImpl{client: client}
}

func ownerKey(ownerID string) string {
	return redisKeyPrefix + ownerID
}

func reverseKey(todoID string) string {
	return redisOwnerPrefix + todoID
}

func (r *redisImpl) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	raw, err := r.client.HGetAll(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall: %w", err)
	}

	todos := make([]model.Todo, 0, len(raw))

	for todoID, payload := range raw {
		var todo model.Todo
		if err := json.Unmarshal([]byte(payload), &todo); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", todoID, err)
		}

		todos = append(todos, todo)
	}

	slices.SortFunc(todos, func(a, b model.Todo) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return todos, nil
}

func (r *redisImpl) Get(ctx context.Context, ownerID, todoID string) (model.Todo, bool, error) {
	return r.get(ctx, r.client, ownerID, todoID)
}

func (r *redisImpl) Find(ctx context.Context, todoID string) (model.Todo, bool, error) {
	ownerID, err := r.client.Get(ctx, reverseKey(todoID)).Result()
	if errors.Is(err, goRedis.Nil) {
		return model.Todo{}, false, nil
	}

	if err != nil {
		return model.Todo{}, false, fmt.Errorf("get owner: %w", err)
	}

	return r.get(ctx, r.client, ownerID, todoID)
}

func (r *redisImpl) get(ctx context.Context, cmd goRedis.Cmdable, ownerID, todoID string) (model.Todo, bool, error) {
	payload, err := cmd.HGet(ctx, ownerKey(ownerID), todoID).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return model.Todo{}, false, nil
	}

	if err != nil {
		return model.Todo{}, false, fmt.Errorf("hget: %w", err)
	}

	var todo model.Todo
	if err := json.Unmarshal(payload, &todo); err != nil {
		return model.Todo{}, false, fmt.Errorf("decode item: %w", err)
	}

	return todo, true, nil
}

func (r *redisImpl) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	payload, err := json.Marshal(todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("encode item: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		pipe.HSet(ctx, ownerKey(todo.UserID), todo.TodoID, payload)
		pipe.Set(ctx, reverseKey(todo.TodoID), todo.UserID, 0)

		return nil
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("hset: %w", err)
	}

	return todo, nil
}

// modify reads the item and writes it back with the new fields. The last
// writer wins; a missing item is left missing.
func (r *redisImpl) modify(ctx context.Context, ownerID, todoID string, apply func(*model.Todo)) error {
	todo, found, err := r.get(ctx, r.client, ownerID, todoID)
	if err != nil {
		return err
	}

	if !found {
		return nil
	}

	apply(&todo)

	payload, err := json.Marshal(todo)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	if err := r.client.HSet(ctx, ownerKey(ownerID), todoID, payload).Err(); err != nil {
		return fmt.Errorf("hset: %w", err)
	}

	return nil
}

func (r *redisImpl) UpdateFields(ctx context.Context, ownerID, todoID string, update model.Update) error {
	return r.modify(ctx, ownerID, todoID, func(todo *model.Todo) {
		todo.Name = update.Name
		todo.DueDate = update.DueDate
		todo.Done = update.Done
	})
}

func (r *redisImpl) SetAttachmentURL(ctx context.Context, ownerID, todoID, url string) error {
	return r.modify(ctx, ownerID, todoID, func(todo *model.Todo) {
		todo.AttachmentURL = &url
	})
}

func (r *redisImpl) Delete(ctx context.Context, ownerID, todoID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		pipe.HDel(ctx, ownerKey(ownerID), todoID)
		pipe.Del(ctx, reverseKey(todoID))

		return nil
	})
	if err != nil {
		return fmt.Errorf("hdel: %w", err)
	}

	return nil
}
