package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/domains/todo/model"
)

var createdAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTodo(ownerID, todoID, name string, offset time.Duration) model.Todo {
	return model.Todo{
		UserID:    ownerID,
		TodoID:    todoID,
		Name:      name,
		DueDate:   "2024-02-01",
		CreatedAt: createdAt.Add(offset),
	}
}

// runContract exercises the behavior every driver shares. open must return a
// fresh, empty store.
func runContract(t *testing.T, open func(t *testing.T) Todo) {
	t.Helper()

	ctx := context.Background()

	t.Run("empty owner lists nothing", func(t *testing.T) {
		store := open(t)

		todos, err := store.ListByOwner(ctx, "user-a")
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("create then get", func(t *testing.T) {
		store := open(t)
		want := newTodo("user-a", "t1", "Buy milk", 0)

		created, err := store.Create(ctx, want)
		require.NoError(t, err)
		assert.Equal(t, want, created)

		got, found, err := store.Get(ctx, "user-a", "t1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
		assert.False(t, got.HasAttachment())
	})

	t.Run("missing item is not found", func(t *testing.T) {
		store := open(t)

		_, found, err := store.Get(ctx, "user-a", "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("key includes the owner", func(t *testing.T) {
		store := open(t)

		_, err := store.Create(ctx, newTodo("user-a", "t1", "Buy milk", 0))
		require.NoError(t, err)

		_, found, err := store.Get(ctx, "user-b", "t1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("find ignores the owner", func(t *testing.T) {
		store := open(t)
		want := newTodo("user-a", "t1", "Buy milk", 0)

		_, err := store.Create(ctx, want)
		require.NoError(t, err)

		got, found, err := store.Find(ctx, "t1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)

		_, found, err = store.Find(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("list is scoped to the owner", func(t *testing.T) {
		store := open(t)

		for _, todo := range []model.Todo{
			newTodo("user-a", "t1", "one", 0),
			newTodo("user-a", "t2", "two", time.Minute),
			newTodo("user-b", "t3", "three", 2*time.Minute),
		} {
			_, err := store.Create(ctx, todo)
			require.NoError(t, err)
		}

		todos, err := store.ListByOwner(ctx, "user-a")
		require.NoError(t, err)
		require.Len(t, todos, 2)

		ids := []string{todos[0].TodoID, todos[1].TodoID}
		assert.ElementsMatch(t, []string{"t1", "t2"}, ids)

		for _, todo := range todos {
			assert.Equal(t, "user-a", todo.UserID)
		}
	})

	t.Run("create replaces an existing item", func(t *testing.T) {
		store := open(t)

		_, err := store.Create(ctx, newTodo("user-a", "t1", "first", 0))
		require.NoError(t, err)

		_, err = store.Create(ctx, newTodo("user-a", "t1", "second", 0))
		require.NoError(t, err)

		got, _, err := store.Get(ctx, "user-a", "t1")
		require.NoError(t, err)
		assert.Equal(t, "second", got.Name)
	})

	t.Run("update touches only the mutable fields", func(t *testing.T) {
		store := open(t)
		original := newTodo("user-a", "t1", "Buy milk", 0)

		_, err := store.Create(ctx, original)
		require.NoError(t, err)
		require.NoError(t, store.SetAttachmentURL(ctx, "user-a", "t1", "https://bucket.s3.amazonaws.com/t1"))

		err = store.UpdateFields(ctx, "user-a", "t1", model.Update{Name: "Buy oat milk", DueDate: "2024-03-01", Done: true})
		require.NoError(t, err)

		got, found, err := store.Get(ctx, "user-a", "t1")
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "Buy oat milk", got.Name)
		assert.Equal(t, "2024-03-01", got.DueDate)
		assert.True(t, got.Done)
		assert.Equal(t, original.CreatedAt, got.CreatedAt)
		assert.Equal(t, original.UserID, got.UserID)
		assert.Equal(t, original.TodoID, got.TodoID)
		require.True(t, got.HasAttachment())
		assert.Equal(t, "https://bucket.s3.amazonaws.com/t1", *got.AttachmentURL)
	})

	t.Run("set attachment url touches only the url", func(t *testing.T) {
		store := open(t)
		original := newTodo("user-a", "t1", "Buy milk", 0)

		_, err := store.Create(ctx, original)
		require.NoError(t, err)

		require.NoError(t, store.SetAttachmentURL(ctx, "user-a", "t1", "https://bucket.s3.amazonaws.com/t1"))

		got, _, err := store.Get(ctx, "user-a", "t1")
		require.NoError(t, err)

		require.NotNil(t, got.AttachmentURL)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/t1", *got.AttachmentURL)

		got.AttachmentURL = nil
		assert.Equal(t, original, got)
	})

	t.Run("delete removes the item", func(t *testing.T) {
		store := open(t)

		_, err := store.Create(ctx, newTodo("user-a", "t1", "Buy milk", 0))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "user-a", "t1"))

		_, found, err := store.Get(ctx, "user-a", "t1")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = store.Find(ctx, "t1")
		require.NoError(t, err)
		assert.False(t, found)

		todos, err := store.ListByOwner(ctx, "user-a")
		require.NoError(t, err)
		assert.Empty(t, todos)
	})

	t.Run("delete of a missing item succeeds", func(t *testing.T) {
		store := open(t)

		assert.NoError(t, store.Delete(ctx, "user-a", "nope"))
	})
}
