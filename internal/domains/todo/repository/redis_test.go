package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/domains/todo/model"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, Todo) {
	t.Helper()

	server := miniredis.RunT(t)

	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedis(client)
}

func TestRedis_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Todo {
		t.Helper()

		_, store := newMiniredis(t)

		return store
	})
}

func TestRedis_OneHashPerOwner(t *testing.T) {
	ctx := context.Background()
	server, store := newMiniredis(t)

	_, err := store.Create(ctx, newTodo("user-a", "t1", "Buy milk", 0))
	require.NoError(t, err)

	assert.True(t, server.Exists("todos:user-a"))
	fields, err := server.HKeys("todos:user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, fields)
	assert.Contains(t, server.HGet("todos:user-a", "t1"), `"name":"Buy milk"`)

	owner, err := server.Get("todo-owner:t1")
	require.NoError(t, err)
	assert.Equal(t, "user-a", owner)

	require.NoError(t, store.Delete(ctx, "user-a", "t1"))
	assert.False(t, server.Exists("todo-owner:t1"))
}

func TestRedis_UpdateMissingItemStaysMissing(t *testing.T) {
	ctx := context.Background()
	server, store := newMiniredis(t)

	require.NoError(t, store.UpdateFields(ctx, "user-a", "ghost", model.Update{Name: "x", DueDate: "y"}))

	assert.False(t, server.Exists("todos:user-a"))
}

func TestRedis_UpdateLastWriterWins(t *testing.T) {
	ctx := context.Background()
	_, store := newMiniredis(t)

	_, err := store.Create(ctx, newTodo("user-a", "t1", "Buy milk", 0))
	require.NoError(t, err)

	require.NoError(t, store.SetAttachmentURL(ctx, "user-a", "t1", "https://bucket.s3.amazonaws.com/t1"))
	require.NoError(t, store.UpdateFields(ctx, "user-a", "t1", model.Update{Name: "first", DueDate: "2024-01-01"}))
	require.NoError(t, store.UpdateFields(ctx, "user-a", "t1", model.Update{Name: "second", DueDate: "2024-02-01", Done: true}))

	todo, found, err := store.Get(ctx, "user-a", "t1")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "second", todo.Name)
	assert.Equal(t, "2024-02-01", todo.DueDate)
	assert.True(t, todo.Done)
	require.NotNil(t, todo.AttachmentURL)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/t1", *todo.AttachmentURL)
}

func TestRedis_CorruptItem(t *testing.T) {
	ctx := context.Background()
	server, store := newMiniredis(t)

	server.HSet("todos:user-a", "t1", "not json")

	_, err := store.ListByOwner(ctx, "user-a")
	assert.Error(t, err)

	_, _, err = store.Get(ctx, "user-a", "t1")
	assert.Error(t, err)
}

func TestRedis_ServerDown(t *testing.T) {
	ctx := context.Background()
	server, store := newMiniredis(t)

	server.Close()

	_, found, err := store.Get(ctx, "user-a", "t1")
	assert.Error(t, err)
	assert.False(t, found)
}
