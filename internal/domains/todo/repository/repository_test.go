package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/config"
	"todos/infras/otel/mocks"
	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/repository"
)

type failingDriver struct {
	err error
}

func (f failingDriver) ListByOwner(context.Context, string) ([]model.Todo, error) {
	return nil, f.err
}

func (f failingDriver) Get(context.Context, string, string) (model.Todo, bool, error) {
	return model.Todo{}, false, f.err
}

func (f failingDriver) Find(context.Context, string) (model.Todo, bool, error) {
	return model.Todo{}, false, f.err
}

func (f failingDriver) Create(context.Context, model.Todo) (model.Todo, error) {
	return model.Todo{}, f.err
}

func (f failingDriver) UpdateFields(context.Context, string, string, model.Update) error {
	return f.err
}

func (f failingDriver) SetAttachmentURL(context.Context, string, string, string) error {
	return f.err
}

func (f failingDriver) Delete(context.Context, string, string) error {
	return f.err
}

func TestWrap_ClassifiesDriverFailures(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	store := repository.Wrap(failingDriver{err: cause}, "test", mocks.NewOtel())

	_, err := store.ListByOwner(ctx, "user-a")
	assert.ErrorIs(t, err, repository.ErrStore)
	assert.ErrorIs(t, err, cause)

	_, found, err := store.Get(ctx, "user-a", "t1")
	assert.ErrorIs(t, err, repository.ErrStore)
	assert.False(t, found)

	_, _, err = store.Find(ctx, "t1")
	assert.ErrorIs(t, err, repository.ErrStore)

	_, err = store.Create(ctx, model.Todo{UserID: "user-a", TodoID: "t1"})
	assert.ErrorIs(t, err, repository.ErrStore)

	assert.ErrorIs(t, store.UpdateFields(ctx, "user-a", "t1", model.Update{}), repository.ErrStore)
	assert.ErrorIs(t, store.SetAttachmentURL(ctx, "user-a", "t1", "u"), repository.ErrStore)
	assert.ErrorIs(t, store.Delete(ctx, "user-a", "t1"), repository.ErrStore)
}

func TestWrap_AbsenceIsNotAFailure(t *testing.T) {
	store := repository.Wrap(repository.NewMemory(), config.StoreDriverMemory, mocks.NewOtel())

	_, found, err := store.Get(context.Background(), "user-a", "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr error
	}{
		{name: "memory", driver: config.StoreDriverMemory},
		{name: "dynamodb", driver: config.StoreDriverDynamoDB},
		{name: "unknown", driver: "cassandra", wantErr: config.ErrUnknownStoreDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Store.Driver = tt.driver
			cfg.Store.TableName = "Todos"
			cfg.Store.IndexName = "CreatedAtIndex"
			cfg.Store.TodoIndexName = "TodoIdIndex"

			store, err := repository.New(context.Background(), cfg, aws.Config{Region: "us-east-1"}, mocks.NewOtel())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, store)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
