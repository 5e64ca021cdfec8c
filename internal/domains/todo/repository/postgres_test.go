package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/infras/postgres"
	"todos/internal/domains/todo/model"
)

var todoColumns = []string{"user_id", "todo_id", "name", "due_date", "created_at", "done", "attachment_url"}

func newSQLMock(t *testing.T) (Todo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPostgres(postgres.NewWithDB(sqlx.NewDb(db, "postgres"))), mock
}

func TestPostgres_ListByOwner(t *testing.T) {
	store, mock := newSQLMock(t)

	rows := sqlmock.NewRows(todoColumns).
		AddRow("user-a", "t1", "one", "2024-02-01", createdAt, false, nil).
		AddRow("user-a", "t2", "two", "2024-02-02", createdAt, true, "https://b.s3.amazonaws.com/t2")

	mock.ExpectQuery(regexp.QuoteMeta(queryListByOwner)).
		WithArgs("user-a").
		WillReturnRows(rows)

	todos, err := store.ListByOwner(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "t1", todos[0].TodoID)
	assert.False(t, todos[0].HasAttachment())
	assert.True(t, todos[1].Done)
	require.True(t, todos[1].HasAttachment())
	assert.Equal(t, "https://b.s3.amazonaws.com/t2", *todos[1].AttachmentURL)
}

func TestPostgres_Get(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		err       error
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "found",
			rows:      sqlmock.NewRows(todoColumns).AddRow("user-a", "t1", "one", "2024-02-01", createdAt, false, nil),
			wantFound: true,
		},
		{
			name: "no rows",
			rows: sqlmock.NewRows(todoColumns),
		},
		{
			name:    "query error",
			err:     errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newSQLMock(t)

			expect := mock.ExpectQuery(regexp.QuoteMeta(queryGet)).WithArgs("user-a", "t1")
			if tt.err != nil {
				expect.WillReturnError(tt.err)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			todo, found, err := store.Get(context.Background(), "user-a", "t1")
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				assert.False(t, found)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)

			if tt.wantFound {
				assert.Equal(t, newTodo("user-a", "t1", "one", 0), todo)
			}
		})
	}
}

func TestPostgres_Find(t *testing.T) {
	store, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryFind)).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(todoColumns).AddRow("user-b", "t1", "one", "2024-02-01", createdAt, false, nil))
	mock.ExpectQuery(regexp.QuoteMeta(queryFind)).
		WithArgs("t2").
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todo, found, err := store.Find(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "user-b", todo.UserID)

	_, found, err = store.Find(context.Background(), "t2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgres_Create(t *testing.T) {
	store, mock := newSQLMock(t)
	todo := newTodo("user-a", "t1", "Buy milk", 0)

	mock.ExpectExec(`INSERT INTO todos \(user_id, todo_id, name, due_date, created_at, done, attachment_url\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\) ON CONFLICT \(user_id, todo_id\) DO UPDATE`).
		WithArgs("user-a", "t1", "Buy milk", "2024-02-01", createdAt, false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := store.Create(context.Background(), todo)
	require.NoError(t, err)
	assert.Equal(t, todo, created)
}

func TestPostgres_Writes(t *testing.T) {
	ctx := context.Background()
	store, mock := newSQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta(queryUpdateFields)).
		WithArgs("Buy oat milk", "2024-03-01", true, "user-a", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(querySetAttachment)).
		WithArgs("https://b.s3.amazonaws.com/t1", "user-a", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs("user-a", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.UpdateFields(ctx, "user-a", "t1", model.Update{Name: "Buy oat milk", DueDate: "2024-03-01", Done: true}))
	require.NoError(t, store.SetAttachmentURL(ctx, "user-a", "t1", "https://b.s3.amazonaws.com/t1"))
	require.NoError(t, store.Delete(ctx, "user-a", "t1"))
}

func TestPostgres_WriteErrors(t *testing.T) {
	ctx := context.Background()
	store, mock := newSQLMock(t)
	dbErr := errors.New("deadlock detected")

	mock.ExpectExec(regexp.QuoteMeta(queryUpdateFields)).WillReturnError(dbErr)
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).WillReturnError(dbErr)

	assert.ErrorIs(t, store.UpdateFields(ctx, "user-a", "t1", model.Update{}), dbErr)
	assert.ErrorIs(t, store.Delete(ctx, "user-a", "t1"), dbErr)
}
