package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/shared/constant"
	"todos/shared/failure"
	"todos/transport/http/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"todoId": "t1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, map[string]any{"todoId": "t1"}, decode(t, rec))
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "client failure keeps its message",
			err:      failure.Forbidden("Not authorized"),
			wantCode: http.StatusForbidden,
			wantMsg:  "Not authorized",
		},
		{
			name:     "plain error is a generic server failure",
			err:      errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.wantMsg}, decode(t, rec))
		})
	}
}

func TestWithNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, map[string]any{"message": constant.ResponseErrorPrepareShutdown}, decode(t, rec))
}
