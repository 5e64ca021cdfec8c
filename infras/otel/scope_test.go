package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"todos/infras/otel"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "todo.Update")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"todo_id": "t-1",
		"done":    true,
		"count":   3,
		"expiry":  int64(300),
	})
	scope.AddEvent("updated")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("store unavailable"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "todo.Update", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "store unavailable", ended.Status().Description)
	assert.Len(t, ended.Attributes(), 4)
}
