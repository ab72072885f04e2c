package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(context.Background(), "service", "service.CreateTodo")
	scope.SetAttributes(map[string]any{
		"todo.id":      "t1",
		"todo.checked": true,
		"page":         2,
		"ids":          []string{"a"},
	})
	scope.AddEvent("created")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.CreateTodo", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	assert.Contains(t, span.Attributes(), attribute.String("todo.id", "t1"))
	assert.Contains(t, span.Attributes(), attribute.Bool("todo.checked", true))
	assert.Contains(t, span.Attributes(), attribute.Int("page", 2))
	assert.Len(t, span.Events(), 2)

	require.NoError(t, o.Shutdown(context.Background()))
}

func TestScope_AttributeFallbacksAndNilError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(context.Background(), "service", "service.ListTodos")
	scope.SetAttribute("elapsed", 2*time.Second)
	scope.SetAttribute("ratio", 0.5)
	scope.SetAttribute("filter", struct{ Page int }{Page: 3})
	scope.TraceError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())
	assert.Contains(t, span.Attributes(), attribute.String("elapsed", "2s"))
	assert.Contains(t, span.Attributes(), attribute.Float64("ratio", 0.5))
	assert.Contains(t, span.Attributes(), attribute.String("filter", "{3}"))
}
