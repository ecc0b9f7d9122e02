package wrapper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/TechArp/CafeApp/cqrs/query"
	"github.com/TechArp/CafeApp/cqrs/query/wrapper"
)

func TestTracingQueryWrapper(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	count := query.Func[[]string, int](func(_ context.Context, in []string) (int, error) {
		if in == nil {
			return 0, errors.New("no events")
		}
		return len(in), nil
	})
	q := wrapper.NewTracingQueryWrapper[[]string, int]("tab.replay")(count)

	got, err := q.Execute(t.Context(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = q.Execute(t.Context(), nil)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "tab.replay", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
