package tracing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/TechArp/CafeApp/observability/tracing"
)

func TestGetStartingTraceID_WithoutSpan(t *testing.T) {
	id := tracing.GetStartingTraceID(t.Context())
	assert.True(t, strings.HasPrefix(id, "man-"))
}

func TestInitGlobalTracer_WithoutExporter(t *testing.T) {
	shutdown, err := tracing.InitGlobalTracer(tracing.Config{SampleRate: 1})
	require.NoError(t, err)
	defer func() { require.NoError(t, shutdown()) }()

	ctx, span := otel.Tracer("test").Start(t.Context(), "op")
	defer span.End()

	id := tracing.GetStartingTraceID(ctx)
	assert.Equal(t, span.SpanContext().TraceID().String(), id)
}

func TestInitGlobalTracer_Disabled(t *testing.T) {
	shutdown, err := tracing.InitGlobalTracer(tracing.Config{Disable: true})
	require.NoError(t, err)
	require.NoError(t, shutdown())
}
