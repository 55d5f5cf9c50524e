package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := Tracer("grid").Start(context.Background(), "grid.fill")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mazegen/grid", spans[0].InstrumentationScope().Name)
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), "output.maz")
	require.NoError(t, err)

	attrs := make(map[attribute.Key]string)
	for _, kv := range res.Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}

	assert.Equal(t, serviceName, attrs["service.name"])
	assert.Equal(t, "output.maz", attrs["mazegen.output.path"])
	assert.Equal(t, "maz", attrs["mazegen.output.format"])
}
