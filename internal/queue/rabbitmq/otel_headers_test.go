package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func useTraceContext(t *testing.T) {
	t.Helper()
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })
}

func TestTraceHeadersRoundTrip(t *testing.T) {
	useTraceContext(t)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03},
		SpanID:     trace.SpanID{0x04, 0x05},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := traceHeaders(ctx)
	require.Contains(t, headers, "traceparent")

	got := trace.SpanContextFromContext(contextFromHeaders(context.Background(), headers))
	require.Equal(t, sc.TraceID(), got.TraceID())
	require.Equal(t, sc.SpanID(), got.SpanID())
	require.True(t, got.IsRemote())
}

func TestContextFromHeaders(t *testing.T) {
	useTraceContext(t)
	traceparent := "00-01020300000000000000000000000000-0405000000000000-01"

	t.Run("byte array header", func(t *testing.T) {
		ctx := contextFromHeaders(context.Background(), amqp.Table{"traceparent": []byte(traceparent)})
		sc := trace.SpanContextFromContext(ctx)
		require.True(t, sc.IsValid())
		require.Equal(t, "01020300000000000000000000000000", sc.TraceID().String())
	})

	t.Run("no headers", func(t *testing.T) {
		ctx := context.Background()
		require.Equal(t, ctx, contextFromHeaders(ctx, nil))
	})

	t.Run("unrelated headers", func(t *testing.T) {
		ctx := contextFromHeaders(context.Background(), amqp.Table{"x-retry": int32(2)})
		require.False(t, trace.SpanContextFromContext(ctx).IsValid())
	})
}

func TestHeaderCarrierGet(t *testing.T) {
	c := headerCarrier{"s": "v", "b": []byte("v"), "n": int64(7)}
	require.Equal(t, "v", c.Get("s"))
	require.Equal(t, "v", c.Get("b"))
	require.Equal(t, "7", c.Get("n"))
	require.Empty(t, c.Get("missing"))
	require.ElementsMatch(t, []string{"s", "b", "n"}, c.Keys())
}
