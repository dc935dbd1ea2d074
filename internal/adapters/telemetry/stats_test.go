package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/asyncwalk/internal/adapters/telemetry"
)

func TestStatsProcessor_Aggregates(t *testing.T) {
	stats := telemetry.NewStatsProcessor()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(stats))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := tp.Tracer("test")
	start := time.Unix(1000, 0)

	end := func(name string, d time.Duration, fail bool) {
		_, span := tracer.Start(context.Background(), name, trace.WithTimestamp(start))
		if fail {
			span.RecordError(errors.New("boom"))
			span.SetStatus(codes.Error, "boom")
		}
		span.End(trace.WithTimestamp(start.Add(d)))
	}

	end("read", 10*time.Millisecond, false)
	end("read", 30*time.Millisecond, false)
	end("open", 5*time.Millisecond, true)
	end("open", 15*time.Millisecond, false)

	snap := stats.Snapshot()
	require.Len(t, snap, 2)

	assert.Equal(t, "open", snap[0].Name)
	assert.Equal(t, 2, snap[0].Count)
	assert.Equal(t, 1, snap[0].Errors)
	assert.Equal(t, 15*time.Millisecond, snap[0].Max)
	assert.Equal(t, 10*time.Millisecond, snap[0].Mean())

	assert.Equal(t, "read", snap[1].Name)
	assert.Equal(t, 40*time.Millisecond, snap[1].Total)
	assert.Equal(t, 20*time.Millisecond, snap[1].Mean())
}

func TestStatsProcessor_Empty(t *testing.T) {
	stats := telemetry.NewStatsProcessor()
	assert.Empty(t, stats.Snapshot())
	assert.Zero(t, telemetry.OpStats{}.Mean())
	require.NoError(t, stats.ForceFlush(context.Background()))
	require.NoError(t, stats.Shutdown(context.Background()))
}
