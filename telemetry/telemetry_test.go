package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/splitter"
	"github.com/katalvlaran/bitsearch/telemetry"
	"github.com/katalvlaran/bitsearch/transition"
)

func TestMetrics_BFSHooks(t *testing.T) {
	m := telemetry.NewMetrics(prometheus.NewRegistry())

	tg := transition.NewToggle(0b001, 0b010, 0b100)
	res, err := bfs.ShortestPath(tg, 0, 0b111, m.BFSOptions()...)
	require.NoError(t, err)

	assert.Equal(t, float64(res.Expanded), testutil.ToFloat64(m.Expanded))
	assert.Equal(t, float64(res.Visited-1), testutil.ToFloat64(m.Enqueued))
}

func TestMetrics_DFSHooks(t *testing.T) {
	m := telemetry.NewMetrics(prometheus.NewRegistry())

	mf, err := splitter.New(5, 4, splitter.Point{X: 2, Y: 0}, []splitter.Point{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}})
	require.NoError(t, err)
	res, err := mf.Timelines(m.DFSOptions()...)
	require.NoError(t, err)

	assert.Equal(t, float64(res.Hits), testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, float64(res.Misses), testutil.ToFloat64(m.CacheMisses))
}

func TestMetrics_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.ObserveRun("toggle", time.Millisecond, nil)
	m.ObserveRun("toggle", time.Millisecond, nil)
	m.ObserveRun("paths", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues("toggle", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("paths", "error")))

	n, err := testutil.GatherAndCount(reg, "bitsearch_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one histogram series per kind")

	assert.Panics(t, func() { telemetry.NewMetrics(reg) }, "double registration")
}

func TestSetupTracing(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := telemetry.SetupTracing(&buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "solve-machine")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "solve-machine")
	assert.Contains(t, buf.String(), telemetry.ServiceName)
}
