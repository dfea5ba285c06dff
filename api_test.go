package typos

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestFindShortestPath_RecordsTelemetry(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	found := testutil.ToFloat64(searchTotal.WithLabelValues("fringe", "found"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result, err := FindShortestPath(context.Background(), "banane", "banana",
		[]string{"table", "chaise"}, Fringe, WithLogger(logger))
	require.NoError(t, err)
	require.True(t, result.Found)

	assert.Equal(t, found+1, testutil.ToFloat64(searchTotal.WithLabelValues("fringe", "found")))
	assert.Contains(t, logs.String(), "search finished")
	assert.Contains(t, logs.String(), "algorithm=fringe")

	names := make(map[string]bool)
	for _, span := range recorder.Ended() {
		names[span.Name()] = true
	}
	assert.True(t, names["typos.FindShortestPath"])
	assert.True(t, names["typos.Search"])
}

func TestBuildOptions(t *testing.T) {
	options := buildOptions([]Option{WithLogger(nil), WithWorkers(3), WithMaxExpansions(9)})
	assert.Equal(t, slog.Default(), options.Logger)
	assert.Equal(t, 3, options.NumberOfWorkers)
	assert.Equal(t, 9, options.MaxExpansions)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "found", outcomeOf(true, nil))
	assert.Equal(t, "exhausted", outcomeOf(false, nil))
	assert.Equal(t, "budget_exceeded", outcomeOf(false, ErrBudgetExceeded))
	assert.Equal(t, "error", outcomeOf(false, context.Canceled))
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))

	_, err := FindShortestPath(context.Background(), "banane", "banana", nil, BestFirst)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["typos_search_total"])
	assert.True(t, names["typos_search_expansions"])
	assert.True(t, names["typos_search_duration_seconds"])

	err = RegisterMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestImportRegistersNothing(t *testing.T) {
	owned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "typos_search_total",
		Help: "Owned by the embedding program",
	})
	require.NoError(t, prometheus.DefaultRegisterer.Register(owned))
	t.Cleanup(func() { prometheus.DefaultRegisterer.Unregister(owned) })
}
