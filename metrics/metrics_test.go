package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/otel-instrument/metrics"
	"github.com/aalemi-dev/otel-instrument/observability"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(metrics.Config{
		Address:     metrics.Ptr(""),
		ServiceName: "test",
	})
}

func TestNewMetrics_DefaultAddress(t *testing.T) {
	t.Parallel()
	m := metrics.NewMetrics(metrics.Config{ServiceName: "test"})

	require.NotNil(t, m.Server)
	assert.Equal(t, metrics.DefaultAddress, m.Server.Addr)
	assert.NotNil(t, m.Registry)
}

func TestNewMetrics_ServerDisabled(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	assert.Nil(t, m.Server)
	assert.NotNil(t, m.Registry)
}

func TestNewMetrics_RuntimeCollectors(t *testing.T) {
	t.Parallel()
	m := metrics.NewMetrics(metrics.Config{
		Address:              metrics.Ptr(""),
		EnableRuntimeMetrics: true,
	})

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCreateCounterAndHistogram(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	counter := m.CreateCounter("jobs_total", "Jobs.", []string{"kind"})
	counter.WithLabelValues("import").Inc()
	counter.WithLabelValues("import").Add(2)

	histogram := m.CreateHistogram("job_seconds", "Job duration.", []string{"kind"}, []float64{1, 5})
	histogram.WithLabelValues("import").Observe(0.5)

	expected := `
# HELP jobs_total Jobs.
# TYPE jobs_total counter
jobs_total{kind="import",service="test"} 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "jobs_total"))
	count, err := testutil.GatherAndCount(m.Registry, "job_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCallObserver(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	observer := metrics.NewCallObserver(m)

	var _ observability.Observer = observer

	observer.ObserveOperation(observability.OperationContext{Operation: "BuildReport", Duration: 10 * time.Millisecond})
	observer.ObserveOperation(observability.OperationContext{Operation: "BuildReport", Duration: 20 * time.Millisecond})
	observer.ObserveOperation(observability.OperationContext{Operation: "BuildReport", Error: errors.New("boom")})

	expected := `
# HELP instrumented_calls_total Calls of instrumented functions by span name and outcome.
# TYPE instrumented_calls_total counter
instrumented_calls_total{outcome="error",service="test",span="BuildReport"} 1
instrumented_calls_total{outcome="success",service="test",span="BuildReport"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), metrics.CallsTotalName))

	count, err := testutil.GatherAndCount(m.Registry, metrics.CallDurationName)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServerHandler_ServesMetrics(t *testing.T) {
	t.Parallel()
	m := metrics.NewMetrics(metrics.Config{Address: metrics.Ptr(":0"), ServiceName: "test"})
	metrics.NewCallObserver(m).ObserveOperation(observability.OperationContext{Operation: "Run"})

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), metrics.CallsTotalName)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("METRICS_ADDRESS", ":9999")
	t.Setenv("OTEL_SERVICE_NAME", "env-service")

	cfg, err := metrics.ConfigFromEnv()

	require.NoError(t, err)
	require.NotNil(t, cfg.Address)
	assert.Equal(t, ":9999", *cfg.Address)
	assert.Equal(t, "env-service", cfg.ServiceName)
}
