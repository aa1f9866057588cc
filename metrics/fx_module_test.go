package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/otel-instrument/logger"
	"github.com/aalemi-dev/otel-instrument/metrics"
	"github.com/aalemi-dev/otel-instrument/observability"
)

func provideDeps(addr string) fx.Option {
	return fx.Options(
		fx.Provide(func() metrics.Config {
			return metrics.Config{ServiceName: "fx-test", Address: metrics.Ptr(addr)}
		}),
		fx.Provide(func() *logger.LoggerClient {
			return logger.NewLoggerClient(logger.Config{Level: logger.Error})
		}),
	)
}

func TestFXModule_ProvidesCollectorAndObserver(t *testing.T) {
	t.Parallel()
	var (
		collector metrics.MetricsCollector
		observer  observability.Observer
	)

	app := fxtest.New(t,
		metrics.FXModule,
		provideDeps(""),
		fx.Populate(&collector, &observer),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, collector)
	assert.IsType(t, &metrics.CallObserver{}, observer)
}

func TestFXModule_StartsAndStopsServer(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics

	app := fxtest.New(t,
		metrics.FXModule,
		provideDeps("127.0.0.1:0"),
		fx.Populate(&m),
	)

	app.RequireStart()
	assert.NotNil(t, m.Server)
	assert.NotPanics(t, func() { app.RequireStop() })
}
