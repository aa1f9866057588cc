package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry of the application and the HTTP
// server exposing it. It implements MetricsCollector.
type Metrics struct {
	// Server serves the registry on /metrics. nil when disabled.
	Server *http.Server

	// Registry holds every metric created through the collector.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
}

// NewMetrics creates the registry and, unless disabled, the server.
// The server is started by the FX lifecycle or by the caller.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "report-builder"})
//	go m.Server.ListenAndServe()
//
//	observer := metrics.NewCallObserver(m)
//	build := instrument.Wrap(buildReport, nil, instrument.WithObserver(observer))
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.EnableRuntimeMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}

	return m
}
