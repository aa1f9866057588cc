// Package metrics exposes Prometheus metrics about instrumented function
// calls.
//
// NewMetrics creates an application registry, labelled with the service
// name, and an optional HTTP server serving it on /metrics. CallObserver
// turns the observations reported by instrumented functions into a call
// counter by span name and outcome and a duration histogram by span name.
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     metrics.Ptr(":9091"),
//		ServiceName: "report-builder",
//	})
//	observer := metrics.NewCallObserver(m)
//	build := instrument.Wrap(buildReport, nil, instrument.WithObserver(observer))
//
// Further application metrics can be created through the MetricsCollector
// interface. With fx, FXModule provides all of the above and manages the
// server lifecycle.
package metrics
