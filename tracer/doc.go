// Package tracer sets up the OpenTelemetry SDK tracer provider that
// instrumented functions report to.
//
// It owns provider construction only: a service resource, an optional
// OTLP/HTTP batch exporter and any extra span processors. Span creation
// lives in package instrument, which looks tracers up by name through
// the Provider interface or the global OpenTelemetry provider.
//
// # Basic Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "report-builder",
//		AppEnv:       "development",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tracerClient.Shutdown(ctx)
//
//	build := instrument.Wrap(buildReport, nil,
//		instrument.WithTracerProvider(tracerClient.Provider()))
//
// # Configuration
//
// ConfigFromEnv reads:
//
//	OTEL_SERVICE_NAME=report-builder
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//
// The exporter endpoint follows the standard OTEL_EXPORTER_OTLP_ENDPOINT
// variables.
//
// # FX Module Integration
//
//	app := fx.New(
//		tracer.FXModule,
//		fx.Provide(tracer.ConfigFromEnv),
//	)
//
// # Thread Safety
//
// All methods on TracerClient are safe for concurrent use.
package tracer
