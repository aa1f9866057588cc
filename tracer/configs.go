package tracer

import (
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Config defines the configuration of the OpenTelemetry tracer provider
// that instrumented functions report their spans to.
type Config struct {
	// ServiceName identifies the service in the span resource. It is read
	// from the same variable instrumented functions use to name their
	// default tracer.
	//
	// Example values: "report-builder", "nightly-import"
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`

	// AppEnv is the deployment environment ("development", "staging",
	// "production"). It is set as the "deployment.environment" and
	// "environment" resource attributes.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport configures an OTLP HTTP exporter sending spans to a
	// collector. The exporter reads its endpoint from the standard
	// OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// SpanProcessors are registered on the provider in addition to the
	// exporter, e.g. a tracetest.SpanRecorder in tests.
	SpanProcessors []trace.SpanProcessor `yaml:"-" ignored:"true"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
