package metrics

import "github.com/kelseyhightower/envconfig"

// DefaultAddress is where the metrics endpoint listens when no address is
// configured.
const DefaultAddress = ":9091"

// Config defines the configuration of the Prometheus endpoint exposing
// instrumented call metrics.
type Config struct {
	// Address is the listen address of the /metrics server. nil selects
	// DefaultAddress; an empty string disables the server while keeping
	// the registry usable, e.g. in tests.
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is added as a "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`

	// EnableRuntimeMetrics registers the Go runtime and process collectors
	// on the same registry.
	EnableRuntimeMetrics bool `yaml:"enable_runtime_metrics" envconfig:"METRICS_ENABLE_RUNTIME"`
}

// Ptr returns a pointer to s, for Config.Address literals.
func Ptr(s string) *string {
	return &s
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
