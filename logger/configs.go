package logger

import "github.com/kelseyhightower/envconfig"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration of the logger.
type Config struct {
	// Level is the minimum level written: "debug", "info", "warning" or
	// "error". Unknown values fall back to "info".
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL" default:"info"`

	// EnableTracing adds "trace_id" and "span_id" fields to entries logged
	// through the ...WithContext methods when the context holds a recording
	// span. Instrumented functions log through those methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`

	// CallerSkip is the number of stack frames skipped when reporting the
	// caller. Defaults to 1, which points at the code calling LoggerClient.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
