package instrument

import "github.com/kelseyhightower/envconfig"

// Config holds the environment-provided settings consulted when a function
// is wrapped without an explicit tracer.
type Config struct {
	// ServiceName names the tracer used by wrapped functions. When empty,
	// the import path of the wrapped function's package is used instead.
	ServiceName string `yaml:"service_name" envconfig:"OTEL_SERVICE_NAME"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// tracerName picks the name of the default tracer for a function declared
// in pkgPath.
func tracerName(pkgPath string) string {
	// A string-only Config cannot fail to parse.
	cfg, _ := ConfigFromEnv()
	if cfg.ServiceName != "" {
		return cfg.ServiceName
	}
	return pkgPath
}
