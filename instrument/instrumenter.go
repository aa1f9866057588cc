package instrument

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/otel-instrument/logger"
	"github.com/aalemi-dev/otel-instrument/observability"
)

// Instrumenter bundles the collaborators shared by every function an
// application wraps, so call sites only pass what is specific to them.
//
// Example:
//
//	inst := instrument.NewInstrumenter(tracerClient.Provider(), log, observer)
//	handle := instrument.Wrap(handleImpl, resolver, inst.Options(
//		instrument.WithSpanName("handle"),
//	)...)
type Instrumenter struct {
	provider trace.TracerProvider
	logger   logger.Logger
	observer observability.Observer
}

// NewInstrumenter creates an Instrumenter. Any argument may be nil: a nil
// provider falls back to the global OpenTelemetry provider, and a nil
// logger or observer disables that hook.
func NewInstrumenter(provider trace.TracerProvider, log logger.Logger, observer observability.Observer) *Instrumenter {
	return &Instrumenter{
		provider: provider,
		logger:   log,
		observer: observer,
	}
}

// Options returns the shared options followed by extra, so that extra
// options override the shared ones.
func (i *Instrumenter) Options(extra ...Option) []Option {
	opts := make([]Option, 0, len(extra)+3)
	if i.provider != nil {
		opts = append(opts, WithTracerProvider(i.provider))
	}
	if i.logger != nil {
		opts = append(opts, WithLogger(i.logger))
	}
	if i.observer != nil {
		opts = append(opts, WithObserver(i.observer))
	}
	return append(opts, extra...)
}
