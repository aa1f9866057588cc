package instrument

import (
	"maps"

	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/otel-instrument/logger"
	"github.com/aalemi-dev/otel-instrument/observability"
)

// settings is the configuration captured when a function is wrapped.
// It is never modified afterwards.
type settings struct {
	spanName    string
	recordError bool
	statusOK    bool
	kind        trace.SpanKind
	attributes  map[string]string
	tracer      trace.Tracer
	provider    trace.TracerProvider
	logger      logger.Logger
	observer    observability.Observer
}

func newSettings(opts []Option) *settings {
	s := &settings{
		recordError: true,
		kind:        trace.SpanKindInternal,
		attributes:  map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures how a function is instrumented.
type Option func(*settings)

// WithSpanName sets the span name. The default is the wrapped function's
// qualified name.
//
// Example:
//
//	wrapped := instrument.Instrument(run, instrument.WithSpanName("nightly-import"))
func WithSpanName(name string) Option {
	return func(s *settings) {
		s.spanName = name
	}
}

// WithRecordError controls whether failures of the wrapped function are
// recorded as exception events on the span. The span status is set to
// Error on failure either way. Enabled by default.
func WithRecordError(record bool) Option {
	return func(s *settings) {
		s.recordError = record
	}
}

// WithAttributes adds static attributes set on every span of the wrapped
// function. The map is copied; later changes to it have no effect.
// Repeated use merges the maps, later keys winning.
func WithAttributes(attrs map[string]string) Option {
	return func(s *settings) {
		maps.Copy(s.attributes, attrs)
	}
}

// WithTracer uses an existing tracer instead of looking one up by name.
func WithTracer(t trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = t
	}
}

// WithTracerProvider looks the default tracer up in tp instead of the
// global provider. Ignored when WithTracer is also given.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		s.provider = tp
	}
}

// WithSpanKind sets the kind of the created spans. Defaults to internal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(s *settings) {
		s.kind = kind
	}
}

// WithStatusOK marks spans of successful calls with an Ok status instead
// of leaving it unset.
func WithStatusOK() Option {
	return func(s *settings) {
		s.statusOK = true
	}
}

// WithLogger logs attribute resolution failures at warn level and
// failures of the wrapped function at debug level.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithObserver reports every call of the wrapped function to o.
func WithObserver(o observability.Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}
