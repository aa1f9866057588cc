package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracer implements Provider.
func (t *TracerClient) Tracer(name string) trace.Tracer {
	return t.Provider().Tracer(name)
}

// Provider implements Provider. A client without an SDK provider returns a
// no-op provider.
func (t *TracerClient) Provider() trace.TracerProvider {
	if t.tracer == nil {
		return noop.NewTracerProvider()
	}
	return t.tracer
}

// ForceFlush implements Provider.
func (t *TracerClient) ForceFlush(ctx context.Context) error {
	if t.tracer == nil {
		return nil
	}
	return t.tracer.ForceFlush(ctx)
}

// Shutdown implements Provider.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
