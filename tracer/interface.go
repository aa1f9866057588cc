package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Provider hands out named tracers backed by a configured OpenTelemetry
// SDK provider.
//
// This interface is implemented by the concrete *TracerClient type.
type Provider interface {
	// Tracer returns the tracer registered under name. Instrumented
	// functions use the service name, or their package path, as name.
	Tracer(name string) trace.Tracer

	// Provider returns the underlying provider, for APIs that look tracers
	// up themselves.
	Provider() trace.TracerProvider

	// ForceFlush exports all ended spans that have not been exported yet.
	ForceFlush(ctx context.Context) error

	// Shutdown flushes pending spans and stops the provider. Spans started
	// afterwards are not recorded.
	Shutdown(ctx context.Context) error
}
