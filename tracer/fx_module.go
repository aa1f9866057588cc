package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/otel-instrument/logger"
)

// FXModule provides the tracer provider to an fx application:
//  1. *TracerClient (concrete type)
//  2. Provider interface
//  3. a shutdown hook flushing pending spans
//
// A tracer.Config must be available in the container.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Provider { return t },
			fx.As(new(Provider)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerLifecycleParams are the dependencies of RegisterTracerLifecycle.
type TracerLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *TracerClient
	Logger    logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle shuts the provider down when the application
// stops, flushing spans still buffered by the exporter.
func RegisterTracerLifecycle(p TracerLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if p.Logger != nil {
				p.Logger.Info("shutting down tracer provider", nil)
			}
			return p.Tracer.Shutdown(ctx)
		},
	})
}
