package instrument

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/otel-instrument/logger"
	"github.com/aalemi-dev/otel-instrument/observability"
	"github.com/aalemi-dev/otel-instrument/tracer"
)

// FXModule provides an *Instrumenter built from the application's tracer
// provider and, when present in the container, its logger and observer.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    logger.FXModule,
//	    instrument.FXModule,
//	    fx.Invoke(func(inst *instrument.Instrumenter) {
//	        // wrap functions with inst.Options(...)
//	    }),
//	)
var FXModule = fx.Module("instrument",
	fx.Provide(NewInstrumenterFromParams),
)

// InstrumenterParams are the dependencies of an Instrumenter in an fx
// container.
type InstrumenterParams struct {
	fx.In

	Tracer   tracer.Provider
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewInstrumenterFromParams creates an Instrumenter from fx-provided
// dependencies.
func NewInstrumenterFromParams(p InstrumenterParams) *Instrumenter {
	return NewInstrumenter(p.Tracer.Provider(), p.Logger, p.Observer)
}
