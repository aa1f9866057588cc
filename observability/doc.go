// Package observability defines the Observer hook through which
// instrumented functions report each call, next to the span they record.
//
// An observer sees the span name as Operation, the tracer name as
// Resource, the call duration, the returned error and the resolved span
// attributes:
//
//	type auditObserver struct{ log logger.Logger }
//
//	func (o *auditObserver) ObserveOperation(ctx observability.OperationContext) {
//		o.log.Info("instrumented call", ctx.Error, map[string]interface{}{
//			"operation": ctx.Operation,
//			"outcome":   ctx.Outcome(),
//		})
//	}
//
//	wrapped := instrument.Instrument(run, instrument.WithObserver(&auditObserver{log}))
//
// metrics.CallObserver is the Prometheus-backed implementation.
// Observers combines several observers into one.
package observability
