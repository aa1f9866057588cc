package metrics

import (
	"github.com/aalemi-dev/otel-instrument/observability"
)

// Metric names recorded by CallObserver.
const (
	CallsTotalName   = "instrumented_calls_total"
	CallDurationName = "instrumented_call_duration_seconds"
	callsTotalHelp   = "Calls of instrumented functions by span name and outcome."
	callDurationHelp = "Duration of instrumented function calls in seconds."
)

// CallObserver records instrumented calls as Prometheus metrics:
//
//	instrumented_calls_total{span, outcome}
//	instrumented_call_duration_seconds{span}
//
// It implements observability.Observer and is meant to be passed to
// instrument.WithObserver.
type CallObserver struct {
	calls    Counter
	duration Histogram
}

// NewCallObserver registers the call metrics on collector.
// Create at most one CallObserver per collector.
func NewCallObserver(collector MetricsCollector) *CallObserver {
	return &CallObserver{
		calls:    collector.CreateCounter(CallsTotalName, callsTotalHelp, []string{"span", "outcome"}),
		duration: collector.CreateHistogram(CallDurationName, callDurationHelp, []string{"span"}, nil),
	}
}

// ObserveOperation implements observability.Observer.
func (o *CallObserver) ObserveOperation(ctx observability.OperationContext) {
	o.calls.WithLabelValues(ctx.Operation, ctx.Outcome()).Inc()
	o.duration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
}
