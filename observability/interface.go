package observability

import "time"

// Observer receives one OperationContext per completed operation.
// Instrumented functions report every call to it, independently of the
// span they record, so applications can derive metrics or audit logs
// without reading spans back.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component identifies the reporting package, e.g. "instrument".
	Component string

	// Operation is what was done. Instrumented functions report their
	// span name.
	Operation string

	// Resource is the primary resource operated on. Instrumented functions
	// report the name of the tracer their spans belong to.
	Resource string

	// SubResource gives additional resource context (optional).
	SubResource string

	// Duration is the wall time of the operation.
	Duration time.Duration

	// Error is the error the operation ended with, nil on success.
	Error error

	// Size is the amount of data involved (optional).
	Size int64

	// Metadata carries operation-specific details. Instrumented functions
	// report the span attributes of the call.
	Metadata map[string]interface{}
}

// Outcome classifies the operation as "success" or "error".
func (c OperationContext) Outcome() string {
	if c.Error != nil {
		return "error"
	}
	return "success"
}
