package observability

// NoOpObserver discards every observation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Observers fans every observation out to each of its members in order.
type Observers []Observer

// ObserveOperation implements Observer.
func (o Observers) ObserveOperation(ctx OperationContext) {
	for _, observer := range o {
		if observer != nil {
			observer.ObserveOperation(ctx)
		}
	}
}
