package metrics

// MetricsCollector creates metrics registered on the application registry.
// Names must be unique per registry; registering a name twice panics.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// CreateCounter creates a counter vector with the given labels.
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates a histogram vector with the given labels.
	// nil buckets select prometheus.DefBuckets.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
