package dispatcher

// Options controls optional dispatcher behavior.
type Options struct {
	// Metrics records per-command counts and timings.
	Metrics bool

	// RecoverPanics turns a panicking handler into an error result.
	RecoverPanics bool
}

// DefaultOptions recovers panics and collects no metrics.
func DefaultOptions() Options {
	return Options{RecoverPanics: true}
}

// WithMetrics returns a copy of o with metrics collection set.
func (o Options) WithMetrics(on bool) Options {
	o.Metrics = on
	return o
}

// WithPanicRecovery returns a copy of o with panic recovery set.
func (o Options) WithPanicRecovery(on bool) Options {
	o.RecoverPanics = on
	return o
}
