// Package metrics provides the scheduler's instrumentation surface,
// adapted from the teacher's metrics package (ygrebnov/workers/metrics).
// The Provider/Counter/UpDownCounter/Histogram shapes are domain-agnostic
// by design — that is the entire point of an instrumentation seam — so
// they are kept close to the teacher's; names.go and the call sites in the
// root package supply the scheduler-specific wiring that did not exist in
// the teacher (dispatch counters, preemption counters, quantum histograms).
package metrics

// Provider constructs instruments used to record metrics.
// Implementations must be safe for concurrent use.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts. Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that can move up or down (e.g. the current
// number of ready tasks). Methods must be safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements (e.g. the
// number of exec calls a task survived before preemption).
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata. It's advisory only.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g. "1", "calls").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}
