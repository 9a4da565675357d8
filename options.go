package scheduler

import "github.com/luis6156/coopsched/metrics"

// Option configures the scheduler singleton. Pass Options to Init.
type Option func(*config)

// WithMaxPriority overrides the default maximum task priority (5,
// matching the reference's SO_MAX_PRIO). Fork rejects priorities above
// this value.
func WithMaxPriority(n int) Option {
	return func(c *config) { c.MaxPriority = n }
}

// WithMaxEvents overrides the default maximum event-id ceiling (256,
// matching the reference's SO_MAX_NUM_EVENTS). Init rejects an io
// parameter above this value.
func WithMaxEvents(n int) Option {
	return func(c *config) { c.MaxEvents = n }
}

// WithMetrics attaches a metrics.Provider used to record dispatcher
// activity (dispatch counts, preemptions, quantum usage). The default is
// metrics.NewNoopProvider(), which discards everything.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.Metrics = p
		}
	}
}

// WithLogger attaches a diagnostic logger used for the fatal and
// programmer-error paths described in spec.md §7. The default logs
// text-formatted records to stderr at info level.
func WithLogger(l diagnosticLogger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}
