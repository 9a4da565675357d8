package scheduler

import "github.com/luis6156/coopsched/metrics"

// config holds scheduler configuration. Unlike the reference's compile-time
// SO_MAX_PRIO / SO_MAX_NUM_EVENTS, MaxPriority and MaxEvents are
// configurable here via Option, defaulting to the reference's own values.
type config struct {
	// MaxPriority is the highest priority value a task may be forked with
	// (0..MaxPriority). Default: 5, matching the reference's SO_MAX_PRIO.
	MaxPriority int

	// MaxEvents bounds the io parameter passed to Init (io <= MaxEvents).
	// Default: 256, matching the reference's SO_MAX_NUM_EVENTS.
	MaxEvents int

	// Metrics receives scheduler instrumentation (dispatches, preemptions,
	// quantum-to-preemption latency). Default: metrics.NoopProvider.
	Metrics metrics.Provider

	// Logger receives diagnostic and fatal output (spec.md §7). Default:
	// a schedlog logger writing text-formatted records to stderr.
	Logger diagnosticLogger
}

// diagnosticLogger is the minimal logging surface the scheduler depends on,
// satisfied by *schedlog.Logger. Declaring it here (rather than importing
// schedlog directly into config's field type) keeps this package free to
// accept any compatible logger, including test doubles.
type diagnosticLogger interface {
	Warnf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// defaultMaxPriority and defaultMaxEvents mirror the reference's
// SO_MAX_PRIO and SO_MAX_NUM_EVENTS (so_scheduler.h in the original source).
const (
	defaultMaxPriority = 5
	defaultMaxEvents   = 256
)

// defaultConfig centralizes default values for config. Applied as the base
// for both the functional-options builder and schedconfig-loaded
// configuration.
func defaultConfig() config {
	return config{
		MaxPriority: defaultMaxPriority,
		MaxEvents:   defaultMaxEvents,
		Metrics:     metrics.NewNoopProvider(),
		Logger:      newDefaultLogger(),
	}
}

// validateConfig performs lightweight invariant checks over the assembled
// configuration, independent of the quantum/io values passed to Init.
func validateConfig(cfg *config) error {
	if cfg.MaxPriority < 0 {
		return ErrPriorityOutOfRange
	}
	if cfg.MaxEvents < 0 {
		return ErrTooManyEvents
	}
	return nil
}
