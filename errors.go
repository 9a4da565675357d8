package scheduler

import "errors"

// Namespace prefixes every sentinel error this package returns, matching
// the teacher's convention of namespacing errors for unambiguous
// errors.Is comparisons across packages that both define, say, ErrClosed.
const Namespace = "scheduler"

var (
	// ErrAlreadyInitialized is returned by Init when the scheduler singleton
	// already exists. Init is idempotent on failure, not on success
	// (spec.md §4.6).
	ErrAlreadyInitialized = errors.New(Namespace + ": scheduler already initialized")

	// ErrNotInitialized is returned by operations that require a prior
	// successful Init.
	ErrNotInitialized = errors.New(Namespace + ": scheduler not initialized")

	// ErrInvalidQuantum is returned by Init when quantum == 0.
	ErrInvalidQuantum = errors.New(Namespace + ": quantum must be greater than zero")

	// ErrTooManyEvents is returned by Init when io exceeds MaxEvents.
	ErrTooManyEvents = errors.New(Namespace + ": io exceeds configured max events")

	// ErrNilHandler is returned by Fork when handler is nil.
	ErrNilHandler = errors.New(Namespace + ": fork handler must not be nil")

	// ErrPriorityOutOfRange is returned by Fork when priority exceeds
	// the configured MaxPriority.
	ErrPriorityOutOfRange = errors.New(Namespace + ": priority exceeds configured max priority")

	// ErrEventOutOfRange is returned by Wait and Signal when event id is
	// outside [0, io).
	ErrEventOutOfRange = errors.New(Namespace + ": event id out of range")
)
