package metrics

// Instrument names used by the scheduler. Centralized here so callers and
// dashboards agree on naming without importing the root package.
const (
	// DispatchesTotal counts every Dispatcher decision point reached
	// (fork, exec, wait, signal, task completion).
	DispatchesTotal = "scheduler_dispatches_total"

	// PreemptionsTotal counts hand-offs triggered by quantum expiry or a
	// higher-priority arrival, as opposed to a task yielding via wait or
	// termination.
	PreemptionsTotal = "scheduler_preemptions_total"

	// ReadyTasks tracks the current size of the ready queue.
	ReadyTasks = "scheduler_ready_tasks"

	// QuantumUsed records, per preemption, how many quantum ticks (Exec
	// calls and Forks made while running) the preempted task used before
	// losing the CPU.
	QuantumUsed = "scheduler_quantum_used"
)
