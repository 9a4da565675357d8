// Package scheduler implements a cooperatively-emulated, priority-based,
// time-quantum-preempted thread scheduler. Forked tasks run on their own
// goroutine, but the scheduler guarantees only one of them ever makes
// forward progress at a time, enforced by a per-task rendezvous gate.
//
// The scheduler is a process-wide singleton, started with Init and torn
// down with End; between those two calls, tasks are created with Fork and
// cooperate via Exec (simulated instruction), Wait, and Signal.
//
// Construction
//   - Init(quantum, io, opts...): establishes the singleton. Options
//     configure MaxPriority, MaxEvents, a metrics.Provider, and a
//     diagnostic logger; see Option.
//   - schedconfig.Load reads a YAML file into a schedconfig.Config, and
//     FromConfig turns that into Init's quantum, io and Option slice, for
//     deployments that prefer file-based configuration over call-site
//     options.
//
// Diagnostics
// The scheduler logs only on the paths spec.md §7 calls out explicitly —
// fatal resource exhaustion and the documented Wait-with-nothing-ready
// divergence warning — plus a warning when a task's handler panics.
// Scheduling decisions themselves are silent.
package scheduler

import (
	"sync"

	"github.com/luis6156/coopsched/metrics"
)

// core holds the scheduler singleton's entire mutable state. quantum, io,
// cfg, metrics, logger and lifecycle are set once by Init and may be read
// without mu; every other field is accessed only while holding it — by
// whichever task is currently RUNNING, or by the bootstrap forker before
// the first fork (spec.md §5).
type core struct {
	mu sync.Mutex

	quantum int
	io      int
	cfg     config

	metrics metrics.Provider
	logger  diagnosticLogger

	ids      *idAllocator
	registry *registry
	ready    *readyQueue
	wait     *waitSet

	hasRun          bool
	running         TaskID
	runningPriority int

	lifecycle *lifecycleController
}

var (
	singletonMu sync.Mutex
	singleton   *core
)

// Init establishes the scheduler singleton. It fails if quantum is zero,
// io exceeds the configured MaxEvents, or the scheduler is already
// initialized (spec.md §4.6). Init is idempotent on failure, not on
// success.
func Init(quantum uint, io uint, opts ...Option) error {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton != nil {
		return ErrAlreadyInitialized
	}
	if quantum == 0 {
		return ErrInvalidQuantum
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}
	if int(io) > cfg.MaxEvents {
		return ErrTooManyEvents
	}

	c := &core{
		quantum:  int(quantum),
		io:       int(io),
		cfg:      cfg,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		ids:      newIDAllocator(),
		registry: newRegistry(),
		ready:    newReadyQueue(),
		wait:     newWaitSet(),
	}
	c.lifecycle = newLifecycleController(func(i int) (*tcb, bool) {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.registry.at(i)
	})

	singleton = c
	return nil
}

// currentCore returns the initialized singleton, or ErrNotInitialized.
func currentCore() (*core, error) {
	singletonMu.Lock()
	c := singleton
	singletonMu.Unlock()
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// Fork creates a new task running handler at the given priority and
// returns its id. It fails if handler is nil or priority exceeds the
// configured MaxPriority (spec.md §4.6). If called outside any running
// task — the first fork, or after every prior task has terminated — the
// caller does not block; it promotes the new task directly and returns
// immediately (spec.md §4.5's bootstrap variant).
func Fork(handler Handler, priority int) (TaskID, error) {
	c, err := currentCore()
	if err != nil {
		return InvalidTaskID, err
	}
	if handler == nil {
		return InvalidTaskID, ErrNilHandler
	}
	if priority < 0 || priority > c.cfg.MaxPriority {
		return InvalidTaskID, ErrPriorityOutOfRange
	}

	c.mu.Lock()
	id := c.ids.allocate()
	t := newTCB(id, priority, c.quantum, handler)
	c.registry.insert(t)
	c.ready.push(id, priority)
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(1)
	c.metrics.Counter(metrics.DispatchesTotal).Add(1)

	go c.runBody(t)

	if !c.hasRun {
		// Bootstrap: the forker is not itself a scheduled task, so it never
		// blocks on a gate of its own (spec.md §4.5, §9.2).
		nextID, nextPriority, _ := c.ready.pop()
		c.metrics.UpDownCounter(metrics.ReadyTasks).Add(-1)
		next := c.mustLookup(nextID)
		next.quantum = c.quantum
		c.hasRun = true
		c.running = nextID
		c.runningPriority = nextPriority
		c.mu.Unlock()

		next.gate.open()
		return id, nil
	}

	tr := c.onForkWhileRunning()
	if tr != nil {
		c.running = tr.to.id
		c.runningPriority = tr.to.priority
		c.metrics.Counter(metrics.PreemptionsTotal).Add(1)
	}
	c.mu.Unlock()

	if tr != nil {
		performHandoff(tr)
	}

	return id, nil
}

// Exec simulates execution of one instruction in the running task's time
// slice: it decrements the running task's remaining quantum and invokes
// the dispatcher. It is a no-op if no task is running.
func Exec() {
	c, err := currentCore()
	if err != nil {
		return
	}

	c.mu.Lock()
	c.metrics.Counter(metrics.DispatchesTotal).Add(1)
	tr := c.onExec()
	if tr != nil {
		c.running = tr.to.id
		c.runningPriority = tr.to.priority
		c.metrics.Counter(metrics.PreemptionsTotal).Add(1)
	}
	c.mu.Unlock()

	if tr != nil {
		performHandoff(tr)
	}
}

// Wait blocks the running task until Signal(event) wakes it, yielding the
// CPU to a successor in the meantime. It fails if event is out of range.
// If no task is running, it returns nil without effect. If the ready
// queue is empty when a task waits, the behaviour documented as a
// programmer error in spec.md §5 and §9.3 applies: the task blocks
// forever. This implementation additionally logs a warning before
// blocking so the divergence is debuggable without changing the return
// value.
func Wait(event int) error {
	c, err := currentCore()
	if err != nil {
		return err
	}
	if event < 0 || event >= c.io {
		return ErrEventOutOfRange
	}

	c.mu.Lock()
	c.metrics.Counter(metrics.DispatchesTotal).Add(1)
	r := c.runningTCB()
	if r == nil {
		c.mu.Unlock()
		return nil
	}

	c.wait.insert(r.id, r.priority, event)
	tr := c.onWait(r)
	if tr == nil {
		c.hasRun = false
		c.mu.Unlock()
		c.logger.Warnf(
			"scheduler: task %d called Wait(%d) with no runnable task; blocking forever",
			r.id, event,
		)
		r.gate.wait()
		return nil
	}

	c.running = tr.to.id
	c.runningPriority = tr.to.priority
	c.mu.Unlock()

	performHandoff(tr)
	return nil
}

// Signal moves every task waiting on event to the ready queue, preserving
// each task's priority, then reschedules: the running task is enqueued
// behind them and the new head of the ready queue becomes the running
// task. It returns the number of tasks moved (0 if none), or an error if
// event is out of range. If no task is running, it returns (0, nil)
// without effect.
func Signal(event int) (int, error) {
	c, err := currentCore()
	if err != nil {
		return 0, err
	}
	if event < 0 || event >= c.io {
		return 0, ErrEventOutOfRange
	}

	c.mu.Lock()
	c.metrics.Counter(metrics.DispatchesTotal).Add(1)
	r := c.runningTCB()
	if r == nil {
		c.mu.Unlock()
		return 0, nil
	}

	drained := c.wait.drain(event)
	for _, e := range drained {
		c.ready.push(e.id, e.priority)
	}
	c.ready.push(r.id, r.priority)
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(int64(len(drained) + 1))

	tr := c.onSignal(r)
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(-1)
	c.running = tr.to.id
	c.runningPriority = tr.to.priority
	if tr.to.id != r.id {
		c.metrics.Counter(metrics.PreemptionsTotal).Add(1)
	}
	c.mu.Unlock()

	performHandoff(tr)
	return len(drained), nil
}

// End joins every goroutine ever forked, in creation order, then resets
// the singleton so a further Init is possible (spec.md §4.6).
func End() {
	singletonMu.Lock()
	c := singleton
	singletonMu.Unlock()
	if c == nil {
		return
	}

	c.lifecycle.Close()

	singletonMu.Lock()
	if singleton == c {
		singleton = nil
	}
	singletonMu.Unlock()
}

// performHandoff executes the rendezvous protocol's final two steps
// (spec.md §4.5): open the successor's gate, then block the predecessor
// on its own gate. The scheduler lock must already be released by the
// time this is called.
func performHandoff(tr *transition) {
	tr.to.gate.open()
	tr.from.gate.wait()
}
