package scheduler

import "github.com/luis6156/coopsched/metrics"

// transition describes a hand-off decision produced by the dispatcher: the
// task currently running (from, nil only when there was none) must give up
// the CPU to the task picked to run next (to). The dispatcher never
// performs the hand-off itself — scheduler.go's rendezvous machinery does
// that under the same lock the dispatcher ran under, per spec.md §4.5.
type transition struct {
	from *tcb
	to   *tcb
}

// runningTCB returns the TCB of the currently running task, or nil if no
// task has ever been forked (or every task has terminated).
func (c *core) runningTCB() *tcb {
	if !c.hasRun {
		return nil
	}
	t, ok := c.registry.lookup(c.running)
	if !ok {
		return nil
	}
	return t
}

// reschedule implements the decision rule shared by fork and exec
// (spec.md §4.1): if the running task's quantum is exhausted, or a
// strictly higher-priority task is ready, hand off; a ready task of equal
// priority never preempts (the tie-break that motivates inserting
// equal-priority arrivals at the tail of their band).
func (c *core) reschedule() *transition {
	r := c.runningTCB()
	if r == nil {
		return nil
	}

	if r.quantum == 0 {
		return c.preempt(r, true)
	}

	if _, headPriority, ok := c.ready.peek(); ok && headPriority > r.priority {
		return c.preempt(r, false)
	}

	return nil
}

// preempt pops the ready queue's head and promotes it to running, resetting
// its quantum. quantumExpired controls where r is re-enqueued relative to
// the pop: on quantum expiry r joins the ready queue before the pop (so it
// competes on equal footing, including the degenerate case where r is the
// only ready task and is immediately re-selected with a fresh quantum); on
// a priority preemption r is pushed back only after the higher-priority
// head is removed, since r must not be eligible to win the pop it is
// losing.
func (c *core) preempt(r *tcb, quantumExpired bool) *transition {
	c.metrics.Histogram(metrics.QuantumUsed).Record(float64(c.quantum - r.quantum))

	if quantumExpired {
		c.ready.push(r.id, r.priority)
		c.metrics.UpDownCounter(metrics.ReadyTasks).Add(1)
	}

	id, _, _ := c.ready.pop()
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(-1)
	next := c.mustLookup(id)
	next.quantum = c.quantum

	if !quantumExpired {
		c.ready.push(r.id, r.priority)
		c.metrics.UpDownCounter(metrics.ReadyTasks).Add(1)
	}

	return &transition{from: r, to: next}
}

// onExec is the Exec dispatcher hook (spec.md §4.1): decrement the running
// task's quantum, then reschedule. A nil return with r == nil means there
// is no running task; Exec is a no-op in that case.
func (c *core) onExec() *transition {
	r := c.runningTCB()
	if r == nil {
		return nil
	}
	r.quantum--
	return c.reschedule()
}

// onForkWhileRunning is the Fork dispatcher hook for the non-bootstrap
// case: forking counts as a scheduler-visible tick against the running
// task's quantum (glossary: "the scheduler-internal tick issued implicitly
// on each fork during a run"), then reschedule runs as usual.
func (c *core) onForkWhileRunning() *transition {
	r := c.runningTCB()
	r.quantum--
	return c.reschedule()
}

// onWait is the Wait dispatcher hook (spec.md §4.1): the running task has
// already been moved into the wait set by the caller; pick a successor
// from the ready queue. A nil return means the ready queue was empty —
// the programmer-error deadlock case documented in spec.md §5 and §9.3.
func (c *core) onWait(r *tcb) *transition {
	id, _, ok := c.ready.pop()
	if !ok {
		return nil
	}
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(-1)
	next := c.mustLookup(id)
	next.quantum = c.quantum
	return &transition{from: r, to: next}
}

// onSignal is the Signal dispatcher hook (spec.md §4.1): the caller has
// already drained the matching wait-set entries into the ready queue and
// pushed the running task in behind them; pick the new head as successor.
func (c *core) onSignal(r *tcb) *transition {
	id, _, _ := c.ready.pop()
	next := c.mustLookup(id)
	next.quantum = c.quantum
	return &transition{from: r, to: next}
}

// onTerminate is the task-completion dispatcher hook (spec.md §4.1): pick a
// successor from the ready queue. A nil return means the ready queue is
// empty: either the system is quiescent (every other task already
// terminated or is waiting) or, if other tasks remain in the wait set with
// no pending signal, the process is about to exit with them never
// resumed — indistinguishable from quiescence from the dispatcher's point
// of view, and not this scheduler's concern per spec.md §1's Non-goals.
func (c *core) onTerminate(r *tcb) *transition {
	id, _, ok := c.ready.pop()
	if !ok {
		return nil
	}
	c.metrics.UpDownCounter(metrics.ReadyTasks).Add(-1)
	next := c.mustLookup(id)
	next.quantum = c.quantum
	return &transition{from: r, to: next}
}

