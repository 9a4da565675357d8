package scheduler

import "github.com/luis6156/coopsched/metrics"

// runBody is the body-entry protocol (spec.md §4.5) executed on each
// forked task's own goroutine: wait for the gate, run the handler, then
// perform the task-completion dispatcher hook before exiting. It never
// waits on its own gate again after the handler returns.
//
// A panic inside the handler is recovered and logged (adapted from the
// teacher's worker.go, which recovers task panics into an errors channel);
// here there is no result/error channel to report into, so the panic is
// surfaced through the diagnostic logger and treated as an ordinary
// termination for scheduling purposes — the scheduler has no cancellation
// model for a task that misbehaves mid-body (Non-goals, spec.md §1).
func (c *core) runBody(t *tcb) {
	t.gate.wait()

	func() {
		defer func() {
			if r := recover(); r != nil {
				c.logger.Warnf("scheduler: task %d panicked: %v", t.id, r)
			}
		}()
		t.handler(t.priority)
	}()

	c.completeTask(t)
	close(t.done)
}

// completeTask runs the task-completion dispatcher hook under the
// scheduler lock and performs the hand-off to whichever task it selects,
// if any.
func (c *core) completeTask(t *tcb) {
	c.mu.Lock()
	c.metrics.Counter(metrics.DispatchesTotal).Add(1)
	tr := c.onTerminate(t)
	if tr != nil {
		c.running = tr.to.id
		c.runningPriority = tr.to.priority
	} else {
		c.hasRun = false
	}
	c.mu.Unlock()

	if tr != nil {
		tr.to.gate.open()
	}
}
