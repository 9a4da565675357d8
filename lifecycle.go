package scheduler

import "sync"

// lifecycleController encapsulates the End() sequence (spec.md §4.6): join
// every OS thread (goroutine, in this rendering) ever created, in creation
// order, then free resources so a further Init is possible. It is a wiring
// helper in the same spirit as the teacher's lifecycleCoordinator — it
// doesn't own scheduling state, it orchestrates a deterministic shutdown
// sequence over it — adapted here for ordered joins instead of
// cancellation, since tasks in this scheduler always run to completion
// (Non-goals, spec.md §1 exclude task cancellation).
//
// next is re-invoked under the scheduler's lock after every join rather
// than snapshotted once: the reference's so_end walks pthreads_created
// the same incremental way, relying on join's happens-before guarantee to
// observe nodes a thread appended before exiting (so_scheduler.c's
// so_fork always registers a thread before anything it causes can run).
// A task's creation index is always greater than its forker's, so by the
// time every index below i has been joined, nothing left to discover can
// ever fork another task — the walk is guaranteed to terminate having
// joined every task that will ever exist.
//
// Close is safe for concurrent calls; the join sequence executes exactly
// once.
type lifecycleController struct {
	next func(i int) (*tcb, bool)

	once sync.Once
}

func newLifecycleController(next func(i int) (*tcb, bool)) *lifecycleController {
	return &lifecycleController{next: next}
}

// Close joins every created task's goroutine in creation order, mirroring
// the reference's so_end loop over pthreads_created.
func (lc *lifecycleController) Close() {
	lc.once.Do(func() {
		for i := 0; ; i++ {
			t, ok := lc.next(i)
			if !ok {
				return
			}
			<-t.done
		}
	})
}
