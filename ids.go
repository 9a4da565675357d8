package scheduler

import "sync/atomic"

// TaskID uniquely identifies a forked task for the lifetime of one
// Init/End cycle. It is allocated by the scheduler's idAllocator at fork
// time and never
// reused within that cycle.
type TaskID uint64

// InvalidTaskID is returned by Fork when the requested task could not be
// created.
const InvalidTaskID TaskID = 0

// idAllocator hands out monotonically increasing task ids starting at 1,
// so the zero value stays reserved for InvalidTaskID.
type idAllocator struct {
	next atomic.Uint64
}

func newIDAllocator() *idAllocator {
	a := &idAllocator{}
	a.next.Store(1)
	return a
}

func (a *idAllocator) allocate() TaskID {
	return TaskID(a.next.Add(1) - 1)
}
