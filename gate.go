package scheduler

// gate is a one-shot binary rendezvous primitive: opening it wakes exactly
// one waiter. It is the Go-idiomatic rendering of the reference's
// CreateSemaphore(NULL, 0, 1, NULL) — a channel of capacity 1 used purely
// as a binary signal, never for data transfer.
//
// Gates start closed. Invariant 3 (spec.md §3) guarantees at most one
// open() is ever outstanding on a given gate before its matching wait()
// consumes it, so open() never blocks.
type gate struct {
	ch chan struct{}
}

func newGate() *gate {
	return &gate{ch: make(chan struct{}, 1)}
}

// open wakes the task blocked in wait(), or marks the gate as already open
// if no task is waiting yet (e.g. the body-entry protocol has not reached
// its wait() call). It never blocks.
func (g *gate) open() {
	select {
	case g.ch <- struct{}{}:
	default:
		// Already open; under invariant 3 this should not happen, but a
		// non-blocking send keeps open() safe regardless.
	}
}

// wait blocks until the gate is opened, consuming the open.
func (g *gate) wait() {
	<-g.ch
}
