package scheduler

// Handler is a user-supplied task body. It receives the task's own
// priority, matching the reference's so_handler(unsigned int priority)
// signature.
type Handler func(priority int)

// tcb is the task control block: the single owning record for a forked
// task's scheduling state. It is created by fork and stays in the registry
// until End has joined every goroutine and discards the singleton, registry
// included.
type tcb struct {
	id       TaskID
	priority int
	quantum  int // remaining-quantum: scheduler-visible ops left before preemption
	handler  Handler
	gate     *gate
	done     chan struct{} // closed when the goroutine body-entry protocol returns
}

func newTCB(id TaskID, priority int, quantum int, handler Handler) *tcb {
	return &tcb{
		id:       id,
		priority: priority,
		quantum:  quantum,
		handler:  handler,
		gate:     newGate(),
		done:     make(chan struct{}),
	}
}
