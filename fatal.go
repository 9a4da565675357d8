package scheduler

import "github.com/pkg/errors"

// errInternalInconsistency is wrapped by fatalf's callers to identify the
// resource-exhaustion / synchronisation-primitive-failure class of error
// (spec.md §7): conditions the scheduler's own invariants should make
// unreachable, which is exactly why reaching them is fatal rather than a
// returned error.
var errInternalInconsistency = errors.New("scheduler: internal inconsistency")

// mustLookup resolves id against the registry or calls fatalf: every id
// the dispatcher pops off the ready queue or the wait set must have a
// live TCB, by construction. A miss here means one of the scheduler's own
// collaborators corrupted its bookkeeping.
func (c *core) mustLookup(id TaskID) *tcb {
	t, ok := c.registry.lookup(id)
	if !ok {
		c.fatalf("dispatcher: ready id %d has no registry entry", id)
	}
	return t
}

// fatalf wraps msg with a stack trace via github.com/pkg/errors and hands
// it to the configured logger at Fatal level, which terminates the
// process (logrus's standard Fatal semantics call os.Exit(1)), mirroring
// The-Skyscape-workspace's errors.Wrap(err, "...") fatal-path style.
func (c *core) fatalf(format string, args ...interface{}) {
	err := errors.Wrapf(errInternalInconsistency, format, args...)
	c.logger.Fatalf("%+v", err)
}
