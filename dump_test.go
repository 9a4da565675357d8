package scheduler

import (
	"testing"

	"github.com/luis6156/coopsched/metrics"
)

func newDumpTestCore() *core {
	return &core{
		cfg:      defaultConfig(),
		metrics:  metrics.NewNoopProvider(),
		logger:   &fatalCapture{},
		ids:      newIDAllocator(),
		registry: newRegistry(),
		ready:    newReadyQueue(),
		wait:     newWaitSet(),
	}
}

func TestDump_ErrorWhenNotInitialized(t *testing.T) {
	_, err := Dump()
	if err != ErrNotInitialized {
		t.Fatalf("Dump err = %v; want ErrNotInitialized", err)
	}
}

func TestDump_ReportsRunningReadyAndWaiting(t *testing.T) {
	c := newDumpTestCore()
	running := newTCB(1, 3, c.quantum, func(int) {})
	ready1 := newTCB(2, 2, c.quantum, func(int) {})
	ready2 := newTCB(3, 1, c.quantum, func(int) {})
	waiter := newTCB(4, 0, c.quantum, func(int) {})

	c.registry.insert(running)
	c.registry.insert(ready1)
	c.registry.insert(ready2)
	c.registry.insert(waiter)

	c.hasRun = true
	c.running = running.id
	c.runningPriority = running.priority

	c.ready.push(ready1.id, ready1.priority)
	c.ready.push(ready2.id, ready2.priority)
	c.wait.insert(waiter.id, waiter.priority, 0)

	singletonMu.Lock()
	singleton = c
	singletonMu.Unlock()
	defer func() {
		singletonMu.Lock()
		singleton = nil
		singletonMu.Unlock()
	}()

	snap, err := Dump()
	if err != nil {
		t.Fatalf("Dump err = %v; want nil", err)
	}
	if snap.Running != running.id {
		t.Fatalf("Running = %d; want %d", snap.Running, running.id)
	}
	if snap.RunningPriority != running.priority {
		t.Fatalf("RunningPriority = %d; want %d", snap.RunningPriority, running.priority)
	}
	if len(snap.Ready) != 2 || snap.Ready[0] != ready1.id || snap.Ready[1] != ready2.id {
		t.Fatalf("Ready = %v; want [%d %d]", snap.Ready, ready1.id, ready2.id)
	}
	if got := snap.Waiting[0]; len(got) != 1 || got[0] != waiter.id {
		t.Fatalf("Waiting[0] = %v; want [%d]", got, waiter.id)
	}
}

func TestDump_RunningIsInvalidWhenQuiescent(t *testing.T) {
	c := newDumpTestCore()

	singletonMu.Lock()
	singleton = c
	singletonMu.Unlock()
	defer func() {
		singletonMu.Lock()
		singleton = nil
		singletonMu.Unlock()
	}()

	snap, err := Dump()
	if err != nil {
		t.Fatalf("Dump err = %v; want nil", err)
	}
	if snap.Running != InvalidTaskID {
		t.Fatalf("Running = %d; want InvalidTaskID", snap.Running)
	}
}
