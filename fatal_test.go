package scheduler

import (
	"fmt"
	"strings"
	"testing"
)

// fatalCapture is a diagnosticLogger test double that records the formatted
// message of each Fatalf call instead of terminating the process, so the fatal path can be exercised
// without tearing down the test binary (spec.md §7 calls this out as a path
// "exercised by a test double that forces the failure path").
type fatalCapture struct {
	warnings []string
	fatals   []string
}

func (f *fatalCapture) Warnf(format string, args ...interface{}) {
	f.warnings = append(f.warnings, format)
}

func (f *fatalCapture) Fatalf(format string, args ...interface{}) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func TestMustLookup_CallsFatalfOnMissingRegistryEntry(t *testing.T) {
	logger := &fatalCapture{}
	c := &core{
		registry: newRegistry(),
		logger:   logger,
	}

	got := c.mustLookup(TaskID(42))

	if got != nil {
		t.Fatalf("mustLookup on a missing id = %v; want nil", got)
	}
	if len(logger.fatals) != 1 {
		t.Fatalf("Fatalf calls = %d; want 1", len(logger.fatals))
	}
	if !strings.Contains(logger.fatals[0], "ready id") {
		t.Fatalf("Fatalf message = %q; want it to mention the missing id", logger.fatals[0])
	}
}

func TestMustLookup_ReturnsEntryWhenPresent(t *testing.T) {
	logger := &fatalCapture{}
	c := &core{
		registry: newRegistry(),
		logger:   logger,
	}
	want := newTCB(1, 0, 1, func(int) {})
	c.registry.insert(want)

	got := c.mustLookup(1)

	if got != want {
		t.Fatalf("mustLookup(1) = %v; want %v", got, want)
	}
	if len(logger.fatals) != 0 {
		t.Fatalf("Fatalf calls = %d; want 0", len(logger.fatals))
	}
}
