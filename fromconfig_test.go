package scheduler

import (
	"testing"

	"github.com/luis6156/coopsched/schedconfig"
)

func TestFromConfig_TranslatesQuantumAndIO(t *testing.T) {
	cfg := schedconfig.DefaultConfig()
	cfg.Quantum = 7
	cfg.IO = 2

	quantum, io, _ := FromConfig(cfg)

	if quantum != 7 {
		t.Fatalf("quantum = %d; want 7", quantum)
	}
	if io != 2 {
		t.Fatalf("io = %d; want 2", io)
	}
}

func TestFromConfig_AppliesMaxPriorityAndMaxEvents(t *testing.T) {
	cfg := schedconfig.DefaultConfig()
	cfg.MaxPriority = 9
	cfg.MaxEvents = 12
	cfg.LogConfig = nil

	_, _, opts := FromConfig(cfg)

	built := defaultConfig()
	for _, opt := range opts {
		opt(&built)
	}

	if built.MaxPriority != 9 {
		t.Fatalf("MaxPriority = %d; want 9", built.MaxPriority)
	}
	if built.MaxEvents != 12 {
		t.Fatalf("MaxEvents = %d; want 12", built.MaxEvents)
	}
}

func TestFromConfig_WiresLoggerWhenLogConfigPresent(t *testing.T) {
	cfg := schedconfig.DefaultConfig()
	cfg.LogConfig.Level = "warn"

	_, _, opts := FromConfig(cfg)

	built := defaultConfig()
	defaultLogger := built.Logger
	for _, opt := range opts {
		opt(&built)
	}

	if built.Logger == defaultLogger {
		t.Fatalf("Logger option was not applied")
	}
}

func TestFromConfig_InvalidLogLevelFallsBackToDefaultLogger(t *testing.T) {
	cfg := schedconfig.DefaultConfig()
	cfg.LogConfig.Level = "not-a-level"

	_, _, opts := FromConfig(cfg)

	built := defaultConfig()
	defaultLogger := built.Logger
	for _, opt := range opts {
		opt(&built)
	}

	if built.Logger != defaultLogger {
		t.Fatalf("Logger option was applied despite an invalid level")
	}
}
