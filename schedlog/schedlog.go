// Package schedlog provides the scheduler's diagnostic logger.
//
// The scheduler's core decision logic (the Dispatcher, the rendezvous
// protocol) never logs: logging only happens on the paths spec.md §7
// calls out explicitly — fatal resource exhaustion / synchronisation
// failures, and the documented Wait-with-empty-ready-queue divergence
// warning — plus a warning when a task's handler panics. This mirrors the ambient logging setup in
// bgp59-victoriametrics-importer's vmi/internal/logger.go, trimmed to
// what a single-process library needs: no caller-prettifying path cache,
// no component sub-loggers, just level, format, and optional rotated
// file output.
package schedlog

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction. The zero value is valid and yields
// a text-formatted logger writing to stderr at Info level.
type Config struct {
	// UseJSON selects JSON-structured records instead of text.
	UseJSON bool

	// Level is a logrus level name ("debug", "info", "warn", ...).
	// Empty defaults to "info".
	Level string

	// File, when non-empty, redirects output to a size-rotated file
	// instead of stderr.
	File string

	// FileMaxSizeMB caps the log file size before rotation. Default: 10.
	FileMaxSizeMB int

	// FileMaxBackups caps the number of rotated files retained. Default: 1.
	FileMaxBackups int
}

// Logger is the scheduler's diagnostic logger. It satisfies the
// scheduler's internal diagnosticLogger interface (Warnf, Fatalf).
type Logger struct {
	*logrus.Logger
}

// New builds a Logger from cfg. An empty Config produces the package
// default: text output to stderr at Info level.
func New(cfg Config) (*Logger, error) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	base := &logrus.Logger{
		Out:          os.Stderr,
		Level:        parsed,
		ReportCaller: false,
	}
	if cfg.UseJSON {
		base.Formatter = &logrus.JSONFormatter{}
	} else {
		base.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	if cfg.File != "" {
		maxSize := cfg.FileMaxSizeMB
		if maxSize == 0 {
			maxSize = 10
		}
		maxBackups := cfg.FileMaxBackups
		if maxBackups == 0 {
			maxBackups = 1
		}
		base.Out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		}
	}

	return &Logger{Logger: base}, nil
}

// Default returns a Logger with package defaults (text, stderr, info).
func Default() *Logger {
	l, _ := New(Config{})
	return l
}
