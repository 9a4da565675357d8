package scheduler

import "github.com/luis6156/coopsched/schedlog"

// newDefaultLogger builds the scheduler's default diagnostic logger
// (text-formatted, stderr, info level). Overridden via WithLogger.
func newDefaultLogger() diagnosticLogger {
	return schedlog.Default()
}
