package cmdlog

import (
	"time"

	"postcraft/internal/logging"
	"postcraft/internal/metrics"
)

// Run executes a CLI command body, counting it and logging the outcome.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	start := time.Now()
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", logging.Fields{"error": err.Error()})
	} else {
		logging.Debug(cmd+"_ok", logging.Fields{"elapsed_ms": time.Since(start).Milliseconds()})
	}
	return err
}
