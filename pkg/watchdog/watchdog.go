package watchdog

import (
	"log/slog"
	"time"
)

// NewWatchdog returns a runner that invokes shutdown when no value
// arrives on input for two consecutive timeout windows. It guards
// against a stalled sensor silently freezing the published averages.
func NewWatchdog[T any](interval time.Duration, shutdown func() error, input <-chan T) func() error {
	return func() error {
		t := time.NewTimer(interval)
		awake := true
		slog.Debug("watchdog started", "timeout", interval)
		for {
			select {
			case _, ok := <-input:
				if !ok {
					// Input closed: the pipeline is shutting down.
					return nil
				}
				awake = true
			case <-t.C:
				if !awake {
					slog.Error("watchdog timeout, shutting down", "timeout", interval)
					return shutdown()
				}
				awake = false
				t.Reset(interval)
			}
		}
	}
}
