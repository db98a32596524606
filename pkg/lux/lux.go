package lux

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tsl2591 "github.com/JenswBE/golang-tsl2591"
)

// LightChannel polls the TSL2591 and emits the infrared count until
// the context ends. The count is forwarded as float64 so it can feed
// the same filter pipeline as the analog signals.
func LightChannel(ctx context.Context, dev *tsl2591.TSL2591, interval time.Duration) (<-chan float64, func() error) {
	c := make(chan float64, 1)
	ctx, cancelFunc := context.WithCancel(ctx)
	return c, func() error {
		defer cancelFunc()
		defer close(c)
		done := ctx.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				ir, err := dev.Infrared()
				if err != nil {
					return fmt.Errorf("tsl2591: %w", err)
				}
				slog.Debug("publishing reading", "ir", ir, "module", "tsl2591")
				c <- float64(ir)
			}
		}
	}
}
