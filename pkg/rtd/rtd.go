package rtd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikesmitty/max31865"
	"periph.io/x/conn/v3/physic"
)

// TemperatureChannel polls the MAX31865 RTD amplifier on a fixed
// interval and emits Celsius readings until the context ends.
func TemperatureChannel(ctx context.Context, dev *max31865.Dev, interval time.Duration) (<-chan float64, func() error) {
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
				var e physic.Env
				err := dev.Sense(&e)
				if err != nil {
					return fmt.Errorf("max31865: %w", err)
				}
				slog.Debug("publishing reading", "value", e.Temperature.Celsius(), "module", "max31865")
				c <- e.Temperature.Celsius()
			}
		}
	}
}
