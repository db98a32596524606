package hygro

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikesmitty/sht4x"
	"periph.io/x/conn/v3/physic"

	"github.com/mikesmitty/smooth-boy/pkg/env"
)

// EnvChannel polls the SHT4x reference sensor and emits
// temperature/humidity/dewpoint readings until the context ends.
func EnvChannel(ctx context.Context, dev *sht4x.Dev, interval time.Duration) (<-chan env.Env, func() error) {
	c := make(chan env.Env, 1)
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
					return fmt.Errorf("sht4x: %w", err)
				}
				slog.Debug("publishing reading", "temp", e.Temperature.Celsius(), "humidity", e.Humidity, "module", "sht4x")
				c <- env.New(e.Temperature.Celsius(), float64(e.Humidity)/float64(physic.PercentRH))
			}
		}
	}
}
