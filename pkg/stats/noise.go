package stats

import "log/slog"

// NewNoise pairs a raw stream with its smoothed counterpart and emits
// the rolling residual standard deviation. Nothing is emitted until a
// full residual window has accumulated.
func NewNoise(name string, raw, smoothed <-chan float64, window int) (<-chan float64, func() error) {
	c := make(chan float64, 1)
	r := NewResidual(window)
	return c, func() error {
		defer close(c)
		var lastRaw float64
		haveRaw := false
		seen := 0
		for {
			select {
			case v, ok := <-raw:
				if !ok {
					raw = nil
					continue
				}
				lastRaw = v
				haveRaw = true
			case s, ok := <-smoothed:
				if !ok {
					return nil
				}
				if !haveRaw {
					continue
				}
				r.Add(lastRaw, s)
				seen++
				if seen < window {
					continue
				}
				sd := r.StdDev()
				slog.Debug("noise estimate", "signal", name, "stddev", sd, "drift", r.Mean(), "p95", r.QuantileSpread(0.95))
				c <- sd
			}
		}
	}
}
