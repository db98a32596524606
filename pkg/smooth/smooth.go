package smooth

import (
	"log/slog"

	"github.com/mikesmitty/smooth-boy/pkg/wma"
)

// NewSmooth pipes a sensor stream through a weighted moving-average
// filter sized to the weight table. Nothing is forwarded until the
// window has primed, so downstream consumers never see warm-up zeros.
func NewSmooth(name string, input <-chan float64, weight []float64) (<-chan float64, func() error, error) {
	f, err := wma.New(make([]float64, len(weight)), weight)
	if err != nil {
		return nil, nil, err
	}
	c := make(chan float64, 1)
	return c, func() error {
		defer close(c)
		for x := range input {
			avg := f.Add(x)
			if !f.Primed() {
				continue
			}
			slog.Debug("smoothed sample", "signal", name, "raw", x, "avg", avg)
			c <- avg
		}
		return nil
	}, nil
}
