package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Residual tracks raw-minus-smoothed differences over a rolling window
// to estimate how much noise the filter is removing.
type Residual struct {
	values []float64
	abs    []float64
}

func NewResidual(size int) *Residual {
	return &Residual{
		values: make([]float64, size),
		abs:    make([]float64, size),
	}
}

func (r *Residual) Add(raw, smoothed float64) {
	r.values = append(r.values[1:], raw-smoothed)
}

// Mean returns the average residual, a drift indicator for weight
// tables biased toward older samples.
func (r *Residual) Mean() float64 {
	return stat.Mean(r.values, nil)
}

// StdDev returns the standard deviation of the residuals, the noise
// estimate published alongside each smoothed signal.
func (r *Residual) StdDev() float64 {
	return stat.StdDev(r.values, nil)
}

// QuantileSpread returns the pct empirical quantile of the absolute
// residuals.
func (r *Residual) QuantileSpread(pct float64) float64 {
	for i, v := range r.values {
		r.abs[i] = math.Abs(v)
	}
	sort.Float64s(r.abs)
	return stat.Quantile(pct, stat.Empirical, r.abs, nil)
}
