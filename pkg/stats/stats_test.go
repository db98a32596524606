package stats

import (
	"math"
	"testing"
)

func TestResidualMean(t *testing.T) {
	r := NewResidual(4)
	r.Add(1, 0)
	r.Add(2, 0)
	r.Add(3, 0)
	r.Add(4, 0)
	if got := r.Mean(); got != 2.5 {
		t.Fatalf("Mean() = %v, want 2.5", got)
	}
}

func TestResidualStdDev(t *testing.T) {
	r := NewResidual(4)
	for _, v := range []float64{2, 4, 4, 4} {
		r.Add(v, 0)
	}
	// Sample standard deviation of 2,4,4,4.
	if got, want := r.StdDev(), 1.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("StdDev() = %v, want %v", got, want)
	}
}

func TestResidualRollsWindow(t *testing.T) {
	r := NewResidual(2)
	r.Add(10, 0)
	r.Add(1, 0)
	r.Add(3, 0)
	// The 10 has rolled out; only 1 and 3 remain.
	if got := r.Mean(); got != 2 {
		t.Fatalf("Mean() after roll = %v, want 2", got)
	}
}

func TestQuantileSpread(t *testing.T) {
	r := NewResidual(4)
	for _, v := range []float64{-1, 2, -3, 4} {
		r.Add(v, 0)
	}
	got := r.QuantileSpread(0.5)
	if got < 2 || got > 3 {
		t.Fatalf("QuantileSpread(0.5) = %v, want within [2, 3]", got)
	}
}
