package stats

import (
	"math"
	"testing"
)

func TestNoiseEmitsAfterWindowFills(t *testing.T) {
	raw := make(chan float64)
	smoothed := make(chan float64)
	out, run := NewNoise("test", raw, smoothed, 3)

	done := make(chan error, 1)
	go func() { done <- run() }()

	go func() {
		// Constant offset of 1 between raw and smoothed: residuals are
		// all 1, so the noise estimate is 0.
		for i := 0; i < 4; i++ {
			raw <- float64(i) + 1
			smoothed <- float64(i)
		}
		close(raw)
		close(smoothed)
	}()

	var got []float64
	for v := range out {
		got = append(got, v)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	// First two pairs only fill the window; the last two emit.
	if len(got) != 2 {
		t.Fatalf("received %d noise values, want 2 (%v)", len(got), got)
	}
	for _, v := range got {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("noise estimate = %v, want 0 for constant residual", v)
		}
	}
}
