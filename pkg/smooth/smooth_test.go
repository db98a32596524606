package smooth

import (
	"testing"
)

func TestNewSmoothBadWeights(t *testing.T) {
	if _, _, err := NewSmooth("test", nil, nil); err == nil {
		t.Fatal("NewSmooth with empty weights = nil error, want error")
	}
}

func TestSmoothEmitsOnlyWhenPrimed(t *testing.T) {
	input := make(chan float64)
	out, run, err := NewSmooth("test", input, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- run() }()

	go func() {
		for _, x := range []float64{1, 2, 3, 4, 5} {
			input <- x
		}
		close(input)
	}()

	var got []float64
	for v := range out {
		got = append(got, v)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	// Warm-up swallows the first three samples; the fourth and fifth
	// each produce an average.
	want := []float64{2.5, 3.5}
	if len(got) != len(want) {
		t.Fatalf("received %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("received %v, want %v", got, want)
		}
	}
}
