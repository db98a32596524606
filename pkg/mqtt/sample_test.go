package mqtt

import "testing"

func TestSampleDecimates(t *testing.T) {
	s := NewSample(3)
	ready := 0
	for i := 0; i < 9; i++ {
		if s.Ready() {
			ready++
		}
	}
	if ready != 3 {
		t.Fatalf("Ready() fired %d times over 9 calls at rate 3, want 3", ready)
	}
}

func TestSampleRateOnePassesEverything(t *testing.T) {
	for _, rate := range []int{0, 1} {
		s := NewSample(rate)
		for i := 0; i < 5; i++ {
			if !s.Ready() {
				t.Fatalf("Ready() = false at rate %d, want true", rate)
			}
		}
	}
}
