package env

import (
	"math"
	"testing"
)

func TestDewpointAtSaturation(t *testing.T) {
	// At 100% relative humidity the dewpoint equals the temperature.
	for _, temp := range []float64{-10, 0, 20, 35} {
		if got := DewpointC(temp, 100); math.Abs(got-temp) > 1e-9 {
			t.Fatalf("DewpointC(%v, 100) = %v, want %v", temp, got, temp)
		}
	}
}

func TestDewpointBelowTemperature(t *testing.T) {
	e := New(25, 50)
	if e.Dewpoint >= e.Temperature {
		t.Fatalf("Dewpoint = %v, want below %v at 50%% RH", e.Dewpoint, e.Temperature)
	}
	// Magnus approximation puts 25C at 50% RH near 13.9C.
	if e.Dewpoint < 13 || e.Dewpoint > 15 {
		t.Fatalf("Dewpoint = %v, want within [13, 15]", e.Dewpoint)
	}
}
