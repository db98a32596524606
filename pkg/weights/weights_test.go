package weights

import (
	"math"
	"testing"
)

func TestUniform(t *testing.T) {
	w, err := Uniform(4)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("Uniform(4)[%d] = %v, want 1", i, v)
		}
	}
	if _, err := Uniform(0); err == nil {
		t.Fatal("Uniform(0) = nil error, want error")
	}
}

func TestLinear(t *testing.T) {
	w, err := Linear(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if w[i] != want[i] {
			t.Fatalf("Linear(3) = %v, want %v", w, want)
		}
	}
}

func TestExponential(t *testing.T) {
	w, err := Exponential(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.125, 0.25, 0.5, 1}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-15 {
			t.Fatalf("Exponential(4, 2) = %v, want %v", w, want)
		}
	}
	if _, err := Exponential(4, 1); err == nil {
		t.Fatal("Exponential(4, 1) = nil error, want error")
	}
}

func TestParse(t *testing.T) {
	w, err := Parse("0.1, 0.5,1.0")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.1, 0.5, 1.0}
	for i := range want {
		if w[i] != want[i] {
			t.Fatalf("Parse = %v, want %v", w, want)
		}
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse(\"\") = nil error, want error")
	}
	if _, err := Parse("1,two,3"); err == nil {
		t.Fatal("Parse with garbage = nil error, want error")
	}
}
