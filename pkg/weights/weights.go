// Package weights builds weight tables for the wma filter. Tables are
// ordered oldest-to-newest, matching the filter's window ordering.
package weights

import (
	"fmt"
	"strconv"
	"strings"
)

// Uniform returns an all-ones table, reducing the filter to a plain
// moving average.
func Uniform(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("weights: window size %d must be positive", n)
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w, nil
}

// Linear returns the ramp 1..n, weighting the newest sample n times as
// heavily as the oldest.
func Linear(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("weights: window size %d must be positive", n)
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i + 1)
	}
	return w, nil
}

// Exponential returns a geometric ramp where each slot weighs base
// times its older neighbor. The newest slot is normalized to 1.
func Exponential(n int, base float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("weights: window size %d must be positive", n)
	}
	if base <= 1 {
		return nil, fmt.Errorf("weights: exponential base %v must be greater than 1", base)
	}
	w := make([]float64, n)
	v := 1.0
	for i := n - 1; i >= 0; i-- {
		w[i] = v
		v /= base
	}
	return w, nil
}

// Parse reads a comma-separated weight table, e.g.
// "0.1,0.1,0.125,0.125,0.25,0.25,0.5,1.0".
func Parse(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
		return nil, fmt.Errorf("weights: empty weight table")
	}
	w := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("weights: entry %d: %w", i, err)
		}
		w[i] = v
	}
	return w, nil
}
