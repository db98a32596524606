// Package wma implements a weighted moving-average filter over a
// fixed-size ring of samples. The caller owns the sample buffer and the
// weight table; the filter only writes into the buffer.
package wma

import "errors"

var ErrInvalidConfig = errors.New("wma: invalid filter configuration")

type Float interface {
	~float32 | ~float64
}

// Filter smooths a stream of samples by a per-slot weighted average.
// weight[0] applies to the oldest sample in the window and
// weight[size-1] to the newest. The weight table is fixed for the
// filter's lifetime; a zero weight sum makes Add produce non-finite
// averages. Not safe for concurrent use.
type Filter[T Float] struct {
	buffer    []T
	weight    []T
	sumWeight float64
	k         uint64
	avg       T
}

// New wraps the caller-supplied sample buffer and weight table. The
// buffer length sets the window size and must be nonzero; the weight
// table must be exactly as long as the buffer.
func New[T Float](buffer, weight []T) (*Filter[T], error) {
	f := &Filter[T]{
		buffer: buffer,
		weight: weight,
	}
	if err := f.Init(); err != nil {
		return nil, err
	}
	return f, nil
}

// Init resets the filter to the warm-up state and recomputes the cached
// weight sum. Buffer contents are left alone; they are unreachable
// until overwritten.
func (f *Filter[T]) Init() error {
	if len(f.buffer) == 0 || len(f.weight) != len(f.buffer) {
		return ErrInvalidConfig
	}
	f.avg = 0
	f.k = 0
	f.sumWeight = 0
	for _, w := range f.weight {
		f.sumWeight += float64(w)
	}
	return nil
}

// Add records a sample, overwriting the oldest slot once the ring has
// wrapped, and returns the current average. Until a full window of
// samples has been seen the average stays at its previous value, zero
// after Init.
func (f *Filter[T]) Add(x T) T {
	size := uint64(len(f.buffer))
	f.buffer[f.k%size] = x
	f.k++

	// Wait for a full window of samples before averaging
	if f.k < size {
		return f.avg
	}

	// pos is one past the newest slot, i.e. the oldest in-window sample
	total := float64(0)
	pos := f.k % size
	for i := uint64(0); i < size; i++ {
		total += float64(f.buffer[(i+pos)%size]) * float64(f.weight[i])
	}
	f.avg = T(total / f.sumWeight)

	return f.avg
}

// Average returns the last computed average, zero during warm-up.
func (f *Filter[T]) Average() T {
	return f.avg
}

// Primed reports whether a full window of samples has been seen.
func (f *Filter[T]) Primed() bool {
	return f.k >= uint64(len(f.buffer))
}

// Count returns the number of samples ever added.
func (f *Filter[T]) Count() uint64 {
	return f.k
}

func (f *Filter[T]) Size() int {
	return len(f.buffer)
}

// Window returns the backing buffer in physical slot order.
func (f *Filter[T]) Window() []T {
	return f.buffer
}

func (f *Filter[T]) SumWeight() float64 {
	return f.sumWeight
}
