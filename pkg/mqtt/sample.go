package mqtt

// Sample decimates a stream, reporting Ready once every rate calls.
// A rate below 2 publishes every value.
type Sample struct {
	count int
	rate  int
}

func NewSample(rate int) *Sample {
	return &Sample{rate: rate}
}

func (s *Sample) Ready() bool {
	if s.rate < 2 {
		return true
	}
	s.count++
	if s.count%s.rate == 0 {
		s.count = 0
		return true
	}
	return false
}
