package wma

import (
	"math"
	"strconv"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	for _, size := range []int{8, 64, 600} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			weight := make([]float64, size)
			for i := range weight {
				weight[i] = float64(i + 1)
			}
			f, err := New(make([]float64, size), weight)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Add(math.Sin(float64(i)))
			}
		})
	}
}
