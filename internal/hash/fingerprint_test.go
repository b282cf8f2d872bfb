package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample_Deterministic(t *testing.T) {
	values := []float64{1.5, -2.25, 1e300, 0.0}

	require.Equal(t, Sample(values), Sample(values))
}

func TestSample_OrderSensitive(t *testing.T) {
	a := Sample([]float64{1, 2, 3})
	b := Sample([]float64{3, 2, 1})

	require.NotEqual(t, a, b)
}

func TestSample_BitPatternSensitive(t *testing.T) {
	posZero := Sample([]float64{0.0})
	negZero := Sample([]float64{math.Copysign(0, -1)})

	require.NotEqual(t, posZero, negZero)
}

func TestWeighted_CountSensitive(t *testing.T) {
	values := []float64{1, 2}

	a := Weighted(values, []int{1, 1})
	b := Weighted(values, []int{1, 2})

	require.NotEqual(t, a, b)
}

func TestWeighted_Deterministic(t *testing.T) {
	values := []float64{5.5, 6.5}
	counts := []int{3, 7}

	require.Equal(t, Weighted(values, counts), Weighted(values, counts))
}

func BenchmarkSample(b *testing.B) {
	values := make([]float64, 1024)
	for i := range values {
		values[i] = float64(i) * 0.75
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sample(values)
	}
}
