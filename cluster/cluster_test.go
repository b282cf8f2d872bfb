package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statkit/statkit/errs"
)

func TestNew_ComputesWeight(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 2}, {Value: 2, Count: 3}})

	require.NoError(t, err)
	require.Equal(t, 5, list.Weight())
	require.False(t, list.IsEmpty())
}

func TestNew_RejectsInvalidCount(t *testing.T) {
	_, err := New([]Cluster{{Value: 1, Count: 0}})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}

func TestFromValues(t *testing.T) {
	list := FromValues([]float64{3, 1, 2})

	require.Equal(t, 3, list.Weight())
	require.Equal(t, []Cluster{{3, 1}, {1, 1}, {2, 1}}, list.Clusters())
}

func TestSum_Weighted(t *testing.T) {
	list, err := New([]Cluster{{Value: 1.5, Count: 2}, {Value: 2, Count: 1}})

	require.NoError(t, err)
	require.Equal(t, 5.0, list.Sum())
}

func TestSumSquaredDiff(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 2}, {Value: 4, Count: 1}})

	require.NoError(t, err)
	// (1-2)^2 * 2 + (4-2)^2 * 1 = 6
	require.Equal(t, 6.0, list.SumSquaredDiff(2))
}

func TestSort_Ascending(t *testing.T) {
	list := FromValues([]float64{3, 1, 2})
	list.Sort()

	require.Equal(t, []Cluster{{1, 1}, {2, 1}, {3, 1}}, list.Clusters())
}

func TestSplitStart_ExactBoundary(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 2}, {Value: 2, Count: 3}})
	require.NoError(t, err)

	head, err := list.SplitStart(2)

	require.NoError(t, err)
	require.Equal(t, 2, head.Weight())
	require.Equal(t, []Cluster{{1, 2}}, head.Clusters())
}

func TestSplitStart_InsideCluster(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 2}, {Value: 2, Count: 3}})
	require.NoError(t, err)

	head, err := list.SplitStart(4)

	require.NoError(t, err)
	require.Equal(t, 4, head.Weight())
	require.Equal(t, []Cluster{{1, 2}, {2, 2}}, head.Clusters())
}

func TestSplitEnd_InsideCluster(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 2}, {Value: 2, Count: 3}})
	require.NoError(t, err)

	tail, err := list.SplitEnd(4)

	require.NoError(t, err)
	require.Equal(t, 4, tail.Weight())
	require.Equal(t, []Cluster{{1, 1}, {2, 3}}, tail.Clusters())
}

func TestSplit_ExceedsWeight(t *testing.T) {
	list := FromValues([]float64{1, 2})

	_, err := list.SplitStart(3)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = list.SplitEnd(3)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestOptimize_MergesBitIdentical(t *testing.T) {
	list, err := New([]Cluster{
		{Value: 2, Count: 1},
		{Value: 1, Count: 2},
		{Value: 2, Count: 3},
	})
	require.NoError(t, err)

	opt := list.Optimize()

	require.Equal(t, list.Weight(), opt.Weight())
	require.Equal(t, []Cluster{{2, 4}, {1, 2}}, opt.Clusters())
}

func TestOptimize_Idempotent(t *testing.T) {
	list, err := New([]Cluster{{Value: 1, Count: 1}, {Value: 1, Count: 2}, {Value: 2, Count: 1}})
	require.NoError(t, err)

	once := list.Optimize()
	twice := once.Optimize()

	require.Equal(t, once.Clusters(), twice.Clusters())
	require.Equal(t, once.Weight(), twice.Weight())
}

func TestOptimize_KeepsBitDistinctZeros(t *testing.T) {
	negZero := math.Copysign(0, -1)
	list := FromValues([]float64{0.0, negZero, 0.0})

	opt := list.Optimize()

	require.Equal(t, 3, opt.Weight())
	require.Len(t, opt.Clusters(), 2)
	require.Equal(t, Cluster{0.0, 2}, opt.Clusters()[0])
	require.Equal(t, math.Float64bits(negZero), math.Float64bits(opt.Clusters()[1].Value))
}

func TestFingerprint_StableAndSensitive(t *testing.T) {
	a := FromValues([]float64{1, 2, 3})
	b := FromValues([]float64{1, 2, 3})
	c := FromValues([]float64{3, 2, 1})

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func BenchmarkOptimize(b *testing.B) {
	values := make([]float64, 4096)
	for i := range values {
		values[i] = float64(i % 64)
	}
	list := FromValues(values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Optimize()
	}
}
