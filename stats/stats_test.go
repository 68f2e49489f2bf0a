package stats

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/j-raghavan/skiplist"
)

func newRecorder(t *testing.T) *Recorder[int, int] {
	t.Helper()
	list, err := skiplist.New[int, int](skiplist.WithRandSource(randv2.NewPCG(42, 42)))
	require.NoError(t, err)
	return Wrap(list)
}

func TestRecorderCountsOperations(t *testing.T) {
	r := newRecorder(t)

	require.True(t, r.Insert(1, 10))
	require.False(t, r.Insert(1, 99))
	require.True(t, r.Insert(2, 20))

	v, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = r.Get(7)
	require.False(t, ok)

	require.True(t, r.Contains(2))
	require.True(t, r.Delete(2))
	require.False(t, r.Delete(2))

	snap := r.Snapshot()
	require.EqualValues(t, 3, snap.Inserts)
	require.EqualValues(t, 2, snap.Gets)
	require.EqualValues(t, 1, snap.Contains)
	require.EqualValues(t, 2, snap.Deletes)
	require.Equal(t, 1, r.Len())
}

func TestSnapshotIncludesLevelDistribution(t *testing.T) {
	r := newRecorder(t)

	for i := 0; i < 100; i++ {
		r.Insert(i, i)
	}

	snap := r.Snapshot()
	require.Len(t, snap.LevelDistribution, skiplist.DefaultMaxHeight)

	sum := 0
	for _, c := range snap.LevelDistribution {
		sum += c
	}
	require.Equal(t, 100, sum)
}

func TestResetClearsCountersNotList(t *testing.T) {
	r := newRecorder(t)

	r.Insert(1, 1)
	r.Get(1)
	r.Reset()

	snap := r.Snapshot()
	require.Zero(t, snap.Inserts)
	require.Zero(t, snap.Gets)
	require.Zero(t, snap.InsertTime)
	require.Equal(t, 1, r.Len())
}

func TestAveragesOnEmptyRecorder(t *testing.T) {
	r := newRecorder(t)
	snap := r.Snapshot()
	require.Zero(t, snap.AvgInsert())
	require.Zero(t, snap.AvgGet())
	require.Zero(t, snap.AvgDelete())
}

func TestPassThroughIteration(t *testing.T) {
	r := newRecorder(t)
	for _, k := range []int{3, 1, 2} {
		r.Insert(k, k)
	}

	var keys []int
	for it := r.All(); it.Next(); {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{1, 2, 3}, keys)

	keys = nil
	for it := r.Range(2, 4); it.Next(); {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{2, 3}, keys)
}
