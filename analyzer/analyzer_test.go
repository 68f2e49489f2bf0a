package analyzer

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/j-raghavan/skiplist"
)

func newList(t *testing.T, opts ...skiplist.Option) *skiplist.SkipList[int, int] {
	t.Helper()
	opts = append([]skiplist.Option{skiplist.WithRandSource(randv2.NewPCG(42, 42))}, opts...)
	list, err := skiplist.New[int, int](opts...)
	require.NoError(t, err)
	return list
}

func TestAnalyzeEmptyList(t *testing.T) {
	report := Analyze(newList(t))

	require.Zero(t, report.NodeCount)
	require.Zero(t, report.AverageHeight)
	require.Equal(t, 1, report.CurrentHeight)
	require.Equal(t, skiplist.DefaultMaxHeight, report.MaxHeight)
	require.Positive(t, report.LinkBytes) // head sentinel still counts
}

func TestAnalyzeCountsAndAverage(t *testing.T) {
	list := newList(t, skiplist.WithMaxHeight(4), skiplist.WithProbability(0.0))
	for i := 0; i < 20; i++ {
		list.Insert(i, i)
	}

	report := Analyze(list)
	require.Equal(t, 20, report.NodeCount)
	require.Equal(t, 1.0, report.AverageHeight) // p=0 pins every node at height 1
	require.Equal(t, []int{20, 0, 0, 0}, report.LevelDistribution)
}

func TestCumulativeLevelsNonIncreasing(t *testing.T) {
	list := newList(t, skiplist.WithMaxHeight(12))
	for i := 0; i < 2000; i++ {
		list.Insert(i, i)
	}

	occupancy := CumulativeLevels(list.LevelHistogram())
	require.Equal(t, list.Len(), occupancy[0])
	for i := 1; i < len(occupancy); i++ {
		require.LessOrEqual(t, occupancy[i], occupancy[i-1],
			"occupancy must not grow with level")
	}
}

func TestSampleHeightsExtremes(t *testing.T) {
	flat := SampleHeights(4, 0.0, 1000, randv2.NewPCG(1, 1))
	require.Equal(t, []int{1000, 0, 0, 0}, flat)

	tall := SampleHeights(4, 1.0, 1000, randv2.NewPCG(1, 1))
	require.Equal(t, []int{0, 0, 0, 1000}, tall)
}

func TestSampleHeightsGeometricShape(t *testing.T) {
	hist := SampleHeights(16, 0.5, 100000, randv2.NewPCG(9, 9))

	// Each level should hold roughly half of the previous one; a loose
	// factor-of-two window is enough to catch a broken policy.
	for i := 0; i+1 < 6; i++ {
		ratio := float64(hist[i+1]) / float64(hist[i])
		require.Greater(t, ratio, 0.25)
		require.Less(t, ratio, 0.75)
	}
}

func TestFingerprintTracksContent(t *testing.T) {
	a := newList(t)
	b := newList(t, skiplist.WithMaxHeight(8)) // different shape, same content

	for _, k := range []int{5, 1, 3} {
		a.Insert(k, k)
		b.Insert(k, k)
	}
	require.Equal(t, Fingerprint(a), Fingerprint(b),
		"fingerprint must depend on key sequence, not structure")

	b.Insert(4, 4)
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))

	b.Delete(4)
	require.Equal(t, Fingerprint(a), Fingerprint(b))
}
