package measurement

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
	"github.com/ADS-laboratory/chrono-probe/pkg/distribution"
	"github.com/ADS-laboratory/chrono-probe/pkg/input"
)

// sliceInstance is a minimal cloneable input for engine tests.
type sliceInstance struct {
	values []int
}

func (s sliceInstance) Clone() sliceInstance {
	clone := make([]int, len(s.values))
	copy(clone, s.values)

	return sliceInstance{values: clone}
}

type sliceGenerator struct{}

func (g sliceGenerator) Size(instance sliceInstance) int {
	return len(instance.values)
}

func (g sliceGenerator) Generate(size int) sliceInstance {
	values := make([]int, size)
	for i := range values {
		values[i] = size - i
	}

	return sliceInstance{values: values}
}

func buildTestSet(t *testing.T, n, repetitions int) *input.Set[sliceInstance] {
	t.Helper()

	uniform, err := distribution.NewUniform(10, 1000)
	require.NoError(t, err)

	set, err := input.NewBuilder[sliceInstance](uniform, sliceGenerator{}).BuildWithRepetitions(n, repetitions)
	require.NoError(t, err)

	return set
}

func TestMeasureOneMeetsPrecisionContract(t *testing.T) {
	resolution := Resolution()
	minMeasurable := minMeasurableTime(resolution, 0.05)

	calls := 0
	work := func(instance sliceInstance) {
		calls++
	}

	mean, err := measureOne(work, sliceGenerator{}.Generate(100), minMeasurable, 0)

	require.NoError(t, err)
	require.Greater(t, calls, 0)
	require.Greater(t, mean, time.Duration(0))
	// mean*n re-derives the total elapsed time up to one truncated
	// nanosecond per call, which must have crossed the threshold
	total := mean * time.Duration(calls)
	require.Greater(t, total+time.Duration(calls), minMeasurable)
}

func TestMeasureOneMutClonesPerCallAndKeepsInputIntact(t *testing.T) {
	resolution := Resolution()
	minMeasurable := minMeasurableTime(resolution, 0.1)

	original := sliceGenerator{}.Generate(50)
	pristine := original.Clone()

	calls := 0
	work := func(instance sliceInstance) {
		calls++
		sort.Ints(instance.values)
	}

	mean, err := measureOneMut(work, original, minMeasurable, 0)

	require.NoError(t, err)
	require.Greater(t, calls, 0)
	require.Greater(t, mean, time.Duration(0))
	// every call sorted a clone; the shared instance stays untouched
	require.Equal(t, pristine.values, original.values)
}

func TestMeasureShape(t *testing.T) {
	set := buildTestSet(t, 8, 2)

	algorithms := []Algorithm[sliceInstance]{
		{Name: "first", Fn: func(instance sliceInstance) {}},
		{Name: "second", Fn: func(instance sliceInstance) {}},
	}

	ms, err := Measure(set, algorithms, 0.1)

	require.NoError(t, err)
	require.Greater(t, ms.Resolution, time.Duration(0))
	require.Equal(t, 0.1, ms.RelativeError)
	require.Len(t, ms.Series, 2)
	for i, series := range ms.Series {
		require.Equal(t, algorithms[i].Name, series.AlgorithmName)
		require.Len(t, series.Points, len(set.Groups))
		for j, point := range series.Points {
			require.Equal(t, set.Groups[j].Size, point.Size)
			require.Greater(t, point.Time, time.Duration(0))
		}
	}
}

func TestMeasureMutShape(t *testing.T) {
	set := buildTestSet(t, 5, 2)

	algorithms := []MutAlgorithm[sliceInstance]{
		{Name: "sort", Fn: func(instance sliceInstance) {
			sort.Ints(instance.values)
		}},
	}

	ms, err := MeasureMut(set, algorithms, 0.1)

	require.NoError(t, err)
	require.Len(t, ms.Series, 1)
	require.Equal(t, "sort", ms.Series[0].AlgorithmName)
	require.Len(t, ms.Series[0].Points, len(set.Groups))
}

func TestMeasureInvalidRelativeError(t *testing.T) {
	set := buildTestSet(t, 2, 1)
	algorithms := []Algorithm[sliceInstance]{{Name: "noop", Fn: func(sliceInstance) {}}}

	for _, relativeError := range []float64{0, -0.01} {
		ms, err := Measure(set, algorithms, relativeError)

		require.ErrorIs(t, err, common.ErrInvalidArgument)
		require.Nil(t, ms)
	}
}

func TestMeasureTimeLimit(t *testing.T) {
	set := buildTestSet(t, 2, 1)
	algorithms := []Algorithm[sliceInstance]{{Name: "noop", Fn: func(sliceInstance) {}}}

	// an absurd resolution makes the precision contract unreachable
	ms, err := Measure(set, algorithms, 0.001,
		WithResolution(time.Hour),
		WithTimeLimit(5*time.Millisecond))

	require.ErrorIs(t, err, ErrTimeLimit)
	require.Nil(t, ms)
}

func TestMeasureProgressReporting(t *testing.T) {
	set := buildTestSet(t, 3, 1)
	algorithms := []Algorithm[sliceInstance]{
		{Name: "first", Fn: func(sliceInstance) {}},
		{Name: "second", Fn: func(sliceInstance) {}},
	}

	var last [2]int
	calls := 0
	ms, err := Measure(set, algorithms, 0.1, WithProgress(func(completed, total int) {
		calls++
		last = [2]int{completed, total}
	}))

	require.NoError(t, err)
	require.NotNil(t, ms)
	require.Equal(t, 6, calls)
	require.Equal(t, [2]int{6, 6}, last)
}

func TestMeasureWithResolutionOverride(t *testing.T) {
	set := buildTestSet(t, 2, 1)
	algorithms := []Algorithm[sliceInstance]{{Name: "noop", Fn: func(sliceInstance) {}}}

	ms, err := Measure(set, algorithms, 0.1, WithResolution(50*time.Nanosecond))

	require.NoError(t, err)
	require.Equal(t, 50*time.Nanosecond, ms.Resolution)
}
