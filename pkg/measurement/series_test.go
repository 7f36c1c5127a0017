package measurement

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticLine builds a series exactly satisfying time = a*size + b, with
// time expressed in microseconds.
func syntheticLine(a, b float64, sizes []int) Measurement {
	points := make([]Point, len(sizes))
	for i, size := range sizes {
		micros := a*float64(size) + b
		points[i] = Point{Size: size, Time: time.Duration(micros) * time.Microsecond}
	}

	return Measurement{AlgorithmName: "synthetic", Points: points}
}

func TestLinearRegressionRecoversLine(t *testing.T) {
	tests := []struct {
		testName  string
		slope     float64
		intercept float64
	}{
		{"steep", 3, 7},
		{"shallow", 0.5, 100},
		{"flat", 0, 42},
	}

	sizes := []int{10, 20, 40, 80, 160, 320, 640}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			series := syntheticLine(test.slope, test.intercept, sizes)

			slope, intercept := series.LinearRegression()

			assert.InDelta(t, test.slope, slope, 1e-3+math.Abs(test.slope)*1e-3)
			assert.InDelta(t, test.intercept, intercept, 1e-3+math.Abs(test.intercept)*1e-3)
		})
	}
}

func TestLinearRegressionDegenerateOnEqualSizes(t *testing.T) {
	series := Measurement{
		AlgorithmName: "degenerate",
		Points: []Point{
			{Size: 100, Time: 10 * time.Microsecond},
			{Size: 100, Time: 20 * time.Microsecond},
		},
	}

	slope, _ := series.LinearRegression()

	// zero variance in sizes, deliberately unguarded
	require.True(t, math.IsNaN(slope))
}

func TestLogLogScale(t *testing.T) {
	series := Measurement{
		AlgorithmName: "loglog",
		Points: []Point{
			{Size: 256, Time: 1024 * time.Microsecond},
			{Size: 1000, Time: 3 * time.Millisecond},
		},
	}

	scaled := series.LogLogScale()

	require.Equal(t, "loglog", scaled.AlgorithmName)
	require.Len(t, scaled.Points, 2)

	require.Equal(t, 8, scaled.Points[0].Size)
	require.Equal(t, 10*time.Microsecond, scaled.Points[0].Time)

	// truncation mirrors the integer size metric
	require.Equal(t, int(math.Log2(1000)), scaled.Points[1].Size)
	expectedMicros := int64(math.Log2(float64((3 * time.Millisecond).Microseconds())))
	require.Equal(t, time.Duration(expectedMicros)*time.Microsecond, scaled.Points[1].Time)
}

func TestLogLogScaleNotIdempotent(t *testing.T) {
	series := syntheticLine(2, 0, []int{256, 512, 1024})

	once := series.LogLogScale()
	twice := once.LogLogScale()

	require.NotEqual(t, once.Points, twice.Points)
}

func TestSortBySize(t *testing.T) {
	series := Measurement{
		Points: []Point{
			{Size: 300, Time: 3 * time.Microsecond},
			{Size: 100, Time: 1 * time.Microsecond},
			{Size: 200, Time: 2 * time.Microsecond},
		},
	}

	series.SortBySize()

	require.Equal(t, []Point{
		{Size: 100, Time: 1 * time.Microsecond},
		{Size: 200, Time: 2 * time.Microsecond},
		{Size: 300, Time: 3 * time.Microsecond},
	}, series.Points)
}

func TestAccessors(t *testing.T) {
	ms := Measurements{
		Series: []Measurement{
			{
				AlgorithmName: "a",
				Points: []Point{
					{Size: 10, Time: 5 * time.Microsecond},
					{Size: 500, Time: 90 * time.Microsecond},
				},
			},
			{
				AlgorithmName: "b",
				Points: []Point{
					{Size: 3, Time: 1 * time.Microsecond},
					{Size: 700, Time: 40 * time.Microsecond},
				},
			},
		},
	}

	require.Equal(t, 90*time.Microsecond, ms.MaxTime())
	require.Equal(t, 1*time.Microsecond, ms.MinTime())
	require.Equal(t, 700, ms.MaxSize())
	require.Equal(t, 3, ms.MinSize())

	require.Equal(t, 90*time.Microsecond, ms.Series[0].MaxTime())
	require.Equal(t, 5*time.Microsecond, ms.Series[0].MinTime())
	require.Equal(t, 500, ms.Series[0].MaxSize())
	require.Equal(t, 10, ms.Series[0].MinSize())
}

func TestMeasurementsLogLogScaleKeepsMetadata(t *testing.T) {
	ms := Measurements{
		Series:        []Measurement{syntheticLine(1, 0, []int{256})},
		RelativeError: 0.01,
		Resolution:    30 * time.Nanosecond,
	}

	scaled := ms.LogLogScale()

	require.Equal(t, 0.01, scaled.RelativeError)
	require.Equal(t, 30*time.Nanosecond, scaled.Resolution)
	require.Equal(t, 8, scaled.Series[0].Points[0].Size)
}
