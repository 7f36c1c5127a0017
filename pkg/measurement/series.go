/*
 * MIT License
 *
 * Copyright (c) 2023 the ADS laboratory
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package measurement

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Point is one aggregated observation: the nominal input size of a group and
// the summed mean duration over its repetitions.
type Point struct {
	Size int           `json:"size"`
	Time time.Duration `json:"time"`
}

// Measurement is the duration-vs-size series of one algorithm. Points follow
// the order of the input set; call SortBySize before anything that assumes
// ascending sizes.
type Measurement struct {
	AlgorithmName string  `json:"algorithm_name"`
	Points        []Point `json:"points"`
}

// Measurements is the complete result of one run. RelativeError and
// Resolution are shared metadata, constant across all series.
type Measurements struct {
	Series        []Measurement `json:"series"`
	RelativeError float64       `json:"relative_error"`
	Resolution    time.Duration `json:"resolution"`
}

// SortBySize orders the points by ascending size, in place.
func (m *Measurement) SortBySize() {
	sort.Slice(m.Points, func(i, j int) bool {
		return m.Points[i].Size < m.Points[j].Size
	})
}

// LinearRegression fits time = slope*size + intercept by ordinary least
// squares, with time taken in microseconds.
//
// When all sizes are equal the variance denominator is zero and both results
// are NaN. This boundary is deliberately not guarded.
func (m Measurement) LinearRegression() (slope, intercept float64) {
	sizes := make([]float64, len(m.Points))
	micros := make([]float64, len(m.Points))
	for i, point := range m.Points {
		sizes[i] = float64(point.Size)
		micros[i] = float64(point.Time.Microseconds())
	}

	alpha, beta := stat.LinearRegression(sizes, micros, nil, false)

	return beta, alpha
}

// LogLogScale returns a copy with each point replaced by the base-2 logarithm
// of its size and of its time in microseconds, truncated the way the original
// metrics are: size to an integer, time re-derived from whole microseconds.
// Applying it linearizes power laws before regression; applying it twice does
// not round-trip.
//
// A zero size or sub-microsecond time degenerates to log2(0). The result is
// then a negative-infinity cast, deliberately not guarded.
func (m Measurement) LogLogScale() Measurement {
	scaled := Measurement{
		AlgorithmName: m.AlgorithmName,
		Points:        make([]Point, len(m.Points)),
	}

	for i, point := range m.Points {
		scaled.Points[i] = Point{
			Size: int(math.Log2(float64(point.Size))),
			Time: time.Duration(math.Log2(float64(point.Time.Microseconds()))) * time.Microsecond,
		}
	}

	return scaled
}

// MaxTime returns the largest point duration, zero for an empty series.
func (m Measurement) MaxTime() time.Duration {
	var max time.Duration
	for _, point := range m.Points {
		if point.Time > max {
			max = point.Time
		}
	}

	return max
}

// MinTime returns the smallest point duration, zero for an empty series.
func (m Measurement) MinTime() time.Duration {
	if len(m.Points) == 0 {
		return 0
	}

	min := m.Points[0].Time
	for _, point := range m.Points[1:] {
		if point.Time < min {
			min = point.Time
		}
	}

	return min
}

// MaxSize returns the largest point size, zero for an empty series.
func (m Measurement) MaxSize() int {
	max := 0
	for _, point := range m.Points {
		if point.Size > max {
			max = point.Size
		}
	}

	return max
}

// MinSize returns the smallest point size, zero for an empty series.
func (m Measurement) MinSize() int {
	if len(m.Points) == 0 {
		return 0
	}

	min := m.Points[0].Size
	for _, point := range m.Points[1:] {
		if point.Size < min {
			min = point.Size
		}
	}

	return min
}

// LogLogScale applies Measurement.LogLogScale to every series, keeping the
// shared run metadata.
func (ms Measurements) LogLogScale() Measurements {
	scaled := Measurements{
		Series:        make([]Measurement, len(ms.Series)),
		RelativeError: ms.RelativeError,
		Resolution:    ms.Resolution,
	}

	for i, series := range ms.Series {
		scaled.Series[i] = series.LogLogScale()
	}

	return scaled
}

// MaxTime returns the largest duration across all series.
func (ms Measurements) MaxTime() time.Duration {
	var max time.Duration
	for _, series := range ms.Series {
		if t := series.MaxTime(); t > max {
			max = t
		}
	}

	return max
}

// MinTime returns the smallest duration across all series.
func (ms Measurements) MinTime() time.Duration {
	if len(ms.Series) == 0 {
		return 0
	}

	min := ms.Series[0].MinTime()
	for _, series := range ms.Series[1:] {
		if t := series.MinTime(); t < min {
			min = t
		}
	}

	return min
}

// MaxSize returns the largest size across all series.
func (ms Measurements) MaxSize() int {
	max := 0
	for _, series := range ms.Series {
		if s := series.MaxSize(); s > max {
			max = s
		}
	}

	return max
}

// MinSize returns the smallest size across all series.
func (ms Measurements) MinSize() int {
	if len(ms.Series) == 0 {
		return 0
	}

	min := ms.Series[0].MinSize()
	for _, series := range ms.Series[1:] {
		if s := series.MinSize(); s < min {
			min = s
		}
	}

	return min
}
