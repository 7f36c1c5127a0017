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

// Package measurement times algorithms against grouped inputs to a requested
// statistical precision.
//
// The engine busy-waits: every timing loop spins on the wall clock instead of
// sleeping, so the OS scheduler never sits between two readings. Runs are
// strictly sequential; measuring two algorithms concurrently would corrupt
// their relative timings through CPU contention. The engine must not be
// invoked from multiple goroutines against the same input set.
package measurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
	"github.com/ADS-laboratory/chrono-probe/pkg/input"
)

// ErrTimeLimit is returned when a per-point time limit expires before enough
// wall-clock time accumulated to bound the relative error.
var ErrTimeLimit = errors.New("time limit exceeded")

// Algorithm is a named callable that reads its input without consuming it.
// The return value, if any, must be folded into the callable; the engine
// times side effects only.
type Algorithm[T any] struct {
	Name string
	Fn   func(T)
}

// Cloneable is implemented by inputs of mutating algorithms. Clone must
// return a deep, independent copy.
type Cloneable[T any] interface {
	Clone() T
}

// MutAlgorithm is a named callable that consumes or destroys its input. Each
// timed call receives a fresh clone; the cloning cost is excluded from the
// measured time.
type MutAlgorithm[T Cloneable[T]] struct {
	Name string
	Fn   func(T)
}

// Option configures a measurement run.
type Option func(*options)

type options struct {
	progress   common.Progress
	timeLimit  time.Duration
	resolution time.Duration
}

// WithProgress reports per-point completion through the given reporter. The
// reporter runs between timed loops, never inside one.
func WithProgress(p common.Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// WithTimeLimit caps the wall-clock time spent on a single instance. When the
// cap expires before the precision contract is met, the run fails with
// ErrTimeLimit and produces no partial result. Zero means unbounded, the
// default: a pathologically cheap callable with a tiny relative error can
// then spin for a long time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *options) {
		o.timeLimit = d
	}
}

// WithResolution overrides the calibrated clock resolution. Meant for tests
// and for reusing a calibration across runs.
func WithResolution(d time.Duration) Option {
	return func(o *options) {
		o.resolution = d
	}
}

// minMeasurableTime is the total elapsed time a timing loop must accumulate
// so that one clock tick of error stays below the requested relative error.
func minMeasurableTime(resolution time.Duration, relativeError float64) time.Duration {
	return time.Duration(float64(resolution) * (1.0/relativeError + 1.0))
}

// measureOne runs fn on the same instance until the accumulated elapsed time
// exceeds minMeasurable, then returns the mean per-call duration. The mean
// amortizes clock noise over all calls.
func measureOne[T any](fn func(T), instance T, minMeasurable, timeLimit time.Duration) (time.Duration, error) {
	var deadline time.Time
	if timeLimit > 0 {
		deadline = time.Now().Add(timeLimit)
	}

	var elapsed time.Duration
	n := 0

	start := time.Now()
	for {
		fn(instance)
		n++

		elapsed = time.Since(start)
		if elapsed > minMeasurable {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return 0, fmt.Errorf("%w after %d calls", ErrTimeLimit, n)
		}
	}

	return elapsed / time.Duration(n), nil
}

// measureOneMut is measureOne for consuming callables. Every call gets a
// fresh clone, and the start timestamp is pushed forward by each clone's
// duration: the elapsed time then implicitly excludes all accumulated cloning
// cost, leaving pure algorithm time. This holds as long as cloning stays
// stable call-to-call and does not dominate the algorithm itself.
func measureOneMut[T Cloneable[T]](fn func(T), instance T, minMeasurable, timeLimit time.Duration) (time.Duration, error) {
	var deadline time.Time
	if timeLimit > 0 {
		deadline = time.Now().Add(timeLimit)
	}

	var elapsed time.Duration
	n := 0

	start := time.Now()
	for {
		cloneStart := time.Now()
		clone := instance.Clone()
		cloneTime := time.Since(cloneStart)

		fn(clone)
		n++

		start = start.Add(cloneTime)
		elapsed = time.Since(start)
		if elapsed > minMeasurable {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return 0, fmt.Errorf("%w after %d calls", ErrTimeLimit, n)
		}
	}

	return elapsed / time.Duration(n), nil
}

// measureGroup sums the per-repetition mean durations of one size group. The
// sum scales with the repetition count, so only series measured with the same
// repetitions are comparable.
func measureGroup[T any](fn func(T), group input.Group[T], minMeasurable, timeLimit time.Duration) (Point, error) {
	var total time.Duration
	for _, instance := range group.Instances {
		mean, err := measureOne(fn, instance, minMeasurable, timeLimit)
		if err != nil {
			return Point{}, err
		}

		total += mean
	}

	return Point{Size: group.Size, Time: total}, nil
}

func measureGroupMut[T Cloneable[T]](fn func(T), group input.Group[T], minMeasurable, timeLimit time.Duration) (Point, error) {
	var total time.Duration
	for _, instance := range group.Instances {
		mean, err := measureOneMut(fn, instance, minMeasurable, timeLimit)
		if err != nil {
			return Point{}, err
		}

		total += mean
	}

	return Point{Size: group.Size, Time: total}, nil
}

// Measure times every non-mutating algorithm against every group of the set
// and returns one duration-vs-size series per algorithm. The clock is
// calibrated once for the whole run.
func Measure[T any](set *input.Set[T], algorithms []Algorithm[T], relativeError float64, opts ...Option) (*Measurements, error) {
	o, err := prepare(relativeError, opts)
	if err != nil {
		return nil, err
	}

	minMeasurable := minMeasurableTime(o.resolution, relativeError)

	series := make([]Measurement, 0, len(algorithms))
	total := len(algorithms) * len(set.Groups)
	completed := 0

	for _, algorithm := range algorithms {
		points := make([]Point, 0, len(set.Groups))
		for _, group := range set.Groups {
			point, err := measureGroup(algorithm.Fn, group, minMeasurable, o.timeLimit)
			if err != nil {
				return nil, fmt.Errorf("%s, size %d: %w", algorithm.Name, group.Size, err)
			}

			points = append(points, point)
			completed++
			o.progress(completed, total)
		}

		series = append(series, Measurement{AlgorithmName: algorithm.Name, Points: points})
	}

	return &Measurements{Series: series, RelativeError: relativeError, Resolution: o.resolution}, nil
}

// MeasureMut is Measure for consuming algorithms. Instances of the set are
// never mutated themselves; each timed call works on a fresh clone.
func MeasureMut[T Cloneable[T]](set *input.Set[T], algorithms []MutAlgorithm[T], relativeError float64, opts ...Option) (*Measurements, error) {
	o, err := prepare(relativeError, opts)
	if err != nil {
		return nil, err
	}

	minMeasurable := minMeasurableTime(o.resolution, relativeError)

	series := make([]Measurement, 0, len(algorithms))
	total := len(algorithms) * len(set.Groups)
	completed := 0

	for _, algorithm := range algorithms {
		points := make([]Point, 0, len(set.Groups))
		for _, group := range set.Groups {
			point, err := measureGroupMut(algorithm.Fn, group, minMeasurable, o.timeLimit)
			if err != nil {
				return nil, fmt.Errorf("%s, size %d: %w", algorithm.Name, group.Size, err)
			}

			points = append(points, point)
			completed++
			o.progress(completed, total)
		}

		series = append(series, Measurement{AlgorithmName: algorithm.Name, Points: points})
	}

	return &Measurements{Series: series, RelativeError: relativeError, Resolution: o.resolution}, nil
}

// prepare validates the precision target and calibrates the clock unless an
// override is given. Validation happens before any timing.
func prepare(relativeError float64, opts []Option) (options, error) {
	o := options{progress: common.NopProgress}
	for _, opt := range opts {
		opt(&o)
	}

	if relativeError <= 0 {
		return options{}, fmt.Errorf("%w: relative error must be positive, got %g", common.ErrInvalidArgument, relativeError)
	}

	if o.resolution == 0 {
		o.resolution = Resolution()
	}

	return o, nil
}
