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

// Package input materializes the instances an algorithm is measured against.
//
// A Builder combines a size distribution with a caller-supplied Generator and
// produces a Set: one group per generated size, each group holding a number of
// independently generated instances of that size.
package input

import (
	"fmt"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
	"github.com/ADS-laboratory/chrono-probe/pkg/distribution"
)

// Generator is the capability that constructs instances of a given size.
//
// Repeated Generate calls with the same size must yield independent instances:
// fresh randomness, no shared backing arrays. The measurement engine may
// consume an instance exactly once, so sharing state between instances of one
// group would skew the timings of later repetitions.
type Generator[T any] interface {
	// Size reports the size metric of an instance.
	Size(instance T) int
	// Generate constructs a new instance of the given size.
	Generate(size int) T
}

// Group holds the instances generated for one nominal size.
type Group[T any] struct {
	// Size is the nominal size shared by all instances of the group.
	Size int
	// Instances are independently generated; len(Instances) == repetitions.
	Instances []T
}

// Set is the grouped input of one measurement run, ordered as the size
// distribution produced the sizes (not sorted by size).
type Set[T any] struct {
	Groups []Group[T]
}

// TotalInstances returns the number of instances across all groups.
func (s *Set[T]) TotalInstances() int {
	total := 0
	for _, group := range s.Groups {
		total += len(group.Instances)
	}

	return total
}

// Builder builds input sets from a size distribution and a generator.
type Builder[T any] struct {
	distribution distribution.Distribution
	generator    Generator[T]
}

// NewBuilder creates a builder over the given distribution and generator.
func NewBuilder[T any](d distribution.Distribution, g Generator[T]) *Builder[T] {
	return &Builder[T]{distribution: d, generator: g}
}

// BuildOption configures a build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	progress common.Progress
}

// WithProgress reports group completion through the given reporter.
func WithProgress(p common.Progress) BuildOption {
	return func(o *buildOptions) {
		o.progress = p
	}
}

// Build generates n groups of one instance each.
func (b *Builder[T]) Build(n int, opts ...BuildOption) (*Set[T], error) {
	return b.BuildWithRepetitions(n, 1, opts...)
}

// BuildWithRepetitions generates n groups of `repetitions` instances each,
// n*repetitions instances in total. Multiple instances per size let the
// engine average over the generator's randomness, not only over clock noise.
func (b *Builder[T]) BuildWithRepetitions(n, repetitions int, opts ...BuildOption) (*Set[T], error) {
	options := buildOptions{progress: common.NopProgress}
	for _, opt := range opts {
		opt(&options)
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: number of groups must be positive, got %d", common.ErrInvalidArgument, n)
	}
	if repetitions <= 0 {
		return nil, fmt.Errorf("%w: repetitions must be positive, got %d", common.ErrInvalidArgument, repetitions)
	}

	sizes, err := b.distribution.Generate(n)
	if err != nil {
		return nil, err
	}

	groups := make([]Group[T], 0, n)
	for i, size := range sizes {
		instances := make([]T, 0, repetitions)
		for r := 0; r < repetitions; r++ {
			instances = append(instances, b.generator.Generate(size))
		}

		groups = append(groups, Group[T]{Size: size, Instances: instances})
		options.progress(i+1, n)
	}

	return &Set[T]{Groups: groups}, nil
}
