// Package search provides sorted-vector-with-target inputs and the search
// algorithms measured against them.
package search

import (
	"math"
	"math/rand"
	"sort"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// Instance is one search problem: a sorted vector and a target value. The
// target is drawn independently, so it may or may not be present.
type Instance struct {
	Vector []uint32
	Target uint32
}

// Strategy selects how the sorted vector is generated.
type Strategy int

const (
	// StrategyBucket draws one value per equal-width bucket of the value
	// range, which yields an already sorted vector in linear time.
	StrategyBucket Strategy = iota
	// StrategySortedUniform draws uniformly and sorts, costing an extra
	// O(n log n) per instance.
	StrategySortedUniform
)

func (s Strategy) String() string {
	switch s {
	case StrategyBucket:
		return "bucket"
	case StrategySortedUniform:
		return "sorted-uniform"
	default:
		return "unknown"
	}
}

// Generator builds search instances. It implements the input generator
// capability.
type Generator struct {
	strategy Strategy
	rng      *rand.Rand
}

// NewGenerator creates a seeded search-instance generator.
func NewGenerator(strategy Strategy, seed int64) Generator {
	return Generator{strategy: strategy, rng: rand.New(rand.NewSource(seed))}
}

// Size reports the length of the vector.
func (g Generator) Size(instance Instance) int {
	return len(instance.Vector)
}

// Generate constructs a fresh sorted instance of the given size.
func (g Generator) Generate(size int) Instance {
	switch g.strategy {
	case StrategySortedUniform:
		return g.sortedUniform(size)
	default:
		return g.bucket(size)
	}
}

func (g Generator) bucket(size int) Instance {
	const maxValue = uint64(math.MaxUint32)
	bucketSize := maxValue / uint64(size)

	vector := make([]uint32, size)
	for i := range vector {
		low := uint64(i) * bucketSize
		high := low + bucketSize
		if i == size-1 {
			high = maxValue
		}

		vector[i] = uint32(low + uint64(g.rng.Int63n(int64(high-low))))
	}

	return Instance{Vector: vector, Target: g.rng.Uint32()}
}

func (g Generator) sortedUniform(size int) Instance {
	vector := make([]uint32, size)
	for i := range vector {
		vector[i] = g.rng.Uint32()
	}
	sort.Slice(vector, func(i, j int) bool { return vector[i] < vector[j] })

	return Instance{Vector: vector, Target: g.rng.Uint32()}
}

// LinearSearch scans left to right and returns the index of the target, -1
// when absent.
func LinearSearch(in Instance) int {
	for i, value := range in.Vector {
		if value == in.Target {
			return i
		}
	}

	return -1
}

// BinarySearch bisects the sorted vector and returns an index of the target,
// -1 when absent.
func BinarySearch(in Instance) int {
	low, high := 0, len(in.Vector)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case in.Vector[mid] == in.Target:
			return mid
		case in.Vector[mid] < in.Target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1
}

// Algorithms returns the searches wrapped for the measurement engine.
func Algorithms() []measurement.Algorithm[Instance] {
	return []measurement.Algorithm[Instance]{
		{Name: "linear search", Fn: func(in Instance) { LinearSearch(in) }},
		{Name: "binary search", Fn: func(in Instance) { BinarySearch(in) }},
	}
}
