// Package sorting provides random integer-sequence inputs and mutating sort
// algorithms measured against them.
package sorting

import (
	"math/rand"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// Sequence is a slice-of-integers input instance. Sorting consumes it, so
// the engine clones it before every timed call.
type Sequence struct {
	Values []uint32
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	values := make([]uint32, len(s.Values))
	copy(values, s.Values)

	return Sequence{Values: values}
}

// Generator builds uniformly random sequences. It implements the input
// generator capability.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a seeded sequence generator.
func NewGenerator(seed int64) Generator {
	return Generator{rng: rand.New(rand.NewSource(seed))}
}

// Size reports the length of the sequence.
func (g Generator) Size(instance Sequence) int {
	return len(instance.Values)
}

// Generate constructs a fresh random sequence of the given size.
func (g Generator) Generate(size int) Sequence {
	values := make([]uint32, size)
	for i := range values {
		values[i] = g.rng.Uint32()
	}

	return Sequence{Values: values}
}

// MergeSort sorts the sequence in place, top-down with scratch copies of the
// halves.
func MergeSort(s Sequence) {
	mergeSort(s.Values)
}

func mergeSort(v []uint32) {
	n := len(v)
	if n <= 1 {
		return
	}

	mid := n / 2
	left := append([]uint32(nil), v[:mid]...)
	right := append([]uint32(nil), v[mid:]...)
	mergeSort(left)
	mergeSort(right)
	merge(v, left, right)
}

func merge(v, left, right []uint32) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			v[k] = left[i]
			i++
		} else {
			v[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		v[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		v[k] = right[j]
		j++
		k++
	}
}

// QuickSort sorts the sequence in place with Lomuto partitioning on the last
// element.
func QuickSort(s Sequence) {
	quickSort(s.Values, 0, len(s.Values)-1)
}

func quickSort(v []uint32, low, high int) {
	if low >= high {
		return
	}

	p := partition(v, low, high)
	quickSort(v, low, p-1)
	quickSort(v, p+1, high)
}

func partition(v []uint32, low, high int) int {
	pivot := v[high]
	i := low
	for j := low; j < high; j++ {
		if v[j] < pivot {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[high] = v[high], v[i]

	return i
}

// Algorithms returns the sorts wrapped for the measurement engine.
func Algorithms() []measurement.MutAlgorithm[Sequence] {
	return []measurement.MutAlgorithm[Sequence]{
		{Name: "merge sort", Fn: MergeSort},
		{Name: "quick sort", Fn: QuickSort},
	}
}
