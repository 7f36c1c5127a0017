package sorting

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSeed int64 = 123456789

func requireSortedPermutation(t *testing.T, original, sorted []uint32) {
	t.Helper()

	require.Len(t, sorted, len(original))
	require.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	}))

	expected := append([]uint32(nil), original...)
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
	require.Equal(t, expected, sorted)
}

func TestSortsProduceSortedPermutations(t *testing.T) {
	algorithms := []struct {
		name string
		fn   func(Sequence)
	}{
		{"merge_sort", MergeSort},
		{"quick_sort", QuickSort},
	}

	generator := NewGenerator(testSeed)

	for _, algorithm := range algorithms {
		for _, size := range []int{1, 2, 3, 100, 1024} {
			instance := generator.Generate(size)
			original := append([]uint32(nil), instance.Values...)

			algorithm.fn(instance)

			requireSortedPermutation(t, original, instance.Values)
		}
	}
}

func TestSortsHandleDuplicatesAndPresorted(t *testing.T) {
	inputs := [][]uint32{
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{2, 1, 2, 1, 2},
	}

	for _, fn := range []func(Sequence){MergeSort, QuickSort} {
		for _, values := range inputs {
			instance := Sequence{Values: append([]uint32(nil), values...)}

			fn(instance)

			requireSortedPermutation(t, values, instance.Values)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	instance := NewGenerator(testSeed).Generate(32)

	clone := instance.Clone()
	clone.Values[0]++

	require.NotEqual(t, clone.Values[0], instance.Values[0])
}

func TestGeneratorSeeded(t *testing.T) {
	first := NewGenerator(testSeed).Generate(100)
	second := NewGenerator(testSeed).Generate(100)

	require.Equal(t, first.Values, second.Values)
	require.Equal(t, 100, NewGenerator(testSeed).Size(first))
}

func TestAlgorithmsWrapping(t *testing.T) {
	algorithms := Algorithms()

	require.Len(t, algorithms, 2)
	for _, algorithm := range algorithms {
		require.NotEmpty(t, algorithm.Name)
	}
}
