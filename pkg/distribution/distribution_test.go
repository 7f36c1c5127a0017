package distribution

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
)

const testSeed int64 = 123456789

func TestGenerateCountAndRange(t *testing.T) {
	uniform, err := NewUniform(10, 5000)
	require.NoError(t, err)
	exponential, err := NewExponential(10, 5000)
	require.NoError(t, err)
	reciprocal, err := NewReciprocal(10, 5000)
	require.NoError(t, err)
	constant, err := NewConstant(42)
	require.NoError(t, err)

	tests := []struct {
		testName     string
		distribution Distribution
		n            int
		minSize      int
		maxSize      int
	}{
		{"uniform_fixed", uniform, 100, 10, 5000},
		{"uniform_random", uniform.WithRand(rand.New(rand.NewSource(testSeed))).WithGenerationType(Random), 100, 10, 5000},
		{"exponential_fixed", exponential, 100, 10, 5000},
		{"exponential_random", exponential.WithRand(rand.New(rand.NewSource(testSeed))).WithGenerationType(Random), 100, 10, 5000},
		{"reciprocal_fixed", reciprocal, 100, 10, 5000},
		{"constant", constant, 100, 42, 42},
		{"single_size", uniform, 1, 10, 10},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			sizes, err := test.distribution.Generate(test.n)

			require.NoError(t, err)
			require.Len(t, sizes, test.n)
			for _, size := range sizes {
				assert.GreaterOrEqual(t, size, test.minSize)
				assert.LessOrEqual(t, size, test.maxSize)
			}
		})
	}
}

func TestFixedIntervalsDeterministic(t *testing.T) {
	exponential, err := NewExponential(1000, 500000)
	require.NoError(t, err)

	first, err := exponential.Generate(50)
	require.NoError(t, err)
	second, err := exponential.Generate(50)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestUniformFixedIntervalsSequence(t *testing.T) {
	uniform, err := NewUniform(1, 100)
	require.NoError(t, err)

	sizes, err := uniform.Generate(10)

	require.NoError(t, err)
	require.Equal(t, []int{1, 12, 23, 34, 45, 56, 67, 78, 89, 100}, sizes)
}

func TestUniformFixedIntervalsNonDecreasing(t *testing.T) {
	uniform, err := NewUniform(7, 99991)
	require.NoError(t, err)

	sizes, err := uniform.Generate(200)
	require.NoError(t, err)

	for i := 1; i < len(sizes); i++ {
		require.LessOrEqual(t, sizes[i-1], sizes[i])
	}
}

func TestSingleSizeIsRangeMinimum(t *testing.T) {
	uniform, err := NewUniform(33, 100)
	require.NoError(t, err)

	sizes, err := uniform.Generate(1)

	require.NoError(t, err)
	require.Equal(t, []int{33}, sizes)
}

func TestRandomGenerationSeeded(t *testing.T) {
	uniform, err := NewUniform(1, 1000000)
	require.NoError(t, err)

	first, err := uniform.WithGenerationType(Random).WithRand(rand.New(rand.NewSource(testSeed))).Generate(100)
	require.NoError(t, err)
	second, err := uniform.WithGenerationType(Random).WithRand(rand.New(rand.NewSource(testSeed))).Generate(100)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		testName  string
		construct func() error
	}{
		{"uniform_inverted_range", func() error { _, err := NewUniform(100, 1); return err }},
		{"uniform_non_positive_min", func() error { _, err := NewUniform(0, 10); return err }},
		{"exponential_inverted_range", func() error { _, err := NewExponential(100, 1); return err }},
		{"exponential_non_positive_min", func() error { _, err := NewExponential(-5, 10); return err }},
		{"exponential_degenerate_range", func() error { _, err := NewExponential(10, 10); return err }},
		{"exponential_non_positive_lambda", func() error {
			e, err := NewExponential(1, 100)
			if err != nil {
				return err
			}
			_, err = e.WithLambda(0)
			return err
		}},
		{"reciprocal_non_positive_min", func() error { _, err := NewReciprocal(0, 10); return err }},
		{"constant_non_positive", func() error { _, err := NewConstant(0); return err }},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			err := test.construct()

			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestGenerateRejectsNonPositiveN(t *testing.T) {
	uniform, err := NewUniform(1, 100)
	require.NoError(t, err)

	for _, n := range []int{0, -1} {
		sizes, err := uniform.Generate(n)

		require.ErrorIs(t, err, common.ErrInvalidArgument)
		require.Nil(t, sizes)
	}
}
