package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeriodAlgorithms(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"abcabcab", 3},
		{"aba", 2},
		{"abca", 3},
		{"aaaa", 1},
		{"abcd", 4},
		{"a", 1},
		{"abab", 2},
	}

	algorithms := []struct {
		name string
		fn   func(Text) int
	}{
		{"naive1", PeriodNaive1},
		{"naive2", PeriodNaive2},
		{"smart", PeriodSmart},
	}

	for _, test := range tests {
		for _, algorithm := range algorithms {
			t.Run(test.input+"_"+algorithm.name, func(t *testing.T) {
				actual := algorithm.fn(Text{Bytes: []byte(test.input)})

				require.Equal(t, test.expected, actual)
			})
		}
	}
}

func TestAlgorithmsWrapping(t *testing.T) {
	algorithms := Algorithms()

	require.Len(t, algorithms, 3)
	for _, algorithm := range algorithms {
		require.NotEmpty(t, algorithm.Name)
		require.NotPanics(t, func() {
			algorithm.Fn(Text{Bytes: []byte("abcabcab")})
		})
	}
}
