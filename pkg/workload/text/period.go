package text

import (
	"bytes"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// PeriodNaive1 compares characters p positions apart for every candidate
// period p. Quadratic in the worst case.
func PeriodNaive1(t Text) int {
	s := t.Bytes
	n := len(s)

outer:
	for p := 1; p < n; p++ {
		for j := 0; j < n-p; j++ {
			if s[j] != s[j+p] {
				continue outer
			}
		}

		return p
	}

	return n
}

// PeriodNaive2 checks whether the prefix and suffix of length n-p match for
// every candidate period p. Same complexity as PeriodNaive1, different
// constant factor through the bulk comparison.
func PeriodNaive2(t Text) int {
	s := t.Bytes
	n := len(s)

	for p := 1; p < n; p++ {
		if bytes.Equal(s[:n-p], s[p:]) {
			return p
		}
	}

	return n
}

// PeriodSmart derives the period from the border array in linear time: the
// minimum period is the string length minus its maximum border.
func PeriodSmart(t Text) int {
	s := t.Bytes
	n := len(s)

	// b[i] is the length of the maximum border of s[0..i]
	b := make([]int, n)

	for i := 1; i < n; i++ {
		x := b[i-1]
		for s[x] != s[i] && x > 0 {
			x = b[x-1]
		}
		if s[x] == s[i] {
			x++
		}

		b[i] = x
	}

	return n - b[n-1]
}

// Algorithms returns the three period finders wrapped for the measurement
// engine, slowest first.
func Algorithms() []measurement.Algorithm[Text] {
	return []measurement.Algorithm[Text]{
		{Name: "period naive1", Fn: func(t Text) { PeriodNaive1(t) }},
		{Name: "period naive2", Fn: func(t Text) { PeriodNaive2(t) }},
		{Name: "period smart", Fn: func(t Text) { PeriodSmart(t) }},
	}
}
