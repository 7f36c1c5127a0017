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

// Package distribution generates input sizes according to a configured
// probability law over a closed range [min, max].
//
// Every predefined distribution is sampled by inverse transform sampling: a
// fraction u in [0, 1] is mapped through the inverse cumulative distribution
// function of the law. The fraction is either drawn at evenly spaced quantiles
// (FixedIntervals, deterministic and reproducible) or uniformly at random
// (Random). Custom distributions only need to implement Distribution.
package distribution

import (
	"fmt"
	"math/rand"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
)

// GenerationType selects how the sampling fractions are produced.
type GenerationType int

const (
	// FixedIntervals samples at evenly spaced quantiles i/(n-1), so the
	// extremes of the range are always part of the output.
	FixedIntervals GenerationType = iota
	// Random draws each fraction uniformly and independently.
	Random
)

func (g GenerationType) String() string {
	switch g {
	case FixedIntervals:
		return "fixed intervals"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Distribution produces a sequence of n positive input sizes.
type Distribution interface {
	// Generate returns exactly n sizes, each within the configured range.
	// n must be positive.
	Generate(n int) ([]int, error)
	fmt.Stringer
}

// sample maps n fractions through an inverse CDF, truncating to integers.
// A nil rng falls back to the global math/rand source.
func sample(icdf func(u float64) float64, genType GenerationType, rng *rand.Rand, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of sizes must be positive, got %d", common.ErrInvalidArgument, n)
	}

	sizes := make([]int, n)
	for i := 0; i < n; i++ {
		var u float64

		switch genType {
		case Random:
			if rng != nil {
				u = rng.Float64()
			} else {
				u = rand.Float64()
			}
		default:
			// FixedIntervals; a single size is drawn at the range minimum
			if n != 1 {
				u = float64(i) / float64(n-1)
			}
		}

		sizes[i] = int(icdf(u))
	}

	return sizes, nil
}

// validateRange rejects empty or non-positive size ranges.
func validateRange(min, max int) error {
	if min < 1 {
		return fmt.Errorf("%w: minimum size must be positive, got %d", common.ErrInvalidArgument, min)
	}
	if max < min {
		return fmt.Errorf("%w: inverted size range [%d, %d]", common.ErrInvalidArgument, min, max)
	}

	return nil
}
