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

package distribution

import (
	"fmt"
	"math"
	"math/rand"
)

// Reciprocal spreads sizes so that they are equidistant on a logarithmic
// axis, one size per octave-like step of [min, max].
type Reciprocal struct {
	min, max int
	genType  GenerationType
	rng      *rand.Rand
}

// NewReciprocal creates a reciprocal distribution over [min, max] with
// fixed-interval generation.
func NewReciprocal(min, max int) (Reciprocal, error) {
	if err := validateRange(min, max); err != nil {
		return Reciprocal{}, err
	}

	return Reciprocal{min: min, max: max, genType: FixedIntervals}, nil
}

// WithGenerationType returns a copy using the given generation type.
func (r Reciprocal) WithGenerationType(genType GenerationType) Reciprocal {
	r.genType = genType
	return r
}

// WithRand returns a copy drawing random fractions from rng.
func (r Reciprocal) WithRand(rng *rand.Rand) Reciprocal {
	r.rng = rng
	return r
}

// InverseCDF maps a fraction in [0, 1] onto the configured range.
func (r Reciprocal) InverseCDF(u float64) float64 {
	return math.Pow(float64(r.max)/float64(r.min), u) * float64(r.min)
}

func (r Reciprocal) Generate(n int) ([]int, error) {
	return sample(r.InverseCDF, r.genType, r.rng, n)
}

func (r Reciprocal) String() string {
	return fmt.Sprintf("reciprocal[%d, %d], %s generation", r.min, r.max, r.genType)
}
