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
	"math/rand"
)

// Uniform spreads sizes evenly over [min, max].
type Uniform struct {
	min, max int
	genType  GenerationType
	rng      *rand.Rand
}

// NewUniform creates a uniform distribution over [min, max] with
// fixed-interval generation.
func NewUniform(min, max int) (Uniform, error) {
	if err := validateRange(min, max); err != nil {
		return Uniform{}, err
	}

	return Uniform{min: min, max: max, genType: FixedIntervals}, nil
}

// WithGenerationType returns a copy using the given generation type.
func (u Uniform) WithGenerationType(genType GenerationType) Uniform {
	u.genType = genType
	return u
}

// WithRand returns a copy drawing random fractions from rng. Only relevant
// for Random generation; a seeded source makes the output reproducible.
func (u Uniform) WithRand(rng *rand.Rand) Uniform {
	u.rng = rng
	return u
}

// InverseCDF maps a fraction in [0, 1] onto the configured range.
func (u Uniform) InverseCDF(q float64) float64 {
	return float64(u.min) + float64(u.max-u.min)*q
}

func (u Uniform) Generate(n int) ([]int, error) {
	return sample(u.InverseCDF, u.genType, u.rng, n)
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform[%d, %d], %s generation", u.min, u.max, u.genType)
}
